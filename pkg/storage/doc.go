// Package storage persists collected question records as JSON documents.
//
// Files are written atomically via a temporary file and rename, with
// human-readable indentation and HTML escaping disabled so bodies and
// non-ASCII content are preserved literally. Persistence failures are not
// swallowed here; they propagate to the caller as fatal I/O errors.
package storage
