package models

// Question represents a single question thread as returned by the Stack
// Exchange API. Answers is empty until the collector merges the per-question
// answer listing into the record.
type Question struct {
	QuestionID       int      `json:"question_id"`
	Title            string   `json:"title"`
	Body             string   `json:"body"`
	Score            int      `json:"score"`
	AnswerCount      int      `json:"answer_count"`
	CreationDate     int64    `json:"creation_date"`
	Tags             []string `json:"tags"`
	AcceptedAnswerID *int     `json:"accepted_answer_id,omitempty"`
	Answers          []Answer `json:"answers,omitempty"`
}

// Answer represents a single answer to a question.
type Answer struct {
	AnswerID     int    `json:"answer_id"`
	Body         string `json:"body"`
	Score        int    `json:"score"`
	IsAccepted   bool   `json:"is_accepted"`
	CreationDate int64  `json:"creation_date"`
	Owner        Owner  `json:"owner"`
}

// Owner identifies the user who wrote an answer.
type Owner struct {
	UserID      int    `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// QuestionsResponse is the API envelope for question listings.
type QuestionsResponse struct {
	Items          []Question `json:"items"`
	HasMore        bool       `json:"has_more"`
	QuotaRemaining int        `json:"quota_remaining"`
	ErrorID        int        `json:"error_id,omitempty"`
	ErrorName      string     `json:"error_name,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
}

// AnswersResponse is the API envelope for answer listings.
type AnswersResponse struct {
	Items          []Answer `json:"items"`
	HasMore        bool     `json:"has_more"`
	QuotaRemaining int      `json:"quota_remaining"`
	ErrorID        int      `json:"error_id,omitempty"`
	ErrorName      string   `json:"error_name,omitempty"`
	ErrorMessage   string   `json:"error_message,omitempty"`
}
