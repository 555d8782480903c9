package stackexchange

import (
	"fmt"
	"net/url"
)

const (
	// BaseURL is the base URL for the Stack Exchange API
	BaseURL = "https://api.stackexchange.com/2.3"

	// QuestionsEndpoint is the endpoint for tag-filtered question listings
	QuestionsEndpoint = "/questions"

	// AnswersEndpointFormat is the endpoint pattern for a question's answers
	AnswersEndpointFormat = "/questions/%d/answers"

	// QuestionFilter includes the question body and detail fields in responses
	QuestionFilter = "!-*jbN0CeyLXX"

	// AnswerFilter includes the answer body and detail fields in responses
	AnswerFilter = "!-*jbN0CeYX4I"
)

// QuestionQuery holds the filter parameters for a question listing request.
// FromDate and ToDate are inclusive epoch-second bounds; zero means unset.
type QuestionQuery struct {
	Tag        string
	MinAnswers int
	MinScore   int
	MaxCount   int
	FromDate   int64
	ToDate     int64
}

// questionsURL constructs the URL for one page of a question listing
func questionsURL(base, site, apiKey string, q QuestionQuery, page, pageSize int) string {
	params := url.Values{}
	params.Set("site", site)
	params.Set("tagged", q.Tag)
	params.Set("sort", "creation")
	params.Set("order", "desc")
	params.Set("filter", QuestionFilter)
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("pagesize", fmt.Sprintf("%d", pageSize))
	params.Set("answers", fmt.Sprintf("%d", q.MinAnswers))
	params.Set("min_score", fmt.Sprintf("%d", q.MinScore))
	if q.FromDate > 0 {
		params.Set("fromdate", fmt.Sprintf("%d", q.FromDate))
	}
	if q.ToDate > 0 {
		params.Set("todate", fmt.Sprintf("%d", q.ToDate))
	}
	if apiKey != "" {
		params.Set("key", apiKey)
	}

	return fmt.Sprintf("%s%s?%s", base, QuestionsEndpoint, params.Encode())
}

// answersURL constructs the URL for a question's answer listing
func answersURL(base, site, apiKey string, questionID int) string {
	params := url.Values{}
	params.Set("site", site)
	params.Set("sort", "votes")
	params.Set("order", "desc")
	params.Set("filter", AnswerFilter)
	if apiKey != "" {
		params.Set("key", apiKey)
	}

	endpoint := fmt.Sprintf(AnswersEndpointFormat, questionID)
	return fmt.Sprintf("%s%s?%s", base, endpoint, params.Encode())
}

// PageCount derives how many pages are needed to accumulate maxCount items
// at the given page size. Never more pages are fetched than necessary.
func PageCount(maxCount, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	return (maxCount + pageSize - 1) / pageSize
}
