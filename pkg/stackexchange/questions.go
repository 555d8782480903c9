package stackexchange

import (
	"context"

	"stackcollect/pkg/models"
)

// FetchQuestions retrieves questions matching the query, newest first.
//
// Pagination continues until the API reports no more results or the
// accumulated count reaches q.MaxCount; the page budget is derived from
// ceil(MaxCount / PageSize) and additionally capped by the configured
// MaxPages. Results beyond MaxCount are truncated.
func (c *Client) FetchQuestions(ctx context.Context, q QuestionQuery) ([]models.Question, error) {
	pages := PageCount(q.MaxCount, c.pageSize)
	if pages > c.maxPages {
		pages = c.maxPages
	}

	c.logger.InfoWithFields("fetching questions", map[string]interface{}{
		"tag":       q.Tag,
		"max_count": q.MaxCount,
		"pages":     pages,
	})

	var questions []models.Question
	for page := 1; page <= pages; page++ {
		var resp models.QuestionsResponse
		url := questionsURL(c.baseURL, c.site, c.apiKey, q, page, c.pageSize)
		if err := c.getJSON(ctx, url, &resp); err != nil {
			return nil, err
		}
		if resp.ErrorID != 0 {
			return nil, apiError(resp.ErrorID, resp.ErrorName, resp.ErrorMessage)
		}

		questions = append(questions, resp.Items...)

		if !resp.HasMore || len(questions) >= q.MaxCount {
			break
		}
	}

	if len(questions) > q.MaxCount {
		questions = questions[:q.MaxCount]
	}

	c.logger.InfoWithFields("questions fetched", map[string]interface{}{
		"tag":   q.Tag,
		"count": len(questions),
	})

	return questions, nil
}
