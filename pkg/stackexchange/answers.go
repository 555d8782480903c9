package stackexchange

import (
	"context"

	"stackcollect/pkg/models"
)

// FetchAnswers retrieves all answers for a question, sorted by vote score
// descending. The rate limiter is consulted before the request goes out,
// spacing consecutive calls by the configured minimum interval.
func (c *Client) FetchAnswers(ctx context.Context, questionID int) ([]models.Answer, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	c.logger.DebugWithFields("fetching answers", map[string]interface{}{
		"question_id": questionID,
	})

	var resp models.AnswersResponse
	url := answersURL(c.baseURL, c.site, c.apiKey, questionID)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if resp.ErrorID != 0 {
		return nil, apiError(resp.ErrorID, resp.ErrorName, resp.ErrorMessage)
	}

	return resp.Items, nil
}
