package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Vedant005/SkillBridge-Backend/internal/models"
)

// RecommenderClient talks to the external recommendation/pricing service.
type RecommenderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRecommenderClient(baseURL string) *RecommenderClient {
	return &RecommenderClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Recommend returns gigs similar to the given one. Callers treat any error
// as "no recommendations"; the listing must never fail because this
// service is down.
func (c *RecommenderClient) Recommend(ctx context.Context, gigID string) ([]models.Gig, error) {
	endpoint := fmt.Sprintf("%s/recommend?gig_id=%s", c.baseURL, url.QueryEscape(gigID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommender returned status %d", resp.StatusCode)
	}

	var gigs []models.Gig
	if err := json.NewDecoder(resp.Body).Decode(&gigs); err != nil {
		return nil, err
	}
	return gigs, nil
}

// PredictPrice forwards the feature payload untouched and returns the raw
// prediction body.
func (c *RecommenderClient) PredictPrice(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	endpoint := c.baseURL + "/predict_price"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricing service returned status %d", resp.StatusCode)
	}
	return body, nil
}
