package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"staffdesk/models"
)

// HTTPStore talks JSON over HTTP to the request store:
//
//	GET   /requests
//	POST  /requests
//	PATCH /requests/:id
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore creates a store client for the given base URL. The timeout
// bounds the whole round trip; an expired timeout surfaces as SYNC_FAILURE
// like any other transport error.
func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPStore) FetchAll(ctx context.Context) ([]models.Request, error) {
	var requests []models.Request
	if err := s.do(ctx, http.MethodGet, "/requests", nil, &requests); err != nil {
		return nil, models.NewSyncFailureError("fetch", err)
	}
	return requests, nil
}

func (s *HTTPStore) Create(ctx context.Context, req models.Request) (*models.Request, error) {
	var created models.Request
	if err := s.do(ctx, http.MethodPost, "/requests", req, &created); err != nil {
		return nil, models.NewSyncFailureError("create", err)
	}
	return &created, nil
}

func (s *HTTPStore) PatchStatus(ctx context.Context, id string, status models.Status) (*models.Request, error) {
	body := map[string]models.Status{"status": status}
	var updated models.Request
	if err := s.do(ctx, http.MethodPatch, "/requests/"+id, body, &updated); err != nil {
		return nil, models.NewSyncFailureError("update", err)
	}
	return &updated, nil
}

// do performs one round trip and decodes the response into out.
func (s *HTTPStore) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
