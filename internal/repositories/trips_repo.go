package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	intconfig "tripsearch/internal/config"
	"tripsearch/internal/domain"
	"tripsearch/internal/domain/models"

	"github.com/pkg/errors"
)

// maxErrorBody caps how much of a failed response is quoted in the error.
const maxErrorBody = 512

// TripsRepository reads listings from the remote trips service.
type TripsRepository struct {
	BaseURL   string
	Client    *http.Client
	RequestID string
}

func (r TripsRepository) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(r.BaseURL), "/")
	if base == "" {
		return intconfig.DefaultTripsBaseURL
	}
	return base
}

func (r TripsRepository) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return http.DefaultClient
}

// SearchURL builds GET {base}/trips?keywords={keywords}. The keywords are
// used as given; only query encoding is applied.
func (r TripsRepository) SearchURL(keywords string) string {
	q := url.Values{}
	q.Set("keywords", keywords)
	return r.baseURL() + "/trips?" + q.Encode()
}

// Search issues exactly one request for keywords and returns the "data"
// array in the order received.
func (r TripsRepository) Search(ctx context.Context, keywords string) ([]models.Trip, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.SearchURL(keywords), nil)
	if err != nil {
		return nil, errors.Wrap(domain.UpstreamError{Op: "build trips request", Err: err}, "search trips")
	}
	req.Header.Set("Accept", "application/json")
	if rid := strings.TrimSpace(r.RequestID); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := r.client().Do(req)
	if err != nil {
		return nil, errors.Wrap(domain.UpstreamError{Op: "GET /trips", Err: err}, "search trips")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var cause error
		if msg := strings.TrimSpace(string(body)); msg != "" {
			cause = fmt.Errorf("%s", msg)
		}
		return nil, errors.Wrap(domain.UpstreamError{Op: "GET /trips", Status: resp.StatusCode, Err: cause}, "search trips")
	}

	var payload models.TripSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(domain.UpstreamError{Op: "decode /trips", Status: resp.StatusCode, Err: err}, "search trips")
	}
	if payload.Data == nil {
		return []models.Trip{}, nil
	}
	return payload.Data, nil
}
