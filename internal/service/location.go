package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ecoleta-app/api/internal/domain"
)

var ErrUFNotFound = errors.New("uf not found")

// LocationService looks up Brazilian states and municipalities from the
// IBGE localidades API, the same source the client form consumes.
type LocationService struct {
	baseURL string
	client  *http.Client
}

func NewLocationService(baseURL string) *LocationService {
	return &LocationService{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *LocationService) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("s.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrUFNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %v from %v", resp.StatusCode, endpoint)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode -> %w", err)
	}

	return nil
}

func (s *LocationService) ListUFs(ctx context.Context) ([]domain.UF, error) {
	var ufs []domain.UF
	if err := s.getJSON(ctx, "/estados?orderBy=nome", &ufs); err != nil {
		return nil, err
	}

	return ufs, nil
}

// ListCities returns the municipalities of a state, identified by its
// two-letter abbreviation. An unknown abbreviation yields an empty list
// from IBGE, which is surfaced as ErrUFNotFound.
func (s *LocationService) ListCities(ctx context.Context, uf string) ([]domain.City, error) {
	var cities []domain.City

	endpoint := fmt.Sprintf("/estados/%v/municipios", url.PathEscape(uf))
	if err := s.getJSON(ctx, endpoint, &cities); err != nil {
		return nil, err
	}

	if len(cities) == 0 {
		return nil, ErrUFNotFound
	}

	return cities, nil
}
