package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/logger"
	"volunteer-portal-backend/internal/repository"
)

const serviceName = "people-directory"

// Client reads people and their custom fields from the upstream directory.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ repository.PersonDirectory = (*Client)(nil)

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type peopleResponse struct {
	People []domain.PersonRecord `json:"people"`
}

func (c *Client) GetPerson(ctx context.Context, personID string) (*domain.PersonRecord, error) {
	var person domain.PersonRecord
	if err := c.get(ctx, "GetPerson", "/people/"+url.PathEscape(personID), &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *Client) ListPeopleByTeam(ctx context.Context, team domain.TeamKey) ([]domain.PersonRecord, error) {
	var resp peopleResponse
	if err := c.get(ctx, "ListPeopleByTeam", "/teams/"+url.PathEscape(string(team))+"/people", &resp); err != nil {
		return nil, err
	}
	if resp.People == nil {
		return []domain.PersonRecord{}, nil
	}
	return resp.People, nil
}

func (c *Client) get(ctx context.Context, operation, path string, out any) error {
	logger.ExternalServiceCall(serviceName, operation, "path", path)
	err := c.doGet(ctx, path, out)
	logger.ExternalServiceResult(serviceName, operation, err, "path", path)
	return err
}

func (c *Client) doGet(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("directory error: status %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode directory response: %w", err)
	}
	return nil
}
