package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/httpclient"
)

var searchPaths = map[domain.SearchMode]string{
	domain.SearchModeTracks:  "/search/tracks",
	domain.SearchModeArtists: "/search/people",
	domain.SearchModeSets:    "/search/sets",
	domain.SearchModeGeneric: "/search",
}

// HTTPProvider talks to a JSON search bridge in front of the audio provider.
type HTTPProvider struct {
	client  *httpclient.Client
	logger  *slog.Logger
	BaseURL string
}

func NewHTTPProvider(baseURL string, client *httpclient.Client, logger *slog.Logger) *HTTPProvider {
	if client == nil {
		client = httpclient.NewClient(nil, 0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPProvider{
		client:  client,
		logger:  logger.WithGroup("provider"),
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *HTTPProvider) Search(ctx context.Context, phrase string, mode domain.SearchMode) ([]domain.RawRecord, error) {
	path, ok := searchPaths[mode]
	if !ok {
		path = searchPaths[domain.SearchModeGeneric]
	}
	u := fmt.Sprintf("%s%s?q=%s", p.BaseURL, path, url.QueryEscape(phrase))

	var resp APISearchResponse
	if err := p.get(ctx, u, &resp); err != nil {
		return nil, &ProviderError{Mode: mode, Phrase: phrase, Cause: err}
	}
	return resp.ToDomain(), nil
}

func (p *HTTPProvider) get(ctx context.Context, u string, target interface{}) error {
	p.logger.Debug("API request", "url", u)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // deferred cleanup

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

var _ Provider = (*HTTPProvider)(nil)
