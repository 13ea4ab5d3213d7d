package dto

import (
	"net/url"

	"github.com/cesargomez89/soundscout/internal/domain"
)

// SearchRequest holds the parsed query parameters of a search endpoint.
type SearchRequest struct {
	Query     string
	Mode      domain.SearchMode
	MediaType domain.MediaType
	// Limit caps the number of results; zero means no cap.
	Limit int
}

// ParseSearchRequest validates q, mode, media and limit.
func ParseSearchRequest(values url.Values) (SearchRequest, []ValidationError) {
	var errs []ValidationError
	q := values.Get("q")
	errs = append(errs, validateQuery(q)...)
	errs = append(errs, validateMode(values.Get("mode"))...)
	errs = append(errs, validateMedia(values.Get("media"))...)
	limit, limitErrs := parseLimit(values.Get("limit"))
	errs = append(errs, limitErrs...)

	if len(errs) > 0 {
		return SearchRequest{}, errs
	}
	return SearchRequest{
		Query:     q,
		Mode:      domain.ParseSearchMode(values.Get("mode")),
		MediaType: domain.ParseMediaType(values.Get("media")),
		Limit:     limit,
	}, nil
}

type SearchResponse struct {
	Query   string          `json:"query"`
	Mode    string          `json:"mode,omitempty"`
	Count   int             `json:"count"`
	Results []domain.Record `json:"results"`
}

func NewSearchResponse(query, mode string, results []domain.Result) SearchResponse {
	records := domain.Records(results)
	return SearchResponse{
		Query:   query,
		Mode:    mode,
		Count:   len(records),
		Results: records,
	}
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func NewValidationResponse(errs []ValidationError) ErrorResponse {
	return ErrorResponse{Error: ToResponse(errs), Fields: ToMap(errs)}
}
