package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cesargomez89/soundscout/internal/domain"
)

// MaxLimit bounds the number of results a single request may ask for.
const MaxLimit = 200

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) ToMap() map[string]string {
	return map[string]string{e.Field: e.Message}
}

func ToMap(errs []ValidationError) map[string]string {
	result := make(map[string]string)
	for _, e := range errs {
		result[e.Field] = e.Message
	}
	return result
}

func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func validateQuery(q string) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(q) == "" {
		errs = append(errs, ValidationError{Field: "q", Message: "is required"})
	} else if len(q) > 512 {
		errs = append(errs, ValidationError{Field: "q", Message: "must be at most 512 bytes"})
	}
	return errs
}

func validateMode(mode string) []ValidationError {
	var errs []ValidationError
	if mode == "" {
		return errs
	}
	switch domain.SearchMode(strings.ToLower(mode)) {
	case domain.SearchModeTracks, domain.SearchModeArtists, domain.SearchModeSets, domain.SearchModeGeneric:
	default:
		errs = append(errs, ValidationError{Field: "mode", Message: "must be one of: tracks, artists, sets, generic"})
	}
	return errs
}

func validateMedia(media string) []ValidationError {
	var errs []ValidationError
	switch strings.ToLower(media) {
	case "", string(domain.MediaTypeGeneric), string(domain.MediaTypeMusic):
	default:
		errs = append(errs, ValidationError{Field: "media", Message: "must be 'music' or 'generic'"})
	}
	return errs
}

func parseLimit(raw string) (int, []ValidationError) {
	var errs []ValidationError
	if raw == "" {
		return 0, errs
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxLimit {
		errs = append(errs, ValidationError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxLimit)})
		return 0, errs
	}
	return n, errs
}
