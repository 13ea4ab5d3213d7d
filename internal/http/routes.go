package httpapp

import (
	"net/http"

	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/gazetteer"
	"github.com/cesargomez89/soundscout/internal/http/dto"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Search runs the raw provider-backed path for one mode.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req, errs := dto.ParseSearchRequest(r.URL.Query())
	if len(errs) > 0 {
		h.badRequest(w, errs)
		return
	}
	results := Collect(h.Engine.Search(r.Context(), req.Query, req.Mode), req.Limit)
	h.writeJSON(w, http.StatusOK, dto.NewSearchResponse(req.Query, string(req.Mode), results))
}

// SearchAll chains every registered capability.
func (h *Handler) SearchAll(w http.ResponseWriter, r *http.Request) {
	req, errs := dto.ParseSearchRequest(r.URL.Query())
	if len(errs) > 0 {
		h.badRequest(w, errs)
		return
	}
	results := Collect(h.Registry.Search(r.Context(), req.Query, req.MediaType), req.Limit)
	h.writeJSON(w, http.StatusOK, dto.NewSearchResponse(req.Query, "", results))
}

func (h *Handler) SearchTracks(w http.ResponseWriter, r *http.Request) {
	req, errs := dto.ParseSearchRequest(r.URL.Query())
	if len(errs) > 0 {
		h.badRequest(w, errs)
		return
	}
	results := Collect(h.Engine.SearchTracks(r.Context(), req.Query, req.MediaType), req.Limit)
	h.writeJSON(w, http.StatusOK, dto.NewSearchResponse(req.Query, string(domain.SearchModeTracks), results))
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	req, errs := dto.ParseSearchRequest(r.URL.Query())
	if len(errs) > 0 {
		h.badRequest(w, errs)
		return
	}
	results := Collect(h.Engine.SearchArtists(r.Context(), req.Query, req.MediaType), req.Limit)
	h.writeJSON(w, http.StatusOK, dto.NewSearchResponse(req.Query, string(domain.SearchModeArtists), results))
}

func (h *Handler) SearchLocal(w http.ResponseWriter, r *http.Request) {
	req, errs := dto.ParseSearchRequest(r.URL.Query())
	if len(errs) > 0 {
		h.badRequest(w, errs)
		return
	}
	results := Collect(h.Engine.SearchLocal(r.Context(), req.Query, req.MediaType), req.Limit)
	h.writeJSON(w, http.StatusOK, dto.NewSearchResponse(req.Query, "local", results))
}

func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Engine.FeaturedPlaylist().Record())
}

func (h *Handler) Gazetteer(w http.ResponseWriter, r *http.Request) {
	pairs := h.Engine.Gazetteer().Pairs()
	if pairs == nil {
		pairs = []gazetteer.Term{}
	}
	h.writeJSON(w, http.StatusOK, pairs)
}

// Precache rebuilds the gazetteer. ?live=false skips the seed searches.
func (h *Handler) Precache(w http.ResponseWriter, r *http.Request) {
	live := r.URL.Query().Get("live") != "false"
	res, err := h.Engine.Precache(r.Context(), live)
	if err != nil {
		h.Logger.Warn("Precache finished with errors", "error", err)
	}
	h.writeJSON(w, http.StatusOK, res)
}
