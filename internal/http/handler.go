package httpapp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/soundscout/internal/engine"
	"github.com/cesargomez89/soundscout/internal/http/dto"
	"github.com/cesargomez89/soundscout/internal/logger"
)

type Handler struct {
	Engine   *engine.Engine
	Registry *engine.Registry
	Logger   *logger.Logger
}

func NewHandler(e *engine.Engine, reg *engine.Registry, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	if reg == nil {
		reg = engine.NewRegistry()
		reg.Register(e)
	}
	return &Handler{
		Engine:   e,
		Registry: reg,
		Logger:   log.WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Health)

	r.Get("/search", h.Search)
	r.Get("/search/all", h.SearchAll)
	r.Get("/search/tracks", h.SearchTracks)
	r.Get("/search/artists", h.SearchArtists)
	r.Get("/search/local", h.SearchLocal)

	r.Get("/featured", h.Featured)
	r.Get("/gazetteer", h.Gazetteer)
	r.Post("/precache", h.Precache)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, errs []dto.ValidationError) {
	h.writeJSON(w, http.StatusBadRequest, dto.NewValidationResponse(errs))
}
