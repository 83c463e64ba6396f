package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iksnae/ai-wrapped/internal"
	"github.com/iksnae/ai-wrapped/internal/export"
	"github.com/iksnae/ai-wrapped/internal/stats"
)

// Handler serves the share API backed by a ShareStore.
type Handler struct {
	store *internal.ShareStore
}

// NewRouter wires the share routes onto a chi router.
func NewRouter(store *internal.ShareStore) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &Handler{store: store}
	r.Route("/api", func(api chi.Router) {
		api.Post("/share", h.createShare)
		api.Get("/share/{id}", h.getShare)
		api.Patch("/share/{id}", h.attachPersona)
	})

	return r
}

type createShareRequest struct {
	WrappedData *stats.Report `json:"wrappedData"`
}

// createShare sanitizes the posted bundle and stores it under a fresh
// share ID.
func (h *Handler) createShare(w http.ResponseWriter, r *http.Request) {
	var req createShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WrappedData == nil {
		respondError(w, http.StatusBadRequest, "missing wrapped data")
		return
	}

	shareID := internal.GenerateShareID()
	sanitized := export.Sanitize(req.WrappedData)
	sanitized.ShareID = shareID

	payload, err := json.Marshal(sanitized)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to encode share payload")
		return
	}
	if err := h.store.Save(shareID, string(sanitized.Provider), payload); err != nil {
		internal.LogError("failed to save share: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save share")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"shareId": shareID})
}

// getShare returns a stored share payload verbatim.
func (h *Handler) getShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payload, err := h.store.Load(id)
	if errors.Is(err, internal.ErrShareNotFound) {
		respondError(w, http.StatusNotFound, "share not found")
		return
	}
	if err != nil {
		internal.LogError("failed to load share %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to load share")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

type attachPersonaRequest struct {
	Persona *stats.Persona `json:"persona"`
}

// attachPersona merges a persona blurb into an existing share payload.
// This is the second phase of the original two-phase share flow: the
// numbers are saved immediately, the generated blurb arrives later.
func (h *Handler) attachPersona(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attachPersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Persona == nil {
		respondError(w, http.StatusBadRequest, "missing persona data")
		return
	}

	payload, err := h.store.Load(id)
	if errors.Is(err, internal.ErrShareNotFound) {
		respondError(w, http.StatusNotFound, "share not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load share")
		return
	}

	var report stats.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		respondError(w, http.StatusInternalServerError, "stored share payload is corrupt")
		return
	}
	report.Persona = req.Persona

	updated, err := json.Marshal(&report)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to encode share payload")
		return
	}
	if err := h.store.Update(id, updated); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update share")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"shareId": id})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
