// Package api exposes pkg/profile's named pipelines over HTTP: one JSON
// endpoint per normalize operation, dispatching through kit.Endpoint the
// same way the teacher's handler.go separated transport framing from the
// classification logic underneath it.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hazyhaar/normy/pkg/kit"
	"github.com/hazyhaar/normy/pkg/profile"
)

// NewRouter returns an http.Handler with all normalization API routes.
// logger defaults to slog.Default() when nil.
func NewRouter(reg *profile.Registry, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	h := &handler{
		normalize:      wrap(logger, normalizeEndpoint(reg)),
		normalizeBatch: wrap(logger, normalizeBatchEndpoint(reg)),
		listProfiles:   wrap(logger, listProfilesEndpoint(reg)),
		reg:            reg,
	}

	mux.HandleFunc("GET /v1/normalize/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/normalize/batch", h.handleNormalizeBatch)
	mux.HandleFunc("POST /v1/normalize", h.handleNormalize)
	mux.HandleFunc("GET /v1/profiles", h.handleListProfiles)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	normalize      kit.Endpoint
	normalizeBatch kit.Endpoint
	listProfiles   kit.Endpoint
	reg            *profile.Registry
}

// --- normalize one string ---

type httpNormalizeRequest struct {
	Profile string `json:"profile"`
	Text    string `json:"text"`
}

func (h *handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MiB max
	var req httpNormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Profile == "" {
		writeError(w, http.StatusBadRequest, "missing profile")
		return
	}

	resp, err := h.normalize(r.Context(), &normalizeReq{Profile: req.Profile, Text: req.Text})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- normalize batch ---

type httpNormalizeBatchRequest struct {
	Profile string   `json:"profile"`
	Texts   []string `json:"texts"`
}

func (h *handler) handleNormalizeBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4<<20) // 4 MiB max
	var req httpNormalizeBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Profile == "" {
		writeError(w, http.StatusBadRequest, "missing profile")
		return
	}

	resp, err := h.normalizeBatch(r.Context(), &normalizeBatchReq{Profile: req.Profile, Texts: req.Texts})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- list profiles ---

func (h *handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listProfiles(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status   string `json:"status"`
	Profiles int    `json:"profiles"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Profiles: len(h.reg.Names()),
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
