package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/CTAG07/simwriter/pkg/markov"
	"github.com/goccy/go-json"
)

// MarkovAPI serves generation requests against a single shared model. The
// model is read-only; every request gets its own Generator.
type MarkovAPI struct {
	model       *markov.Model
	defaultSeed string
	maxLength   int
	logger      *slog.Logger
}

// NewMarkovAPI creates a new instance of the MarkovAPI. defaultSeed is used
// when a request does not supply one.
func NewMarkovAPI(model *markov.Model, defaultSeed string, maxLength int, logger *slog.Logger) *MarkovAPI {
	return &MarkovAPI{
		model:       model,
		defaultSeed: defaultSeed,
		maxLength:   maxLength,
		logger:      logger,
	}
}

// RegisterRoutes sets up the routing for all /api endpoints.
func (m *MarkovAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", m.handleHealthCheck)
	mux.HandleFunc("/api/model", m.handleModel)
	mux.HandleFunc("/api/generate", m.handleGenerate)
}

func (m *MarkovAPI) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleModel returns the model's statistics.
func (m *MarkovAPI) handleModel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respondWithJSON(w, http.StatusOK, m.model.Stats())
}

// handleGenerate returns `length` generated characters as plain text.
func (m *MarkovAPI) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	query := r.URL.Query()
	length, err := strconv.Atoi(query.Get("length"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'length' must be an integer")
		return
	}
	if length > m.maxLength {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Length may not exceed %d", m.maxLength))
		return
	}

	seed := m.defaultSeed
	if query.Has("seed") {
		seed = query.Get("seed")
	}

	gen := markov.NewGenerator(m.model)
	gen.SetLogger(m.logger)
	text, err := gen.Generate(seed, length)
	if err != nil {
		if errors.Is(err, markov.ErrInvalidArgument) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		m.logger.Error("Failed to generate text", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	m.logger.Debug("Served generated text",
		slog.String("remote_addr", r.RemoteAddr),
		slog.Int("length", length),
	)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		err := json.NewEncoder(w).Encode(payload)
		if err != nil {
			slog.Error("Failed to encode JSON response", "error", err)
		}
	}
}
