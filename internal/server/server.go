package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sferro/chatlens/internal/analyze"
	"github.com/sferro/chatlens/internal/parse"
	"github.com/sferro/chatlens/internal/store"
)

// maxUploadSize caps the accepted chat export size.
const maxUploadSize = 32 << 20 // 32MB

// Server exposes the analysis pipeline over a local HTTP API.
type Server struct {
	db           *store.DB
	historyLimit int
}

func New(db *store.DB, historyLimit int) *Server {
	return &Server{db: db, historyLimit: historyLimit}
}

// Router wires the API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Post("/analyze", s.handleAnalyze)
		api.Get("/analyses", s.handleList)
		api.Get("/analyses/{id}", s.handleGet)
		api.Delete("/analyses/{id}", s.handleDelete)
	})

	return r
}

// handleAnalyze accepts a chat export as a multipart upload (field "chat")
// or as a raw text body, runs the pipeline, stores the snapshot and returns
// the ChatData aggregate.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	name := "upload.txt"
	var text string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		file, header, err := r.FormFile("chat")
		if err != nil {
			respondError(w, http.StatusBadRequest, "multipart upload requires a \"chat\" file field")
			return
		}
		defer file.Close()

		name = header.Filename
		if filepath.Ext(name) != ".txt" {
			respondError(w, http.StatusBadRequest, "only .txt chat exports are supported")
			return
		}

		raw, err := io.ReadAll(file)
		if err != nil {
			respondError(w, http.StatusBadRequest, "read upload: "+err.Error())
			return
		}
		text = string(raw)
	} else {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			respondError(w, http.StatusBadRequest, "read body: "+err.Error())
			return
		}
		text = string(raw)
	}

	chat := parse.Parse(text)
	data, err := analyze.Analyze(chat)
	if err != nil {
		// zero recovered messages is a user problem, not a server crash
		respondError(w, http.StatusUnprocessableEntity,
			"no messages could be parsed; please upload a WhatsApp chat export (.txt)")
		return
	}

	id, err := s.db.Put(name, time.Now().Unix(), int64(len(text)), data)
	if err != nil {
		log.Printf("store analysis: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to store analysis")
		return
	}

	w.Header().Set("Location", "/api/analyses/"+id)
	respondJSON(w, http.StatusOK, data)
}

type analysisSummary struct {
	ID            string   `json:"id"`
	FileName      string   `json:"fileName"`
	AnalyzedAt    string   `json:"analyzedAt"`
	TotalMessages int      `json:"totalMessages"`
	Participants  []string `json:"participants"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.List(s.historyLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]analysisSummary, 0, len(rows))
	for _, a := range rows {
		out = append(out, analysisSummary{
			ID:            a.ID,
			FileName:      a.FileName,
			AnalyzedAt:    a.AnalyzedAt,
			TotalMessages: a.TotalMessages,
			Participants:  a.Participants,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	meta, data, err := s.db.Get(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if meta == nil {
		respondError(w, http.StatusNotFound, "analysis not found")
		return
	}
	respondJSON(w, http.StatusOK, data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	meta, _, err := s.db.Get(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if meta == nil {
		respondError(w, http.StatusNotFound, "analysis not found")
		return
	}
	if err := s.db.Delete(id); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
