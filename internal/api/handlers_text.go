package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/extractor"
	"github.com/dgallion1/doclens/internal/rewrite"
	"github.com/dgallion1/doclens/internal/summary"
)

// summarizeRequest is the JSON body for POST /api/summarize.
type summarizeRequest struct {
	Text        string `json:"text"`
	TargetWords int    `json:"target_words,omitempty"`
	DetailLevel string `json:"detail_level,omitempty"`
	PerSection  bool   `json:"per_section,omitempty"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}

	opts := s.defaultOptions()
	if req.DetailLevel != "" {
		opts.DetailLevel = document.DetailLevel(req.DetailLevel)
	}
	opts = opts.Normalize()

	w.Header().Set("Content-Type", "application/json")

	if req.PerSection {
		sections, _ := extractor.Extract(req.Text)
		doc := summary.SummarizeDocument(sections, opts, s.lex)
		json.NewEncoder(w).Encode(doc)
		return
	}

	gen := summary.Generate(req.Text, req.TargetWords, opts.DetailLevel, s.lex)
	json.NewEncoder(w).Encode(gen)
}

// rewriteRequest is the JSON body for POST /api/rewrite.
type rewriteRequest struct {
	Text          string `json:"text"`
	TargetTone    string `json:"target_tone"`
	MaxIterations int    `json:"max_iterations,omitempty"`
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	var req rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}
	if req.TargetTone == "" {
		jsonError(w, "target_tone is required", http.StatusBadRequest)
		return
	}

	opts := s.defaultOptions()
	if req.MaxIterations > 0 {
		opts.MaxRewriteIterations = req.MaxIterations
	}
	opts.TargetTone = document.Tone(req.TargetTone)
	opts = opts.Normalize()

	result := rewrite.Rewrite(req.Text, opts.TargetTone, opts, s.lex)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
