package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/parser"
	"github.com/dgallion1/doclens/internal/pipeline"
)

// analyzeRequest is the JSON body for POST /api/analyze.
type analyzeRequest struct {
	Text    string           `json:"text"`
	Title   string           `json:"title,omitempty"`
	Options document.Options `json:"options"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		s.handleAnalyzeUpload(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}

	opts := s.mergeOptions(req.Options)
	job := pipeline.NewJob("", req.Title, nil, req.Text, opts)
	s.submitJob(w, job)
}

func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	// Limit total request size. Extra 1MB covers form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	opts := s.optionsFromForm(r)
	title := r.FormValue("title")

	if text := r.FormValue("text"); strings.TrimSpace(text) != "" {
		job := pipeline.NewJob("", title, nil, text, opts)
		s.submitJob(w, job)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file or text is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	job := pipeline.NewJob(filename, title, data, "", opts)
	s.submitJob(w, job)
}

func (s *Server) submitJob(w http.ResponseWriter, job *pipeline.Job) {
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":     job.ID,
		"status":     job.Status,
		"poll_url":   fmt.Sprintf("/api/analyze/%s/status", job.ID),
		"report_url": fmt.Sprintf("/api/analyze/%s/report", job.ID),
	})
}

func (s *Server) handleAnalyzeStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   snap.ID,
		"status":   snap.Status,
		"phase":    snap.Phase,
		"filename": snap.Filename,
		"progress": snap.Progress,
	})
}

func (s *Server) handleAnalyzeReport(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	report := job.Report()
	if report == nil {
		snap := job.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  "report not ready",
			"status": snap.Status,
			"phase":  snap.Phase,
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// mergeOptions overlays request options on the configured defaults.
func (s *Server) mergeOptions(req document.Options) document.Options {
	opts := s.defaultOptions()
	if req.TargetTone != "" {
		opts.TargetTone = req.TargetTone
	}
	if req.TargetAudience != "" {
		opts.TargetAudience = req.TargetAudience
	}
	if req.DetailLevel != "" {
		opts.DetailLevel = req.DetailLevel
	}
	if req.ClarityLevel != "" {
		opts.ClarityLevel = req.ClarityLevel
	}
	if req.MinSections > 0 {
		opts.MinSections = req.MinSections
	}
	if req.MaxSections > 0 {
		opts.MaxSections = req.MaxSections
	}
	if req.TargetSectionLength > 0 {
		opts.TargetSectionLength = req.TargetSectionLength
	}
	if req.MaxToneShifts > 0 {
		opts.MaxToneShifts = req.MaxToneShifts
	}
	if req.MaxRewriteIterations > 0 {
		opts.MaxRewriteIterations = req.MaxRewriteIterations
	}
	return opts.Normalize()
}

// optionsFromForm reads option overrides from multipart form values.
func (s *Server) optionsFromForm(r *http.Request) document.Options {
	opts := s.defaultOptions()
	if v := r.FormValue("target_tone"); v != "" {
		opts.TargetTone = document.Tone(v)
	}
	if v := r.FormValue("target_audience"); v != "" {
		opts.TargetAudience = v
	}
	if v := r.FormValue("detail_level"); v != "" {
		opts.DetailLevel = document.DetailLevel(v)
	}
	if v := r.FormValue("target_section_length"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.TargetSectionLength = n
		}
	}
	if v := r.FormValue("min_sections"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.MinSections = n
		}
	}
	if v := r.FormValue("max_sections"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.MaxSections = n
		}
	}
	if v := r.FormValue("enforce_logical_flow"); v != "" {
		opts.EnforceLogicalFlow = v == "true"
	}
	if v := r.FormValue("generate_suggestions"); v != "" {
		opts.GenerateSuggestions = v == "true"
	}
	return opts.Normalize()
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
