package api

import (
	"errors"
	"net/http"

	"github.com/sprite-ai/autocommit/internal/analyze"
)

// --- Health ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Analyze ---

type analyzeRequest struct {
	Diff        string `json:"diff"`
	Status      string `json:"status"`
	Mode        string `json:"mode,omitempty"`
	FirstCommit bool   `json:"first_commit,omitempty"`
}

// textOracle feeds caller-supplied tool output through the analyzer's
// query interface, so the API can analyze without touching a repository.
type textOracle struct {
	diff        string
	status      string
	mode        analyze.Mode
	firstCommit bool
}

func (o textOracle) ResolveHead() (string, error) {
	if o.firstCommit {
		return "", errors.New("no commits yet")
	}
	return "HEAD", nil
}

func (o textOracle) StatusShort() (string, error) { return o.status, nil }

func (o textOracle) DiffStaged() (string, error) {
	if o.mode == analyze.ModeUnstaged {
		return "", nil
	}
	return o.diff, nil
}

func (o textOracle) DiffWorking() (string, error) {
	if o.mode == analyze.ModeUnstaged {
		return o.diff, nil
	}
	return "", nil
}

func (o textOracle) DiffEmptyTree() (string, error) { return o.diff, nil }

func (s *Server) analyzeRequestResult(r *http.Request) (*analyze.Result, int, error) {
	var req analyzeRequest
	if err := readJSON(r, &req); err != nil {
		return nil, http.StatusBadRequest, err
	}

	mode := analyze.Mode(req.Mode)
	if mode == "" {
		mode = analyze.ModeAll
	}
	if !mode.Valid() {
		return nil, http.StatusBadRequest, errors.New("unknown mode: " + req.Mode)
	}

	oracle := textOracle{
		diff:        req.Diff,
		status:      req.Status,
		mode:        mode,
		firstCommit: req.FirstCommit,
	}

	res, err := s.analyzer.Analyze(oracle, mode)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return res, http.StatusOK, nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	res, code, err := s.analyzeRequestResult(r)
	if err != nil {
		writeError(w, code, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		*analyze.Result
		Summary string `json:"summary"`
	}{res, res.Summarize()})
}

// --- Suggest ---

type suggestResponse struct {
	HasChanges bool   `json:"has_changes"`
	Type       string `json:"type,omitempty"`
	Scope      string `json:"scope,omitempty"`
	Message    string `json:"message"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	res, code, err := s.analyzeRequestResult(r)
	if err != nil {
		writeError(w, code, err.Error())
		return
	}

	resp := suggestResponse{HasChanges: res.HasChanges}
	if res.HasChanges {
		resp.Type = string(res.SuggestedType)
		resp.Scope = res.SuggestedScope
		resp.Message = res.SuggestedMessage
	} else {
		resp.Message = res.Message
	}
	writeJSON(w, http.StatusOK, resp)
}
