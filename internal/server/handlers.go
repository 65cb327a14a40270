package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/types"
)

// jobsResponse is the body of GET /jobs.
type jobsResponse struct {
	Jobs  []catalog.Listing `json:"jobs"`
	Count int               `json:"count"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"catalog_size": s.matcher.Catalog().Len(),
	})
}

// decodeBody reads a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// handleParseProfile extracts a profile from posted resume text
func (s *Server) handleParseProfile(w http.ResponseWriter, r *http.Request) {
	var req types.ParseProfileRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, fromValidator(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.matcher.BuildProfile(req.Text, req.Language))
}

// handleMatch ranks the catalog against posted resume text or a profile
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, fromValidator(err))
		return
	}

	profile := req.Profile
	if profile == nil {
		profile = s.matcher.BuildProfile(req.Text, req.Language)
	}

	s.jsonResponse(w, http.StatusOK, types.MatchResponse{
		Profile: profile,
		Matches: s.matcher.Rank(profile, req.TopN),
	})
}

// handleListJobs searches the catalog. Query parameters: q, limit, industry.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := catalog.DefaultSearchLimit
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}

	industry := strings.TrimSpace(query.Get("industry"))
	jobs := s.matcher.Catalog().SearchIndustry(query.Get("q"), industry, limit)

	s.jsonResponse(w, http.StatusOK, jobsResponse{Jobs: jobs, Count: len(jobs)})
}

// handleGetJob returns a single posting by catalog ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "must be an integer"})
		return
	}

	posting, ok := s.matcher.Catalog().Get(id)
	if !ok {
		s.writeError(w, &ErrNotFound{Resource: "job", ID: raw})
		return
	}

	s.jsonResponse(w, http.StatusOK, catalog.Listing{ID: id, JobPosting: posting})
}

// handleListIndustries returns the distinct catalog industries
func (s *Server) handleListIndustries(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{"industries": s.matcher.Catalog().Industries()})
}
