package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"care-lab/carelog"
	careerrors "care-lab/errors"
	"care-lab/triage"
)

type checkRequest struct {
	Text string `json:"text"`
}

type checkResponse struct {
	Urgent      bool     `json:"urgent"`
	RedFlags    []string `json:"red_flags"`
	Suggestions []string `json:"suggestions"`
	Lang        string   `json:"lang"`
	Notice      string   `json:"notice,omitempty"`
}

type logRequest struct {
	PersonName   string `json:"person_name"`
	Relationship string `json:"relationship"`
	Severity     int    `json:"severity"`
	Observed     string `json:"observed"`
	Notes        string `json:"notes"`
}

type logResponse struct {
	ID       string   `json:"id"`
	Note     string   `json:"note"`
	RedFlags []string `json:"red_flags,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAPICheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	assessment, err := s.assess(req.Text)
	if err != nil {
		switch {
		case errors.Is(err, careerrors.ErrEmptyConcern),
			errors.Is(err, careerrors.ErrContentTooLong):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			s.log.Error("Quick check failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return
	}

	response := checkResponse{
		Urgent:      assessment.Urgent,
		RedFlags:    assessment.RedFlags,
		Suggestions: assessment.Suggestions,
		Lang:        assessment.Lang,
	}
	if assessment.Lang != "" && assessment.Lang != "en" {
		response.Notice = triage.EnglishOnlyNotice
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleAPILog(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	entryReq := carelog.EntryRequest{
		PersonName:   req.PersonName,
		Relationship: req.Relationship,
		Severity:     req.Severity,
		Observed:     req.Observed,
		Notes:        req.Notes,
	}
	if err := carelog.ValidateEntry(entryReq); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if len(entryReq.Observed) > s.maxContentLength {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: careerrors.ErrContentTooLong.Error()})
		return
	}

	sessionID := s.sessionID(w, r)
	entry := carelog.NewEntry(sessionID, entryReq, s.engine.FindRedFlags(entryReq.Observed))
	if err := s.store.Put(entry); err != nil {
		s.log.Error("Storing entry failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	s.stats.EntryCreated()

	writeJSON(w, http.StatusOK, logResponse{
		ID:       entry.ID.String(),
		Note:     carelog.Render(entry),
		RedFlags: entry.RedFlags,
	})
}

func (s *Server) handleAPIResources(w http.ResponseWriter, r *http.Request) {
	results, err := s.index.Search(r.Context(), r.URL.Query().Get("q"), s.searchLimit)
	if err != nil {
		s.log.Error("Resource search failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, results)
}
