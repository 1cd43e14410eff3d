// Package web serves the form UI and the JSON API. Pages are rendered from
// embedded templates; state is limited to the ephemeral session store.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"care-lab/carelog"
	"care-lab/domain"
	careerrors "care-lab/errors"
	"care-lab/guard"
	"care-lab/observability"
	"care-lab/resources"
	"care-lab/session"
	"care-lab/triage"

	"github.com/google/uuid"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "care_session"

type Server struct {
	log              *slog.Logger
	engine           *triage.Engine
	guard            guard.Guard
	store            session.IEntryStore
	index            *resources.Index
	stats            *observability.Manager
	maxContentLength int
	searchLimit      int
	tmpl             *template.Template
}

func NewServer(
	log *slog.Logger,
	engine *triage.Engine,
	g guard.Guard,
	store session.IEntryStore,
	index *resources.Index,
	stats *observability.Manager,
	maxContentLength, searchLimit int,
) *Server {
	return &Server{
		log:              log,
		engine:           engine,
		guard:            g,
		store:            store,
		index:            index,
		stats:            stats,
		maxContentLength: maxContentLength,
		searchLimit:      searchLimit,
		tmpl:             template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleCheckForm)
	mux.HandleFunc("POST /check", s.handleCheck)
	mux.HandleFunc("GET /log", s.handleLogForm)
	mux.HandleFunc("POST /log", s.handleLog)
	mux.HandleFunc("GET /resources", s.handleResources)
	mux.HandleFunc("POST /api/check", s.handleAPICheck)
	mux.HandleFunc("POST /api/log", s.handleAPILog)
	mux.HandleFunc("GET /api/resources", s.handleAPIResources)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// checkResult is the view model for an assessment block.
type checkResult struct {
	Urgent      bool
	Headline    string
	Steps       []string
	RedFlags    []string
	Suggestions []string
	LangNotice  string
}

type checkPage struct {
	Disclaimer []string
	Text       string
	Warning    string
	Result     *checkResult
}

func (s *Server) handleCheckForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "check.html", checkPage{Disclaimer: triage.DisclaimerLines})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("concern")

	assessment, err := s.assess(text)
	if err != nil {
		page := checkPage{Disclaimer: triage.DisclaimerLines, Text: text}
		switch {
		case errors.Is(err, careerrors.ErrEmptyConcern):
			page.Warning = "Please type something first."
		case errors.Is(err, careerrors.ErrContentTooLong):
			page.Warning = "That text is too long for a quick check. Please shorten it."
		default:
			s.log.Error("Quick check failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderStatus(w, http.StatusBadRequest, "check.html", page)
		return
	}

	s.render(w, "check.html", checkPage{
		Disclaimer: triage.DisclaimerLines,
		Text:       text,
		Result:     s.toCheckResult(assessment),
	})
}

type logPage struct {
	Disclaimer []string
	Form       carelog.EntryRequest
	Warning    string
	Note       string
	RedFlags   []string
	Entries    []domain.CareLogEntry
}

func (s *Server) handleLogForm(w http.ResponseWriter, r *http.Request) {
	sessionID := s.sessionID(w, r)
	entries, err := s.store.List(sessionID)
	if err != nil {
		s.log.Error("Listing session entries failed", "error", err)
	}
	s.render(w, "log.html", logPage{
		Disclaimer: triage.DisclaimerLines,
		Form:       carelog.EntryRequest{Severity: 5},
		Entries:    entries,
	})
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	sessionID := s.sessionID(w, r)

	severity, _ := strconv.Atoi(r.FormValue("severity"))
	req := carelog.EntryRequest{
		PersonName:   r.FormValue("person_name"),
		Relationship: r.FormValue("relationship"),
		Severity:     severity,
		Observed:     r.FormValue("observed"),
		Notes:        r.FormValue("notes"),
	}

	page := logPage{Disclaimer: triage.DisclaimerLines, Form: req}

	if err := carelog.ValidateEntry(req); err != nil {
		page.Warning = "Please fill in what you observed (severity must stay between 0 and 10)."
		s.renderLogPage(w, http.StatusBadRequest, sessionID, page)
		return
	}
	if len(req.Observed) > s.maxContentLength {
		page.Warning = "The observation text is too long. Please shorten it."
		s.renderLogPage(w, http.StatusBadRequest, sessionID, page)
		return
	}

	// The observed text goes through the same red-flag scan as a quick check.
	entry := carelog.NewEntry(sessionID, req, s.engine.FindRedFlags(req.Observed))
	if err := s.store.Put(entry); err != nil {
		s.log.Error("Storing entry failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.stats.EntryCreated()

	page.Note = carelog.Render(entry)
	page.RedFlags = entry.RedFlags
	s.renderLogPage(w, http.StatusOK, sessionID, page)
}

func (s *Server) renderLogPage(w http.ResponseWriter, status int, sessionID string, page logPage) {
	entries, err := s.store.List(sessionID)
	if err != nil {
		s.log.Error("Listing session entries failed", "error", err)
	}
	page.Entries = entries
	s.renderStatus(w, status, "log.html", page)
}

type resourcesPage struct {
	Disclaimer []string
	Query      string
	Results    []domain.Resource
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results, err := s.index.Search(r.Context(), query, s.searchLimit)
	if err != nil {
		s.log.Error("Resource search failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, "resources.html", resourcesPage{
		Disclaimer: triage.DisclaimerLines,
		Query:      query,
		Results:    results,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

// assess enforces input limits, runs the rules, and redacts anything the
// guard finds in outbound suggestion text. With the built-in catalog the
// guard finds nothing; it logs a warning if that ever stops being true.
func (s *Server) assess(text string) (domain.Assessment, error) {
	if len(text) > s.maxContentLength {
		return domain.Assessment{}, careerrors.ErrContentTooLong
	}
	assessment, err := s.engine.Assess(text)
	if err != nil {
		return domain.Assessment{}, err
	}

	for i, suggestion := range assessment.Suggestions {
		redacted, found := s.guard.Redact(suggestion)
		if len(found) > 0 {
			assessment.Suggestions[i] = redacted
		}
	}
	s.stats.CheckRan(len(assessment.RedFlags))
	return assessment, nil
}

func (s *Server) toCheckResult(assessment domain.Assessment) *checkResult {
	result := &checkResult{
		Urgent:      assessment.Urgent,
		RedFlags:    assessment.RedFlags,
		Suggestions: assessment.Suggestions,
	}
	if assessment.Urgent {
		result.Headline = triage.UrgentHeadline
		result.Steps = triage.UrgentSteps
	} else {
		result.Headline = triage.NonUrgentHeadline
		result.Steps = triage.NonUrgentSteps
	}
	if assessment.Lang != "" && assessment.Lang != "en" {
		result.LangNotice = triage.EnglishOnlyNotice
	}
	return result
}

// sessionID reads the session cookie, minting one when absent. Sessions
// only scope the in-memory care log; there is no account behind them.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	s.renderStatus(w, http.StatusOK, name, data)
}

func (s *Server) renderStatus(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("Template rendering failed", "template", name, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
