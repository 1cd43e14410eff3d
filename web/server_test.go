package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"care-lab/guard"
	"care-lab/observability"
	"care-lab/resources"
	"care-lab/session"
	"care-lab/triage"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := session.OpenEphemeral()
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	adviceGuard, err := guard.NewGuard(guard.DefaultForbiddenPhrases(), '*', log)
	req.NoError(err)

	index, err := resources.NewIndex(resources.Library(), log)
	req.NoError(err)
	t.Cleanup(func() { _ = index.Close() })

	server := NewServer(
		log,
		triage.NewEngine(log),
		adviceGuard,
		session.NewEntryStore(db, log, nil),
		index,
		observability.NewManager(log),
		4000, 10,
	)
	return server.Handler()
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestServer_QuickCheckForm(t *testing.T) {
	req := require.New(t)
	handler := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), "Quick Check (rule-based)")
	req.Contains(w.Body.String(), "Demo-only caregiver support tool (non-diagnostic).")
}

func TestServer_QuickCheck(t *testing.T) {
	req := require.New(t)
	handler := newTestServer(t)

	t.Run("Empty input re-renders with a warning", func(t *testing.T) {
		w := postForm(handler, "/check", url.Values{"concern": {"   "}})
		req.Equal(http.StatusBadRequest, w.Code)
		req.Contains(w.Body.String(), "Please type something first.")
	})

	t.Run("Red flag input renders the urgent block", func(t *testing.T) {
		w := postForm(handler, "/check", url.Values{"concern": {"sudden chest pain and trouble breathing"}})
		req.Equal(http.StatusOK, w.Code)
		body := w.Body.String()
		req.Contains(body, "Possible emergency (red flag) detected")
		req.Contains(body, "Chest pain/pressure")
		req.Contains(body, "Breathing trouble")
	})

	t.Run("Calm input renders the non-urgent block", func(t *testing.T) {
		w := postForm(handler, "/check", url.Values{"concern": {"she seems tired but is eating normally"}})
		req.Equal(http.StatusOK, w.Code)
		body := w.Body.String()
		req.Contains(body, "No emergency keywords detected")
		req.Contains(body, triage.FallbackSuggestion)
	})
}

func TestServer_CareLog(t *testing.T) {
	req := require.New(t)
	handler := newTestServer(t)

	t.Run("Missing observation is rejected", func(t *testing.T) {
		w := postForm(handler, "/log", url.Values{"severity": {"5"}})
		req.Equal(http.StatusBadRequest, w.Code)
		req.Contains(w.Body.String(), "Please fill in what you observed")
	})

	t.Run("Valid entry renders the note and red flags", func(t *testing.T) {
		w := postForm(handler, "/log", url.Values{
			"person_name": {"Marie"},
			"severity":    {"6"},
			"observed":    {"she fell and hit her head on the counter"},
		})
		req.Equal(http.StatusOK, w.Code)
		body := w.Body.String()
		req.Contains(body, "## Care Log Entry (")
		req.Contains(body, "**Person:** Marie")
		req.Contains(body, "Red-flag keywords were detected")
		req.Contains(body, "Head injury")
	})
}

func TestServer_Resources(t *testing.T) {
	req := require.New(t)
	handler := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/resources?q=checklist", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), "Comfort checklist")
}

func TestServer_APICheck(t *testing.T) {
	req := require.New(t)
	handler := newTestServer(t)

	t.Run("Red flag input", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/check",
			strings.NewReader(`{"text":"he had a seizure a few minutes ago"}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)
		var response checkResponse
		req.NoError(json.Unmarshal(w.Body.Bytes(), &response))
		req.True(response.Urgent)
		req.Equal([]string{"Seizure"}, response.RedFlags)
		req.NotEmpty(response.Suggestions)
	})

	t.Run("No keyword yields the fallback suggestion", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/check",
			strings.NewReader(`{"text":"she enjoyed the garden walk today with her neighbour"}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)
		var response checkResponse
		req.NoError(json.Unmarshal(w.Body.Bytes(), &response))
		req.False(response.Urgent)
		req.Empty(response.RedFlags)
		req.Equal([]string{triage.FallbackSuggestion}, response.Suggestions)
	})

	t.Run("Empty text is a 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(`{"text":""}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		req.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("Oversized text is a 400", func(t *testing.T) {
		huge := strings.Repeat("a", 5000)
		r := httptest.NewRequest(http.MethodPost, "/api/check",
			strings.NewReader(`{"text":"`+huge+`"}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		req.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestServer_APILog(t *testing.T) {
	req := require.New(t)
	handler := newTestServer(t)

	r := httptest.NewRequest(http.MethodPost, "/api/log",
		strings.NewReader(`{"severity":4,"observed":"very confused since breakfast"}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	var response logResponse
	req.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	req.NotEmpty(response.ID)
	req.Contains(response.Note, "### What I observed\nvery confused since breakfast")
	req.Empty(response.RedFlags)
}

func TestServer_Health(t *testing.T) {
	req := require.New(t)
	handler := newTestServer(t)

	// Run one check so the counters move
	postForm(handler, "/check", url.Values{"concern": {"chest pain"}})

	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	var snapshot observability.Snapshot
	req.NoError(json.Unmarshal(w.Body.Bytes(), &snapshot))
	req.Equal(uint64(1), snapshot.ChecksRun)
	req.Equal(uint64(1), snapshot.RedFlagsRaised)
}
