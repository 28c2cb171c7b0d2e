package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/task"
	"github.com/simonbystrom/commandcenter/internal/view"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	b, err := board.Load("../board/testdata/board.json")
	require.NoError(t, err)

	s, err := NewServer(b, slog.New(slog.DiscardHandler), &Config{Addr: "127.0.0.1:0", CostTier: "commander"})
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewServer(t *testing.T) {
	b, err := board.Load("../board/testdata/board.json")
	require.NoError(t, err)
	logger := slog.New(slog.DiscardHandler)

	t.Run("uses defaults when config is nil", func(t *testing.T) {
		s, err := NewServer(b, logger, nil)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", s.config.Addr)
		assert.Equal(t, "commander", s.config.CostTier)
	})

	t.Run("returns error when board is nil", func(t *testing.T) {
		_, err := NewServer(nil, logger, nil)
		assert.ErrorContains(t, err, "board cannot be nil")
	})

	t.Run("returns error when logger is nil", func(t *testing.T) {
		_, err := NewServer(b, nil, nil)
		assert.ErrorContains(t, err, "logger is required")
	})
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "DENY", rec.Header().Get(echo.HeaderXFrameOptions))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
}

func TestStaticCSS(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/static/app.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	assert.Contains(t, rec.Body.String(), "@media (max-width: 768px)")
}

func TestIndex(t *testing.T) {
	s := testServer(t)

	t.Run("renders the full board", func(t *testing.T) {
		rec := get(t, s, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()

		for _, want := range []string{
			"Multi-tenant deployment system",
			"Deploy pipeline", "Tenant provisioning", "Billing integration", "Status page",
			"⏳ Waiting for team", "🧪 Needs validation", "🚧 2 blockers", "🚧 1 blocker<",
			"$42", "Commander/mo",
			`class="mobile-tab testing active"`,
		} {
			assert.Contains(t, body, want)
		}
		assert.NotContains(t, body, "modal-content")
		assert.NotContains(t, body, "✕ Clear")
	})

	t.Run("search matches description case-insensitively", func(t *testing.T) {
		body := get(t, s, "/?q=deployment").Body.String()
		assert.Contains(t, body, "Billing integration")
		assert.NotContains(t, body, "Deploy pipeline")
		assert.Contains(t, body, "No tasks here")
	})

	t.Run("categories combine with OR", func(t *testing.T) {
		body := get(t, s, "/?cat=docs&cat=infra&cat=docs").Body.String()
		assert.Contains(t, body, "Deploy pipeline")
		assert.Contains(t, body, "Write docs")
		assert.NotContains(t, body, "Billing integration")
		assert.Contains(t, body, `<a class="filter-btn clear" href="/">✕ Clear</a>`)
	})

	t.Run("search input is escaped", func(t *testing.T) {
		body := get(t, s, "/?q="+url.QueryEscape("<script>alert(1)</script>")).Body.String()
		assert.NotContains(t, body, "<script>alert(1)</script>")
	})

	t.Run("tab selects the mobile column", func(t *testing.T) {
		body := get(t, s, "/?tab=todo").Body.String()
		assert.Contains(t, body, `class="mobile-tab todo active"`)
		assert.NotContains(t, body, `class="mobile-tab testing active"`)
	})

	t.Run("unknown tab falls back to testing", func(t *testing.T) {
		body := get(t, s, "/?tab=archive").Body.String()
		assert.Contains(t, body, `class="mobile-tab testing active"`)
	})
}

func TestIndex_Detail(t *testing.T) {
	s := testServer(t)

	t.Run("blockers and footer", func(t *testing.T) {
		body := get(t, s, "/?task=p1").Body.String()
		assert.Contains(t, body, "modal-content")
		assert.Contains(t, body, `<li class="blocker-item">DNS</li>`)
		assert.Contains(t, body, "Estimated: 12 hours")
		assert.NotContains(t, body, "Completed:")
		assert.NotContains(t, body, `<h3 class="section-title">Details</h3>`)
		assert.NotContains(t, body, `<h3 class="section-title">Links</h3>`)
		assert.Contains(t, body, `<a class="modal-overlay" href="/" aria-label="Close">`)
	})

	t.Run("links open in a new tab without opener", func(t *testing.T) {
		body := get(t, s, "/?task=d1").Body.String()
		assert.Contains(t, body, `href="https://example.com/runbook" target="_blank" rel="noopener noreferrer"`)
		assert.Contains(t, body, "Completed: 2026-01-20")
		assert.Contains(t, body, `<li class="detail-item">GitHub Actions</li>`)
	})

	t.Run("zero estimate is shown", func(t *testing.T) {
		body := get(t, s, "/?task=t1").Body.String()
		assert.Contains(t, body, "Estimated: 0 hours")
		assert.Contains(t, body, "Blocked on DNS team")
	})

	t.Run("unknown task renders no modal", func(t *testing.T) {
		rec := get(t, s, "/?task=nope")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "modal-content")
	})
}

func TestStateFromQuery(t *testing.T) {
	b, err := board.Load("../board/testdata/board.json")
	require.NoError(t, err)

	q := url.Values{
		"q":    {"billing"},
		"cat":  {"backend", "", "backend", "docs"},
		"tab":  {"in-progress"},
		"task": {"p1"},
	}
	st := stateFromQuery(q, b)

	assert.Equal(t, "billing", st.Search())
	assert.Equal(t, []string{"backend", "docs"}, st.Categories())
	assert.Equal(t, board.InProgress, st.Tab())
	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, "p1", sel.ID)

	// the href of a state parses back to the same state
	again := stateFromQuery(mustQuery(t, hrefOf(st)), b)
	assert.Equal(t, queryOf(st), queryOf(again))
}

func TestHrefOf_DefaultState(t *testing.T) {
	assert.Equal(t, "/", hrefOf(view.New()))
}

func TestNewPage_LinksCloseModal(t *testing.T) {
	b, err := board.Load("../board/testdata/board.json")
	require.NoError(t, err)

	st := view.New()
	st.Select(b.Tasks(board.Done)[0])
	p := newPage(b, st, "commander")

	require.NotNil(t, p.Detail)
	assert.Equal(t, "/", p.CloseHref)
	for _, c := range p.Chips {
		assert.NotContains(t, c.Href, "task=")
	}
	// cards switch straight to another task
	assert.Equal(t, "/?task=d2", p.Columns[board.Done].Cards[1].Href)
}

func TestIndex_RendersEveryLink(t *testing.T) {
	b := board.New(board.Project{}, board.Stats{}, map[board.Bucket][]task.Task{
		board.Testing: {
			{ID: "m1", Title: "Mail ops", Category: "ops", Links: []task.Link{
				{Label: "Mail", URL: "mailto:ops@example.com"},
				{Label: "Spec", URL: "/docs/spec"},
				{Label: "Bad", URL: "javascript:alert(1)"},
			}},
		},
	})
	s, err := NewServer(b, slog.New(slog.DiscardHandler), nil)
	require.NoError(t, err)

	st := view.New()
	st.Select(b.Tasks(board.Testing)[0])
	p := newPage(b, st, "commander")
	require.NotNil(t, p.Detail)
	assert.Len(t, p.Detail.Links, 3)

	body := get(t, s, "/?task=m1").Body.String()
	assert.Contains(t, body, `<h3 class="section-title">Links</h3>`)
	assert.Contains(t, body, `href="mailto:ops@example.com" target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, body, `href="/docs/spec" target="_blank" rel="noopener noreferrer"`)
	assert.NotContains(t, body, "javascript:alert")
	assert.Contains(t, body, "#ZgotmplZ")
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	s := testServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func mustQuery(t *testing.T, href string) url.Values {
	t.Helper()
	u, err := url.Parse(href)
	require.NoError(t, err)
	return u.Query()
}
