package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longPosting() string {
	return strings.Repeat("We are hiring a senior backend engineer with Go and PostgreSQL experience. ", 10)
}

func TestExtractJobText_PrefersJobSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">Build distributed systems in Go.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Equal(t, "Build distributed systems in Go.", text)
}

func TestExtractJobText_StripsNoise(t *testing.T) {
	html := `<html><body>
		<script>var x = 1;</script>
		<div class="cookie-banner">We use cookies</div>
		<main>Senior Platform Engineer</main>
	</body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Equal(t, "Senior Platform Engineer", text)
	assert.NotContains(t, text, "cookies")
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p></body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text", text)
}

func TestExtractJobText_CollapsesBlankLines(t *testing.T) {
	html := "<html><body><main>First line\n\n\n   Second line   \n</main></body></html>"

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Equal(t, "First line\nSecond line", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("short shell page"))
	assert.False(t, ShouldUseBrowser(longPosting()))
}

func TestJobDescription_PlainHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description">` + longPosting() + `</div></body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "senior backend engineer")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not a url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestJobDescription_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{URL: "https://example.com", Message: "HTTP request failed", Cause: context.DeadlineExceeded}
	assert.Contains(t, err.Error(), "https://example.com")
	assert.Contains(t, err.Error(), "HTTP request failed")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
