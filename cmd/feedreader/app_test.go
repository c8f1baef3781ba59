package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "feedreader/core/errors"
)

const testRSS = `<?xml version="1.0"?>
<rss version="2.0"><channel>
<title>Test Blog</title><link>https://blog.example</link><description>d</description>
<item><title>First post</title><link>https://blog.example/1</link><description>&lt;p&gt;Hello &lt;b&gt;world&lt;/b&gt;&lt;/p&gt;</description></item>
<item><title>Second post</title><link>https://blog.example/2</link><description>More text</description></item>
</channel></rss>`

// setupEnv points the registry at a local feed server and isolates config
func setupEnv(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rss" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testRSS)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	feeds := filepath.Join(dir, "feeds.toml")
	content := fmt.Sprintf(`
[[feeds]]
name = "Test Blog"
url = "%s/rss"

[[feeds]]
name = "Missing"
url = "%s/missing"
`, srv.URL, srv.URL)
	require.NoError(t, os.WriteFile(feeds, []byte(content), 0o600))

	for _, k := range []string{"PORT", "CACHE_TTL", "REDIS_ADDRESS", "FETCH_TIMEOUT", "FETCH_USER_AGENT",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	t.Setenv("FEEDS_FILE", feeds)
	t.Setenv("CACHE_TYPE", "none")
	t.Setenv("FETCH_ATTEMPTS", "1")
	t.Setenv("LOG_LEVEL", "error")

	return filepath.Join(dir, "absent.env")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := RootApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"feedreader"}, args...))
	return out.String(), err
}

func TestFeedsCommand(t *testing.T) {
	envFile := setupEnv(t)

	out, err := run(t, "--env-file", envFile, "feeds")
	require.NoError(t, err)

	assert.Contains(t, out, "INDEX")
	assert.Regexp(t, `(?m)^0\s+Test Blog\s+http://`, out)
	assert.Regexp(t, `(?m)^1\s+Missing\s+http://`, out)
}

func TestFeedsCommand_JSON(t *testing.T) {
	envFile := setupEnv(t)

	out, err := run(t, "--env-file", envFile, "feeds", "--json")
	require.NoError(t, err)

	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, 2, list.Total)
}

func TestLoadCommand_Text(t *testing.T) {
	envFile := setupEnv(t)

	out, err := run(t, "--env-file", envFile, "load", "--index", "0")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Test Blog (2 entries)"), out)
	assert.Contains(t, out, "First post")
	assert.Contains(t, out, "Hello world")
	assert.Contains(t, out, "https://blog.example/2")
}

func TestLoadCommand_HTML(t *testing.T) {
	envFile := setupEnv(t)

	out, err := run(t, "--env-file", envFile, "load", "-i", "0", "--format", "html")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, `<article class="entry"`))
	assert.Contains(t, out, "<h2>Second post</h2>")
}

func TestLoadCommand_InvalidIndex(t *testing.T) {
	envFile := setupEnv(t)

	_, err := run(t, "--env-file", envFile, "load", "--index", "7")
	assert.True(t, apperrors.IsInvalidFeedIndex(err), "got %v", err)
}

func TestLoadCommand_FetchFailure(t *testing.T) {
	envFile := setupEnv(t)

	_, err := run(t, "--env-file", envFile, "load", "--index", "1")
	assert.True(t, apperrors.IsFetchFailure(err), "got %v", err)
}

func TestLoadCommand_UnknownFormat(t *testing.T) {
	envFile := setupEnv(t)

	_, err := run(t, "--env-file", envFile, "load", "--index", "0", "--format", "pdf")
	assert.Error(t, err)
}

func TestInvalidConfiguration(t *testing.T) {
	envFile := setupEnv(t)
	t.Setenv("CACHE_TYPE", "memcached")

	_, err := run(t, "--env-file", envFile, "feeds")
	assert.True(t, apperrors.IsConfiguration(err), "got %v", err)
}
