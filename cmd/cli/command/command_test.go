package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/dto"
)

type cliEnv struct {
	t       *testing.T
	dir     string
	envFile string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	for _, key := range []string{"GO_ENV", "DATABASE_DRIVER", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "STRICT_WATCH_STATUS", "DEFAULT_EPISODE_DURATION", "TRACKER_USER"} {
		t.Setenv(key, "")
	}
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "tv_series.db"))
	return &cliEnv{t: t, dir: dir, envFile: filepath.Join(dir, "absent.env")}
}

// run executes one CLI invocation and returns its stdout.
func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), append([]string{"--env-file", e.envFile}, args...), &stdout, &stderr)
	return stdout.String(), err
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "tracker %v", args)
	return out
}

func TestCLI_UserLogin(t *testing.T) {
	env := newCLIEnv(t)

	assert.Contains(t, env.mustRun("user", "login", "alice"), "Created user alice")
	assert.Contains(t, env.mustRun("user", "login", "alice"), "Welcome back, alice!")
	assert.Contains(t, env.mustRun("user", "list"), "alice")
}

func TestCLI_SeriesLifecycle(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("-u", "alice", "series", "create", "--title", "Foo", "--genre", "Drama",
		"--season", "3", "--season", "3", "--duration", "abc")
	assert.Contains(t, out, "Series created successfully")
	assert.Contains(t, out, "ID: 1")

	out = env.mustRun("-u", "alice", "series", "show", "1")
	assert.Contains(t, out, "Foo (ID: 1)")
	assert.Contains(t, out, "Seasons: 2, Episodes: 6")
	// unparsable duration fell back to the default
	assert.Contains(t, out, "30 min")

	assert.Contains(t, env.mustRun("series", "list"), "Foo")
	assert.Contains(t, env.mustRun("-u", "alice", "series", "mine"), "Foo")

	_, err := env.run("-u", "alice", "series", "delete", "1")
	assert.ErrorIs(t, err, errNotConfirmed)

	_, err = env.run("-u", "bob", "series", "delete", "1", "--yes")
	assert.ErrorContains(t, err, "do not own")

	env.mustRun("-u", "alice", "series", "delete", "1", "--yes")
	_, err = env.run("series", "show", "1")
	assert.ErrorContains(t, err, "series not found")
}

func TestCLI_ShowDoesNotCreateUser(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("-u", "alice", "series", "create", "--title", "Foo", "--genre", "Drama", "--season", "1")

	_, err := env.run("-u", "alcie", "series", "show", "1")
	assert.ErrorContains(t, err, "user not found")

	users := env.mustRun("user", "list")
	assert.Contains(t, users, "alice")
	assert.NotContains(t, users, "alcie")
}

func TestCLI_WatchlistAndReviews(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("-u", "alice", "series", "create", "--title", "Foo", "--genre", "Drama", "--season", "1")

	assert.Contains(t, env.mustRun("-u", "alice", "watchlist", "add", "1"), "Plan to Watch")
	_, err := env.run("-u", "alice", "watchlist", "add", "1")
	assert.ErrorContains(t, err, "already in watchlist")

	assert.Contains(t, env.mustRun("-u", "alice", "watchlist", "status", "1", "watching"), "now Watching")
	_, err = env.run("-u", "alice", "watchlist", "status", "1", "binging")
	assert.ErrorContains(t, err, "invalid watch status")
	assert.Contains(t, env.mustRun("-u", "alice", "watchlist", "list"), "Watching")

	_, err = env.run("-u", "alice", "review", "add", "1", "11", "too", "good")
	assert.ErrorContains(t, err, "between 1 and 10")
	assert.Contains(t, env.mustRun("-u", "alice", "review", "add", "1", "7", "pretty", "good"), "Your Rating: 7/10")
	assert.Contains(t, env.mustRun("-u", "alice", "series", "show", "1"), "alice rated 7/10: pretty good")

	env.mustRun("-u", "alice", "watchlist", "remove", "1")
	_, err = env.run("-u", "alice", "watchlist", "remove", "1")
	assert.ErrorContains(t, err, "not in watchlist")
}

func TestCLI_SeasonsAndEpisodes(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("-u", "alice", "series", "create", "--title", "Foo", "--genre", "Drama")

	assert.Contains(t, env.mustRun("-u", "alice", "season", "add", "1", "1"), "season ID: 1")
	_, err := env.run("-u", "alice", "season", "add", "1", "one")
	assert.ErrorContains(t, err, "not a number")

	out := env.mustRun("-u", "alice", "episode", "add", "1", "--title", "Pilot", "--number", "1", "--duration", "-5")
	assert.Contains(t, out, "30 min")
	assert.Contains(t, env.mustRun("-u", "alice", "series", "show", "1"), "Pilot")

	env.mustRun("-u", "alice", "episode", "delete", "1")
	env.mustRun("-u", "alice", "season", "delete", "1")
	assert.Contains(t, env.mustRun("series", "show", "1"), "Seasons: 0, Episodes: 0")
}

func TestCLI_RequiresUser(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("watchlist", "list")

	assert.ErrorIs(t, err, errNoUser)
}

func TestCLI_UserDeletePolicy(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("-u", "alice", "series", "create", "--title", "Foo", "--genre", "Drama")

	_, err := env.run("user", "delete", "alice")
	assert.ErrorContains(t, err, "still owns series")

	env.mustRun("user", "login", "bob")
	assert.Contains(t, env.mustRun("user", "delete", "bob"), "User bob deleted")
}

func TestCLI_Export(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("-u", "alice", "series", "create", "--title", "Foo", "--genre", "Drama", "--season", "2")
	env.mustRun("-u", "alice", "watchlist", "add", "1")

	target := filepath.Join(env.dir, "export.yaml")
	assert.Contains(t, env.mustRun("-u", "alice", "export", "--output", target), "Exported 1 series")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var snapshot dto.CatalogExport
	require.NoError(t, yaml.Unmarshal(data, &snapshot))
	assert.Equal(t, "alice", snapshot.Username)
	require.Len(t, snapshot.Series, 1)
	assert.Equal(t, 2, snapshot.Series[0].EpisodeCount())
	require.Len(t, snapshot.Watchlist, 1)
	assert.Equal(t, "Plan to Watch", snapshot.Watchlist[0].WatchStatus)
}

func TestCLI_DBReset(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("-u", "alice", "series", "create", "--title", "Foo", "--genre", "Drama")

	_, err := env.run("db", "reset")
	assert.ErrorContains(t, err, "--yes")

	env.mustRun("db", "reset", "--yes")
	assert.Contains(t, env.mustRun("series", "list"), "No series in the catalog yet.")
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 42, parseDuration("42", 30))
	assert.Equal(t, 30, parseDuration("", 30))
	assert.Equal(t, 30, parseDuration("forty", 30))
	assert.Equal(t, 30, parseDuration("0", 30))
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	out := renderTable(&buf, []string{"ID", "Title"}, [][]string{{"1", "Foo"}, {"2"}}, []columnAlignment{alignRight})

	assert.Contains(t, out, "Foo")
	assert.Contains(t, out, "ID")
	assert.False(t, shouldColorize(&buf))
	assert.Empty(t, renderTable(&buf, nil, nil, nil))
}
