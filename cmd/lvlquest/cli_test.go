package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlquest/internal/config"
)

// execute runs the root command with a fresh app and a missing config file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvParallel, "")
	t.Setenv(config.EnvLogLevel, "")

	cmd := newRootCmd(&app{log: zap.NewNop()})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	dir := t.TempDir()
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "none.yaml"),
		"--env-file", filepath.Join(dir, "none.env"),
	}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "array/two-sum")
	assert.Contains(t, out, "stream/randomized-set")
	assert.Contains(t, out, "hash, brute, two-pointers")

	out, err = execute(t, "list", "cache")
	require.NoError(t, err)
	assert.Contains(t, out, "cache/lfu")
	assert.NotContains(t, out, "array/")

	_, err = execute(t, "list", "graphs")
	assert.ErrorContains(t, err, "unknown family")
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--parallel", "4")
	require.NoError(t, err)
	assert.Contains(t, out, " 0 failed, 0 skipped")

	out, err = execute(t, "run", "eval-rpn", "--variant", "infix")
	require.NoError(t, err)
	assert.Regexp(t, `: 6 passed, 0 failed`, out)
}

func TestRun_FailingCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	body := "heaps/last-stone-weight:\n  - name: wrong\n    input: [1]\n    want: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := execute(t, "run", "last-stone-weight", "--cases", path, "--variant", "sort")
	assert.ErrorContains(t, err, "1 case(s) failed")
	assert.Contains(t, out, "FAIL heaps/last-stone-weight [sort] wrong")
}

func TestRun_UnknownProblem(t *testing.T) {
	_, err := execute(t, "run", "towers-of-hanoi")
	assert.Error(t, err)
}

func TestCache(t *testing.T) {
	out, err := execute(t, "cache", "--kind", "lfu", "--capacity", "2",
		"--ops", "put:1:1,put:2:2,get:1,put:3:3,get:2,get:3")
	require.NoError(t, err)
	assert.Contains(t, out, "get 1 = 1\n")
	assert.Contains(t, out, "get 2 = -1\n")
	assert.Contains(t, out, "get 3 = 3\n")
	assert.Contains(t, out, `lvlquest_cache_requests_total{result="hit"} 2`)
	assert.Contains(t, out, `lvlquest_cache_requests_total{result="miss"} 1`)
	assert.Contains(t, out, "lvlquest_cache_evictions_total 1")
	assert.Contains(t, out, "lvlquest_cache_entries 2")
}

func TestCache_BadInput(t *testing.T) {
	_, err := execute(t, "cache", "--kind", "fifo")
	assert.ErrorContains(t, err, "unknown cache kind")

	_, err = execute(t, "cache", "--ops", "put:1")
	assert.ErrorContains(t, err, "want put:KEY:VALUE")

	_, err = execute(t, "cache", "--ops", "get:x")
	assert.Error(t, err)

	_, err = execute(t, "cache", "--capacity", "-1")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	t.Setenv(config.EnvParallel, "")
	t.Setenv(config.EnvLogLevel, "")
	dir := t.TempDir()
	extra := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(extra, []byte("queue/count-students:\n  - name: from-config\n    input: {students: [0], sandwiches: [1]}\n    want: 1\n"), 0o644))
	cfgPath := filepath.Join(dir, "lvlquest.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("parallelism: 2\ncase_files: [extra.yaml]\n"), 0o644))

	a := &app{log: zap.NewNop()}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "--env-file", filepath.Join(dir, "none.env"), "list", "queue"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 2, a.cfg.Parallelism)
	assert.Regexp(t, `queue/count-students\s+3\s`, out.String())
}
