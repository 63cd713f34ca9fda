package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsoncopy/internal/config"
	"github.com/mcncl/jsoncopy/internal/errors"
	"github.com/mcncl/jsoncopy/internal/logging"
)

type fixture struct {
	dir    string
	source string
	target string
	stdout *bytes.Buffer
	logs   *bytes.Buffer
}

func newFixture(t *testing.T, source, target string) *fixture {
	t.Helper()

	// Save original CLI state
	originalCLI := CLI
	t.Cleanup(func() { CLI = originalCLI })

	dir := t.TempDir()
	f := &fixture{
		dir:    dir,
		source: filepath.Join(dir, "source.json"),
		target: filepath.Join(dir, "target.json"),
		stdout: &bytes.Buffer{},
		logs:   &bytes.Buffer{},
	}
	if source != "" {
		require.NoError(t, os.WriteFile(f.source, []byte(source), 0644))
	}
	if target != "" {
		require.NoError(t, os.WriteFile(f.target, []byte(target), 0644))
	}

	CLI.Source = f.source
	CLI.Target = f.target
	CLI.DryRun = false
	CLI.Diff = false
	return f
}

func (f *fixture) run(t *testing.T, cfg *config.Config) error {
	t.Helper()
	return run(&Context{
		Config: cfg,
		Logger: logging.New(f.logs, logrus.DebugLevel, false),
		Stdout: f.stdout,
	})
}

func (f *fixture) readTarget(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.target)
	require.NoError(t, err)
	return string(data)
}

func configWith(force bool, keys ...string) *config.Config {
	cfg := config.NewConfig()
	cfg.Force = force
	cfg.Keys = keys
	return cfg
}

func TestRun_SelectedKeyWithForce(t *testing.T) {
	f := newFixture(t,
		`{"db": {"host": "x", "port": 5432}, "debug": true}`,
		`{"db": {"host": "y"}}`)

	require.NoError(t, f.run(t, configWith(true, "db.host")))

	assert.Equal(t, "{\n    \"db\": {\n        \"host\": \"x\"\n    }\n}\n", f.readTarget(t))
	assert.Equal(t, "Done.\n", f.stdout.String())
}

func TestRun_WholeSourceWithoutForce(t *testing.T) {
	f := newFixture(t,
		`{"name": "new", "settings": {"theme": "dark", "lang": "de"}}`,
		`{"settings": {"theme": "light"}, "name": "kept"}`)

	require.NoError(t, f.run(t, configWith(false)))

	expected := `{
    "settings": {
        "theme": "light",
        "lang": "de"
    },
    "name": "kept"
}
`
	assert.Equal(t, expected, f.readTarget(t))
}

func TestRun_MultipleKeys(t *testing.T) {
	f := newFixture(t, `{"a": 1, "b": 2, "c": 3}`, `{}`)

	require.NoError(t, f.run(t, configWith(false, "a", "b")))

	assert.Equal(t, "{\n    \"a\": 1,\n    \"b\": 2\n}\n", f.readTarget(t))
}

func TestRun_MissingTargetIsCreated(t *testing.T) {
	f := newFixture(t, `{"greeting": "grüß dich"}`, "")

	require.NoError(t, f.run(t, configWith(false)))

	assert.Equal(t, "{\n    \"greeting\": \"grüß dich\"\n}\n", f.readTarget(t))
	assert.Contains(t, f.logs.String(), "target file does not exist")
}

func TestRun_InvalidTargetIsReplaced(t *testing.T) {
	f := newFixture(t, `{"a": 1}`, `this is not json`)

	require.NoError(t, f.run(t, configWith(false)))

	assert.Equal(t, "{\n    \"a\": 1\n}\n", f.readTarget(t))
	assert.Contains(t, f.logs.String(), "level=warning")
}

func TestRun_MissingKeyWritesNothing(t *testing.T) {
	original := `{"keep": true}`
	f := newFixture(t, `{"a": 1, "db": {"host": "x"}}`, original)

	err := f.run(t, configWith(true, "a", "db.port"))

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrKeyNotFound))
	assert.Equal(t, `Key not found in source file: db.port (key "port" not found)`, errors.UserFriendlyError(err))
	assert.Equal(t, original, f.readTarget(t))
	assert.Empty(t, f.stdout.String())
}

func TestRun_BlankKeyWritesNothing(t *testing.T) {
	original := `{"db":{"host":"y"}}`
	f := newFixture(t, `{"secret":"s","db":{"host":"x"}}`, original)

	err := f.run(t, configWith(true, ""))

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrKeyNotFound))
	assert.Equal(t, original, f.readTarget(t))
	assert.Empty(t, f.stdout.String())
}

func TestRun_KeyWithSpace(t *testing.T) {
	f := newFixture(t, `{"display name": "Ada", "display": "x", "name": "y"}`, `{}`)

	require.NoError(t, f.run(t, configWith(false, "display name")))

	assert.Equal(t, "{\n    \"display name\": \"Ada\"\n}\n", f.readTarget(t))
}

func TestRun_MissingSourceWritesNothing(t *testing.T) {
	f := newFixture(t, "", `{"keep": true}`)

	err := f.run(t, configWith(false))

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrFileNotFound))
	assert.Contains(t, errors.UserFriendlyError(err), f.source)
	assert.Equal(t, `{"keep": true}`, f.readTarget(t))
}

func TestRun_NoChanges(t *testing.T) {
	f := newFixture(t, `{"a": 1}`, `{"a":1}`)

	require.NoError(t, f.run(t, configWith(false)))

	assert.Equal(t, "Done. (no changes)\n", f.stdout.String())
	assert.Equal(t, `{"a":1}`, f.readTarget(t))
}

func TestRun_DryRun(t *testing.T) {
	f := newFixture(t, `{"a": 1}`, `{"b": 2}`)
	CLI.DryRun = true

	require.NoError(t, f.run(t, configWith(false)))

	assert.Equal(t, "{\n    \"b\": 2,\n    \"a\": 1\n}\n", f.stdout.String())
	assert.Equal(t, `{"b": 2}`, f.readTarget(t))
}

func TestRun_Diff(t *testing.T) {
	f := newFixture(t, `{"a": 1, "b": 3}`, `{"b": 2}`)
	CLI.Diff = true
	CLI.DryRun = true

	require.NoError(t, f.run(t, configWith(true)))

	expected := "  {\n" +
		"-     \"b\": 2\n" +
		"+     \"b\": 3,\n" +
		"+     \"a\": 1\n" +
		"  }\n"
	assert.Equal(t, expected, f.stdout.String())
	assert.Equal(t, `{"b": 2}`, f.readTarget(t))
}

func TestRun_CompactOutput(t *testing.T) {
	f := newFixture(t, `{"a": {"b": [1, 2]}}`, "")
	cfg := configWith(false)
	cfg.Output.Indent = 0

	require.NoError(t, f.run(t, cfg))

	assert.Equal(t, "{\"a\":{\"b\":[1,2]}}\n", f.readTarget(t))
}

func TestCLIOptions(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Keys = []string{"a.b", "c d"}
	CLI.ExtraKeys = []string{"e"}
	CLI.Force = false
	CLI.NoForce = true
	CLI.All = false
	CLI.Indent = -1

	opts := cliOptions()
	assert.Equal(t, []string{"a.b", "c d", "e"}, opts.Keys)
	assert.False(t, opts.Force)
	assert.True(t, opts.NoForce)
	assert.Equal(t, -1, opts.Indent)
	assert.Equal(t, []string{"a.b", "c d"}, CLI.Keys)
}
