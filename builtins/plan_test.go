package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPlanExecute(t *testing.T) {
	dir := t.TempDir()
	core, logs := observer.New(zapcore.DebugLevel)

	plan, err := NewPlan(Options{Prefix: "log", Count: 3, Dir: dir}, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, []string{"log_1", "log_2", "log_3"}, plan.Names())

	var out bytes.Buffer
	results, err := plan.Execute(&out)
	require.NoError(t, err)

	assert.Equal(t, "Creating file: log_1\nCreating file: log_2\nCreating file: log_3\n", out.String())
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, plan.Names()[i], r.Name)
		assert.Equal(t, filepath.Join(dir, r.Name), r.Path)
		assert.Equal(t, ActionCreated, r.Action)
		assert.FileExists(t, r.Path)
	}
	assert.Equal(t, 3, logs.FilterMessage("touched file").Len())
}

func TestPlanExecuteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	plan, err := NewPlan(Options{Prefix: "x", Count: 2, Dir: dir}, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "x_1"), []byte("prior"), 0o644))

	results, err := plan.Execute(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, ActionUpdated, results[0].Action)
	assert.Equal(t, ActionCreated, results[1].Action)

	data, err := os.ReadFile(filepath.Join(dir, "x_1"))
	require.NoError(t, err)
	assert.Equal(t, "prior", string(data))

	results, err = plan.Execute(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, ActionUpdated, results[0].Action)
	assert.Equal(t, ActionUpdated, results[1].Action)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPlanExecuteStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "x_2"), 0o755))
	core, logs := observer.New(zapcore.ErrorLevel)

	plan, err := NewPlan(Options{Prefix: "x", Count: 3, Dir: dir}, zap.New(core))
	require.NoError(t, err)

	var out bytes.Buffer
	results, err := plan.Execute(&out)
	require.ErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), filepath.Join(dir, "x_2"))

	require.Len(t, results, 1)
	assert.Equal(t, "x_1", results[0].Name)
	assert.Equal(t, "Creating file: x_1\nCreating file: x_2\n", out.String())
	assert.NoFileExists(t, filepath.Join(dir, "x_3"))
	assert.Equal(t, 1, logs.FilterMessage("touch failed").Len())
}

func TestPlanDryRun(t *testing.T) {
	dir := t.TempDir()
	plan, err := NewPlan(Options{Prefix: "log", Count: 2, Dir: dir, DryRun: true}, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	results, err := plan.Execute(&out)
	require.NoError(t, err)
	assert.Equal(t, "Would create file: log_1\nWould create file: log_2\n", out.String())
	require.Len(t, results, 2)
	assert.Equal(t, ActionSkipped, results[0].Action)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewPlanRejectsInvalidOptions(t *testing.T) {
	_, err := NewPlan(Options{Prefix: "log", Count: 0}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgs)

	_, err = NewPlan(Options{Count: 1}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestWriteSummary(t *testing.T) {
	results := []Result{
		{Name: "log_1", Path: "/tmp/log_1", Action: ActionUpdated},
		{Name: "log_2", Path: "/tmp/log_2", Action: ActionCreated},
	}

	var out bytes.Buffer
	WriteSummary(&out, "/tmp", results)

	got := out.String()
	assert.Contains(t, got, "Touched files in /tmp")
	assert.Contains(t, got, "File")
	assert.Contains(t, got, "log_1")
	assert.Contains(t, got, "/tmp/log_2")
	assert.Contains(t, got, "Created 1")
	assert.Contains(t, got, "Updated 1")
}

func TestPlanExecuteTouchesAnnouncedPath(t *testing.T) {
	dir := t.TempDir()
	plan, err := NewPlan(Options{Prefix: "nodir/../a", Count: 1, Dir: dir}, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = plan.Execute(&out)
	require.ErrorIs(t, err, ErrIO)
	assert.Equal(t, "Creating file: nodir/../a_1\n", out.String())
	assert.Contains(t, err.Error(), dir+string(filepath.Separator)+"nodir/../a_1")
	assert.NoFileExists(t, filepath.Join(dir, "a_1"))
}

func TestPlanPathWithoutDir(t *testing.T) {
	plan, err := NewPlan(Options{Prefix: "./x", Count: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "./x_1", plan.path("./x_1"))

	plan, err = NewPlan(Options{Prefix: "x", Count: 1, Dir: "/"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/x_1", plan.path("x_1"))
}
