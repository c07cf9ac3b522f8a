package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/milestones/internal/calendar"
	"github.com/mmynk/milestones/internal/loader"
)

func setupRun(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_PATH", "")
	t.Setenv("METRICS_PATH", "")

	path := filepath.Join(dir, "birthdays.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Ann", "birthday": "1990-03-01"},
		{"name": "Bob", "birthday": "2000-01-01"}
	]`), 0o600))
	return path
}

func TestRunPrintsTomorrowsMilestones(t *testing.T) {
	path := setupRun(t)

	var out bytes.Buffer
	err := run(context.Background(), []string{"--birthdays", path, "--today", "1998-06-30"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Milestones tomorrow:\n- Ann: 100 months (1998-07-01)\n", out.String())
}

func TestRunNothingTomorrow(t *testing.T) {
	path := setupRun(t)

	var out bytes.Buffer
	err := run(context.Background(), []string{"--birthdays", path, "--today", "2015-02-02"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "No milestones tomorrow.\n", out.String())
}

func TestRunWithDatabaseAndMetrics(t *testing.T) {
	path := setupRun(t)
	dir := filepath.Dir(path)
	dbPath := filepath.Join(dir, "data", "people.db")
	metricsPath := filepath.Join(dir, "milestones.prom")

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"--birthdays", path,
		"--db", dbPath,
		"--metrics", metricsPath,
		"--today", "2027-05-18",
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "- Bob: 10,000 days (2027-05-19)")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "milestones_people_evaluated_total 2")

	// The database now holds the people even once the file is gone.
	require.NoError(t, os.Remove(path))
	out.Reset()
	err = run(context.Background(), []string{"--birthdays", path, "--db", dbPath, "--today", "1998-06-30"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "- Ann: 100 months (1998-07-01)")
}

func TestRunMissingBirthdays(t *testing.T) {
	setupRun(t)

	err := run(context.Background(), []string{"--birthdays", "nope.json"}, &bytes.Buffer{})
	require.ErrorIs(t, err, loader.ErrBirthdaysNotFound)
}

func TestRunBadToday(t *testing.T) {
	path := setupRun(t)

	err := run(context.Background(), []string{"--birthdays", path, "--today", "tomorrow"}, &bytes.Buffer{})
	require.ErrorIs(t, err, loader.ErrInvalidDate)
	assert.Contains(t, err.Error(), "--today")
}

func TestReferenceDate(t *testing.T) {
	now := time.Date(2026, 10, 17, 23, 15, 0, 0, time.Local)
	got, err := referenceDate("", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(calendar.Date(2026, 10, 17)))

	got, err = referenceDate("1998-06-30", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(calendar.Date(1998, 6, 30)))
}

func TestRunMissingBirthdaysWithFreshDatabase(t *testing.T) {
	path := setupRun(t)
	dbPath := filepath.Join(filepath.Dir(path), "fresh.db")

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"--birthdays", "typo.json",
		"--db", dbPath,
		"--today", "2015-02-02",
	}, &out)
	require.ErrorIs(t, err, loader.ErrBirthdaysNotFound)
	assert.Contains(t, err.Error(), "typo.json")
	assert.Empty(t, out.String())
}
