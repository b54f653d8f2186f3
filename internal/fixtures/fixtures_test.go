package fixtures

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/flowstate/internal/models"
	"github.com/tOgg1/flowstate/internal/timeline"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuiltin_AllRecordsValid(t *testing.T) {
	ds, report, err := Load(context.Background(), Options{Builtin: true, Strict: true}, testNow)
	require.NoError(t, err)
	require.Empty(t, report.Rejected)
	require.Equal(t, []string{"builtin"}, report.Sources)
	require.Len(t, ds.Emails, 6)
	require.Len(t, ds.Events, 6)
	require.Len(t, ds.Tasks, 3)
	require.Equal(t, 4, ds.UnreadCount())
	require.Equal(t, 3, ds.EventsOn(testNow))
}

func TestBuiltin_CoversTimelineLabels(t *testing.T) {
	ds := Builtin(testNow)
	groups := timeline.Aggregate(ds.Emails, ds.Events, false, testNow)

	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
	}
	require.Contains(t, labels, "Today")
	require.Contains(t, labels, "Tomorrow")
	require.Contains(t, labels, "Yesterday")

	upcoming := timeline.Upcoming(ds.Events, testNow, 0)
	require.Len(t, upcoming, timeline.DefaultUpcomingLimit)
	require.Equal(t, "ev1", upcoming[0].ID)
	require.Equal(t, "Now", timeline.TimeUntil(upcoming[0], testNow))
}

func TestBuiltin_LinksResolve(t *testing.T) {
	ds := Builtin(testNow)
	events := make(map[string]bool)
	for _, ev := range ds.Events {
		events[ev.ID] = true
	}
	for _, email := range ds.Emails {
		if email.LinkedEvent != "" {
			require.True(t, events[email.LinkedEvent], "email %s links missing event %s", email.ID, email.LinkedEvent)
		}
	}
}

const yamlFixture = `
emails:
  - id: m1
    subject: Launch checklist
    snippet: Final items before Friday
    from: {id: p1, name: Ada Park, email: ada@example.com}
    to:
      - {id: p2, name: Sam Roe, email: sam@example.com}
    timestamp: 2024-03-15T08:00:00Z
    priority: urgent
  - id: m2
    subject: Bad priority
    from: {id: p1, name: Ada Park}
    timestamp: 2024-03-15T07:00:00Z
    priority: critical
events:
  - id: ev1
    title: Launch review
    start_time: 2024-03-15T14:00:00Z
    end_time: 2024-03-15T15:00:00Z
    event_type: meeting
    status: confirmed
tasks:
  - {id: t1, text: Write release notes}
`

func TestLoad_YAMLLenientSkipsInvalid(t *testing.T) {
	path := writeFile(t, "fixture.yaml", yamlFixture)

	ds, report, err := Load(context.Background(), Options{Files: []string{path}}, testNow)
	require.NoError(t, err)
	require.Len(t, ds.Emails, 1)
	require.Equal(t, "m1", ds.Emails[0].ID)
	require.Equal(t, "AP", ds.Emails[0].From.Initials)
	require.Equal(t, []string{}, ds.Emails[0].Labels)
	require.Len(t, ds.Events, 1)
	require.Len(t, ds.Tasks, 1)

	require.Len(t, report.Rejected, 1)
	require.Equal(t, "m2", report.Rejected[0].ID)
	require.ErrorIs(t, report.Rejected[0].Err, models.ErrInvalidPriority)
}

func TestLoad_StrictFailsOnInvalid(t *testing.T) {
	path := writeFile(t, "fixture.yml", yamlFixture)

	_, report, err := Load(context.Background(), Options{Files: []string{path}, Strict: true}, testNow)
	require.Error(t, err)
	require.ErrorIs(t, err, models.ErrInvalidPriority)
	require.Contains(t, err.Error(), "m2")
	require.Len(t, report.Rejected, 1)
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	path := writeFile(t, "dupe.json", `{
  "events": [
    {"id": "ev1", "title": "Dup", "start_time": "2024-03-15T09:00:00Z", "end_time": "2024-03-15T09:30:00Z", "event_type": "task", "status": "confirmed"}
  ]
}`)

	ds, report, err := Load(context.Background(), Options{Builtin: true, Files: []string{path}}, testNow)
	require.NoError(t, err)
	require.Len(t, ds.Events, 6)
	require.Len(t, report.Rejected, 1)
	require.ErrorIs(t, report.Rejected[0].Err, ErrDuplicateID)
}

func TestLoad_EndBeforeStartRejected(t *testing.T) {
	path := writeFile(t, "bad.json", `{
  "events": [
    {"id": "ev9", "title": "Backwards", "start_time": "2024-03-15T10:00:00Z", "end_time": "2024-03-15T09:00:00Z", "event_type": "meeting", "status": "confirmed"}
  ]
}`)

	_, _, err := Load(context.Background(), Options{Files: []string{path}, Strict: true}, testNow)
	require.ErrorIs(t, err, models.ErrEndBeforeStart)
}

func TestReadFile_Errors(t *testing.T) {
	_, err := ReadFile(writeFile(t, "fixture.toml", "x = 1"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadFile(writeFile(t, "typo.yaml", "emials: []\n"))
	require.Error(t, err)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeYAML_Empty(t *testing.T) {
	ds, err := DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, ds.Emails)
}

func TestWriteYAML_LoadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, Builtin(testNow)))

	path := writeFile(t, "export.yaml", buf.String())
	ds, report, err := Load(context.Background(), Options{Files: []string{path}, Strict: true}, testNow)
	require.NoError(t, err)
	require.Empty(t, report.Rejected)
	require.Len(t, ds.Emails, 6)
	require.Len(t, ds.Events, 6)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := writeFile(t, "fixture.yaml", yamlFixture)

	_, _, err := Load(ctx, Options{Files: []string{path}}, testNow)
	require.ErrorIs(t, err, context.Canceled)
}
