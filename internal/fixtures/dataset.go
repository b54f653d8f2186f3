// Package fixtures supplies the in-memory mail and calendar data shown by
// flowstate. It is the ingestion boundary: every record is validated here so
// the timeline never sees malformed input.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tOgg1/flowstate/internal/logging"
	"github.com/tOgg1/flowstate/internal/models"
)

// ErrDuplicateID marks a record whose id was already loaded.
var ErrDuplicateID = errors.New("duplicate id")

// Dataset is the read-only data handed to the views for a session.
type Dataset struct {
	Emails []models.EmailThread
	Events []models.CalendarEvent
	Tasks  []models.QuickTask
}

// Options selects which sources Load reads.
type Options struct {
	// Builtin includes the generated demo data anchored at now.
	Builtin bool

	// Files are YAML or JSON fixture files.
	Files []string

	// ICS are iCalendar files.
	ICS []string

	// Mbox are mbox mail archives.
	Mbox []string

	// Strict turns the first rejected record into a load error instead of
	// skipping it.
	Strict bool
}

// Rejection describes a record dropped at the boundary.
type Rejection struct {
	Source string
	Kind   models.ItemKind
	ID     string
	Err    error
}

func (r Rejection) String() string {
	id := r.ID
	if id == "" {
		id = "<no id>"
	}
	return fmt.Sprintf("%s: %s %s: %v", r.Source, r.Kind, id, r.Err)
}

// Report summarizes a Load call.
type Report struct {
	Sources  []string
	Emails   int
	Events   int
	Tasks    int
	Rejected []Rejection
}

// Load reads every configured source, validates each record and merges the
// accepted ones. Records keep source order; later duplicates are rejected.
func Load(ctx context.Context, opts Options, now time.Time) (Dataset, Report, error) {
	logger := logging.FromContext(ctx).With().Str("component", "fixtures").Logger()
	b := newBuilder(opts.Strict)

	if opts.Builtin {
		b.addDataset("builtin", Builtin(now))
	}
	for _, path := range opts.Files {
		if err := ctx.Err(); err != nil {
			return Dataset{}, Report{}, err
		}
		ds, err := ReadFile(path)
		if err != nil {
			return Dataset{}, Report{}, err
		}
		b.addDataset(path, ds)
	}
	for _, path := range opts.ICS {
		if err := ctx.Err(); err != nil {
			return Dataset{}, Report{}, err
		}
		events, err := ReadICSFile(path, now.Location())
		if err != nil {
			return Dataset{}, Report{}, err
		}
		b.addDataset(path, Dataset{Events: events})
	}
	for _, path := range opts.Mbox {
		emails, err := ReadMboxFile(ctx, path)
		if err != nil {
			return Dataset{}, Report{}, err
		}
		b.addDataset(path, Dataset{Emails: emails})
	}

	for _, r := range b.report.Rejected {
		source := logging.WithSource("fixtures", r.Source)
		source.Warn().Str("kind", string(r.Kind)).Str("id", r.ID).Err(r.Err).Msg("rejected fixture record")
	}
	if opts.Strict && len(b.report.Rejected) > 0 {
		first := b.report.Rejected[0]
		return Dataset{}, b.report, fmt.Errorf("invalid fixture in %s: %s %q: %w", first.Source, first.Kind, first.ID, first.Err)
	}

	b.report.Emails = len(b.data.Emails)
	b.report.Events = len(b.data.Events)
	b.report.Tasks = len(b.data.Tasks)
	logger.Debug().Int("emails", b.report.Emails).Int("events", b.report.Events).Int("rejected", len(b.report.Rejected)).Strs("sources", b.report.Sources).Msg("fixtures loaded")
	return b.data, b.report, nil
}

type builder struct {
	strict   bool
	data     Dataset
	report   Report
	emailIDs map[string]struct{}
	eventIDs map[string]struct{}
	taskIDs  map[string]struct{}
}

func newBuilder(strict bool) *builder {
	return &builder{
		strict:   strict,
		emailIDs: make(map[string]struct{}),
		eventIDs: make(map[string]struct{}),
		taskIDs:  make(map[string]struct{}),
	}
}

func (b *builder) reject(source string, kind models.ItemKind, id string, err error) {
	b.report.Rejected = append(b.report.Rejected, Rejection{Source: source, Kind: kind, ID: id, Err: err})
}

func (b *builder) addDataset(source string, ds Dataset) {
	b.report.Sources = append(b.report.Sources, source)
	for _, email := range ds.Emails {
		if err := email.Validate(); err != nil {
			b.reject(source, models.KindEmail, email.ID, err)
			continue
		}
		if _, dup := b.emailIDs[email.ID]; dup {
			b.reject(source, models.KindEmail, email.ID, ErrDuplicateID)
			continue
		}
		b.emailIDs[email.ID] = struct{}{}
		b.data.Emails = append(b.data.Emails, normalizeEmail(email))
	}
	for _, event := range ds.Events {
		if err := event.Validate(); err != nil {
			b.reject(source, models.KindEvent, event.ID, err)
			continue
		}
		if _, dup := b.eventIDs[event.ID]; dup {
			b.reject(source, models.KindEvent, event.ID, ErrDuplicateID)
			continue
		}
		b.eventIDs[event.ID] = struct{}{}
		b.data.Events = append(b.data.Events, event)
	}
	for _, task := range ds.Tasks {
		if strings.TrimSpace(task.ID) == "" {
			b.reject(source, "task", task.ID, models.ErrMissingID)
			continue
		}
		if _, dup := b.taskIDs[task.ID]; dup {
			b.reject(source, "task", task.ID, ErrDuplicateID)
			continue
		}
		b.taskIDs[task.ID] = struct{}{}
		b.data.Tasks = append(b.data.Tasks, task)
	}
}

func normalizeEmail(email models.EmailThread) models.EmailThread {
	if email.Labels == nil {
		email.Labels = []string{}
	}
	email.From.Initials = email.From.InitialsOrDerived()
	for i := range email.To {
		email.To[i].Initials = email.To[i].InitialsOrDerived()
	}
	return email
}

// UnreadCount counts unread threads.
func (d Dataset) UnreadCount() int {
	n := 0
	for _, email := range d.Emails {
		if !email.IsRead {
			n++
		}
	}
	return n
}

// EventsOn counts events starting on now's local day.
func (d Dataset) EventsOn(now time.Time) int {
	y, m, day := now.Date()
	n := 0
	for _, event := range d.Events {
		ey, em, ed := event.StartTime.In(now.Location()).Date()
		if ey == y && em == m && ed == day {
			n++
		}
	}
	return n
}
