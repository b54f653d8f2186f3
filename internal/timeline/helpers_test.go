package timeline

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tOgg1/flowstate/internal/models"
)

func email(id string, at time.Time, priority models.Priority, starred bool) models.EmailThread {
	return models.EmailThread{
		ID:        id,
		Subject:   "subject " + id,
		From:      models.Person{ID: "p-" + id, Name: "Sender " + id},
		Timestamp: at,
		IsStarred: starred,
		Priority:  priority,
	}
}

func event(id string, start time.Time, length time.Duration) models.CalendarEvent {
	return models.CalendarEvent{
		ID:        id,
		Title:     "event " + id,
		StartTime: start,
		EndTime:   start.Add(length),
		EventType: models.EventTypeMeeting,
		Status:    models.EventStatusConfirmed,
	}
}

func ids(items []models.TimelineItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ItemID())
	}
	return out
}

var priorities = []models.Priority{
	models.PriorityLow,
	models.PriorityNormal,
	models.PriorityHigh,
	models.PriorityUrgent,
}

// randomFixtures spreads items over a week around now, with some shared instants.
func randomFixtures(seed int64, now time.Time) ([]models.EmailThread, []models.CalendarEvent) {
	rng := rand.New(rand.NewSource(seed))
	emails := make([]models.EmailThread, 0, 40)
	events := make([]models.CalendarEvent, 0, 20)
	for i := 0; i < 40; i++ {
		offset := time.Duration(rng.Intn(7*24*4)-3*24*4) * 15 * time.Minute
		emails = append(emails, email(fmt.Sprintf("e%02d", i), now.Add(offset), priorities[rng.Intn(len(priorities))], rng.Intn(4) == 0))
	}
	for i := 0; i < 20; i++ {
		offset := time.Duration(rng.Intn(7*24*4)-3*24*4) * 15 * time.Minute
		events = append(events, event(fmt.Sprintf("v%02d", i), now.Add(offset), time.Duration(rng.Intn(8)+1)*15*time.Minute))
	}
	return emails, events
}
