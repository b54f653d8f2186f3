package fixtures

import (
	"time"

	"github.com/tOgg1/flowstate/internal/models"
)

var (
	personSarah  = models.Person{ID: "1", Name: "Sarah Chen", Email: "sarah@acme.io", Initials: "SC"}
	personMarcus = models.Person{ID: "2", Name: "Marcus Webb", Email: "marcus@studio.dev", Initials: "MW"}
	personPriya  = models.Person{ID: "3", Name: "Priya Patel", Email: "priya@acme.io", Initials: "PP"}
	personJordan = models.Person{ID: "4", Name: "Jordan Lee", Email: "jordan@northwind.co", Initials: "JL"}
	personElena  = models.Person{ID: "5", Name: "Elena Rossi", Email: "elena@acme.io", Initials: "ER"}
	personMe     = models.Person{ID: "0", Name: "You", Email: "me@flowstate.app", Initials: "ME"}
)

// Builtin returns the demo dataset with every instant placed relative to now,
// so the timeline always has items for today, tomorrow and yesterday.
func Builtin(now time.Time) Dataset {
	at := func(dayOffset, hour, minute int) time.Time {
		y, m, d := now.Date()
		return time.Date(y, m, d+dayOffset, hour, minute, 0, 0, now.Location())
	}
	ago := func(d time.Duration) time.Time { return now.Add(-d).Truncate(time.Minute) }
	in := func(d time.Duration) time.Time { return now.Add(d).Truncate(time.Minute) }

	emails := []models.EmailThread{
		{
			ID:            "e1",
			Subject:       "Q2 roadmap review - feedback needed",
			Snippet:       "Hey team, I've attached the latest roadmap draft. Could you take a look before Thursday's sync?",
			From:          personSarah,
			To:            []models.Person{personMe},
			Timestamp:     ago(25 * time.Minute),
			Labels:        []string{"work", "roadmap"},
			HasAttachment: true,
			ReplyCount:    3,
			LinkedEvent:   "ev2",
			Priority:      models.PriorityHigh,
		},
		{
			ID:        "e2",
			Subject:   "Brand refresh: final concepts",
			Snippet:   "Attached are the three directions we discussed. I'd love to get your thoughts before the client call.",
			From:      personMarcus,
			To:        []models.Person{personMe, personPriya},
			Timestamp: ago(2 * time.Hour),
			IsStarred: true,
			Labels:    []string{"design"},
			Priority:  models.PriorityNormal,
		},
		{
			ID:         "e3",
			Subject:    "Production incident: checkout latency",
			Snippet:    "p95 latency on checkout jumped to 4s after the last deploy. Rolling back now, details in the doc.",
			From:       personPriya,
			To:         []models.Person{personMe},
			Cc:         []models.Person{personElena},
			Timestamp:  ago(50 * time.Minute),
			Labels:     []string{"ops"},
			ReplyCount: 7,
			Priority:   models.PriorityUrgent,
		},
		{
			ID:          "e4",
			Subject:     "Contract renewal call",
			Snippet:     "Looking forward to our chat tomorrow. I've shared the updated terms in advance.",
			From:        personJordan,
			To:          []models.Person{personMe},
			Timestamp:   ago(5 * time.Hour),
			IsRead:      true,
			Labels:      []string{"clients"},
			LinkedEvent: "ev4",
			Priority:    models.PriorityNormal,
		},
		{
			ID:        "e5",
			Subject:   "Team offsite photos",
			Snippet:   "Uploaded everything to the shared drive. Some great ones from the hike!",
			From:      personElena,
			To:        []models.Person{personMe, personSarah, personMarcus, personPriya},
			Timestamp: at(-1, 16, 40),
			IsRead:    true,
			Labels:    []string{"team"},
			Priority:  models.PriorityLow,
		},
		{
			ID:            "e6",
			Subject:       "Invoice #4821",
			Snippet:       "Please find attached the invoice for March. Payment terms are net 30.",
			From:          personJordan,
			To:            []models.Person{personMe},
			Timestamp:     at(-1, 9, 15),
			HasAttachment: true,
			Labels:        []string{"finance"},
			Priority:      models.PriorityNormal,
		},
	}

	events := []models.CalendarEvent{
		{
			ID:             "ev1",
			Title:          "Daily standup",
			StartTime:      ago(10 * time.Minute),
			EndTime:        in(5 * time.Minute),
			Attendees:      []models.Person{personSarah, personMarcus, personPriya, personElena, personMe},
			EventType:      models.EventTypeMeeting,
			ConferenceLink: "https://meet.example.com/standup",
			Status:         models.EventStatusConfirmed,
		},
		{
			ID:           "ev2",
			Title:        "Roadmap sync",
			Description:  "Walk through Q2 priorities and owners.",
			StartTime:    in(90 * time.Minute),
			EndTime:      in(150 * time.Minute),
			Attendees:    []models.Person{personSarah, personPriya, personMe},
			Location:     "Room 4B",
			EventType:    models.EventTypeMeeting,
			LinkedThread: "e1",
			Status:       models.EventStatusConfirmed,
		},
		{
			ID:        "ev3",
			Title:     "Deep work: API design",
			StartTime: in(3 * time.Hour),
			EndTime:   in(5 * time.Hour),
			EventType: models.EventTypeFocus,
			Status:    models.EventStatusConfirmed,
		},
		{
			ID:             "ev4",
			Title:          "Northwind contract call",
			StartTime:      at(1, 11, 0),
			EndTime:        at(1, 11, 45),
			Attendees:      []models.Person{personJordan, personMe},
			EventType:      models.EventTypeMeeting,
			LinkedThread:   "e4",
			ConferenceLink: "https://zoom.us/j/5550100?pwd=demo",
			Status:         models.EventStatusTentative,
		},
		{
			ID:        "ev5",
			Title:     "Submit expense report",
			StartTime: at(1, 17, 0),
			EndTime:   at(1, 17, 30),
			EventType: models.EventTypeTask,
			Status:    models.EventStatusConfirmed,
		},
		{
			ID:        "ev6",
			Title:     "Pay invoice #4821",
			StartTime: at(3, 9, 0),
			EndTime:   at(3, 9, 0),
			EventType: models.EventTypeReminder,
			Status:    models.EventStatusConfirmed,
		},
	}

	tasks := []models.QuickTask{
		{ID: "1", Text: "Review roadmap doc"},
		{ID: "2", Text: "Send client update", Completed: true},
		{ID: "3", Text: "Prepare for design review"},
	}

	return Dataset{Emails: emails, Events: events, Tasks: tasks}
}
