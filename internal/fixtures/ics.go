package fixtures

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/tOgg1/flowstate/internal/models"
)

// ReadICSFile reads every VEVENT of an iCalendar file.
func ReadICSFile(path string, loc *time.Location) ([]models.CalendarEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open calendar %s: %w", path, err)
	}
	defer file.Close()

	events, err := DecodeICS(file, loc)
	if err != nil {
		return nil, fmt.Errorf("parse calendar %s: %w", path, err)
	}
	return events, nil
}

// DecodeICS converts the VEVENTs of one or more VCALENDAR objects. Floating
// times and all-day dates are interpreted in loc.
func DecodeICS(r io.Reader, loc *time.Location) ([]models.CalendarEvent, error) {
	if loc == nil {
		loc = time.Local
	}
	dec := ical.NewDecoder(r)
	var events []models.CalendarEvent
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, ev := range cal.Events() {
			event, err := convertICSEvent(ev, loc)
			if err != nil {
				return nil, err
			}
			events = append(events, event)
		}
	}
	return events, nil
}

func convertICSEvent(ev ical.Event, loc *time.Location) (models.CalendarEvent, error) {
	summary := propText(ev.Props, ical.PropSummary)
	start, err := ev.DateTimeStart(loc)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event %q: start: %w", summary, err)
	}
	allDay := false
	if prop := ev.Props.Get(ical.PropDateTimeStart); prop != nil && prop.ValueType() == ical.ValueDate {
		allDay = true
	}

	// Without DTEND or DURATION an event lasts one day (dates) or is instantaneous.
	end := start
	if allDay {
		end = start.AddDate(0, 0, 1)
	}
	if ev.Props.Get(ical.PropDateTimeEnd) != nil || ev.Props.Get(ical.PropDuration) != nil {
		if end, err = ev.DateTimeEnd(loc); err != nil {
			return models.CalendarEvent{}, fmt.Errorf("event %q: end: %w", summary, err)
		}
	}

	uid := propText(ev.Props, ical.PropUID)
	if uid == "" {
		uid = derivedID("ics", summary, start.UTC().Format(time.RFC3339))
	}

	var attendees []models.Person
	for _, prop := range ev.Props.Values(ical.PropAttendee) {
		attendees = append(attendees, icsPerson(prop))
	}

	return models.CalendarEvent{
		ID:             uid,
		Title:          summary,
		Description:    propText(ev.Props, ical.PropDescription),
		StartTime:      start,
		EndTime:        end,
		Attendees:      attendees,
		Location:       propText(ev.Props, ical.PropLocation),
		IsAllDay:       allDay,
		EventType:      icsEventType(ev.Props),
		ConferenceLink: propText(ev.Props, ical.PropURL),
		Status:         icsStatus(propText(ev.Props, ical.PropStatus)),
	}, nil
}

func propText(props ical.Props, name string) string {
	prop := props.Get(name)
	if prop == nil {
		return ""
	}
	text, err := prop.Text()
	if err != nil {
		return strings.TrimSpace(prop.Value)
	}
	return strings.TrimSpace(text)
}

func icsPerson(prop ical.Prop) models.Person {
	address := strings.TrimSpace(prop.Value)
	if len(address) >= len("mailto:") && strings.EqualFold(address[:len("mailto:")], "mailto:") {
		address = address[len("mailto:"):]
	}
	name := strings.TrimSpace(prop.Params.Get(ical.ParamCommonName))
	return models.Person{
		ID:    derivedID("person", strings.ToLower(address), name),
		Name:  name,
		Email: address,
	}
}

// icsEventType maps CATEGORIES onto an event type; meetings are the default.
func icsEventType(props ical.Props) models.EventType {
	for _, prop := range props.Values(ical.PropCategories) {
		for _, category := range strings.Split(prop.Value, ",") {
			switch t := models.EventType(strings.ToLower(strings.TrimSpace(category))); t {
			case models.EventTypeTask, models.EventTypeReminder, models.EventTypeFocus, models.EventTypeMeeting:
				return t
			}
		}
	}
	return models.EventTypeMeeting
}

func icsStatus(value string) models.EventStatus {
	switch strings.ToUpper(value) {
	case "TENTATIVE":
		return models.EventStatusTentative
	case "CANCELLED":
		return models.EventStatusCancelled
	default:
		return models.EventStatusConfirmed
	}
}

// derivedID builds a stable name-based UUID for records without an id.
func derivedID(parts ...string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(parts, "\x00"))).String()
}
