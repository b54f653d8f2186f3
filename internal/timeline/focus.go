package timeline

import "github.com/tOgg1/flowstate/internal/models"

// FocusFilter merges emails and events into one item list.
//
// With focusMode off every email is kept, followed by every event. With
// focusMode on only starred or high/urgent emails are kept; events are never
// hidden. An email whose only claim to attention is a linked event is
// dropped in focus mode.
func FocusFilter(emails []models.EmailThread, events []models.CalendarEvent, focusMode bool) []models.TimelineItem {
	items := make([]models.TimelineItem, 0, len(emails)+len(events))
	for i := range emails {
		if focusMode && !KeepInFocus(&emails[i]) {
			continue
		}
		items = append(items, &emails[i])
	}
	for i := range events {
		items = append(items, &events[i])
	}
	return items
}

// KeepInFocus reports whether an email survives focus mode.
func KeepInFocus(email *models.EmailThread) bool {
	return email.IsStarred || email.Priority.IsHighSignal()
}
