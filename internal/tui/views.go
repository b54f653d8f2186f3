package tui

import "strings"

// ViewID names a sidebar destination.
type ViewID string

const (
	ViewInbox   ViewID = "inbox"
	ViewToday   ViewID = "today"
	ViewStarred ViewID = "starred"
	ViewSnoozed ViewID = "snoozed"
	ViewSent    ViewID = "sent"
	ViewArchive ViewID = "archive"
	ViewTeam    ViewID = "team"
)

type navItem struct {
	id    ViewID
	icon  string
	label string
	title string
	count int
	space bool
}

// navItems is the sidebar order. Counts are static badges.
var navItems = []navItem{
	{id: ViewInbox, icon: "✉", label: "Inbox", title: "Inbox", count: 12},
	{id: ViewToday, icon: "◷", label: "Today", title: "Today"},
	{id: ViewStarred, icon: "★", label: "Starred", title: "Starred", count: 3},
	{id: ViewSnoozed, icon: "◔", label: "Snoozed", title: "Snoozed"},
	{id: ViewSent, icon: "➤", label: "Sent", title: "Sent"},
	{id: ViewArchive, icon: "▤", label: "Archive", title: "Archive"},
	{id: ViewTeam, icon: "#", label: "Team", title: "Team Space", space: true},
}

func parseView(value string) ViewID {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, item := range navItems {
		if string(item.id) == value {
			return item.id
		}
	}
	return ViewInbox
}

func viewTitle(id ViewID) string {
	for _, item := range navItems {
		if item.id == id {
			return item.title
		}
	}
	return "Inbox"
}
