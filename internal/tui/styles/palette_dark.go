package styles

// DarkTheme is the dark palette.
var DarkTheme = Theme{
	Name: "dark",
	Dark: true,
	Base: BaseColors{
		Background: "234",
		Foreground: "252",
		Muted:      "245",
		Accent:     "75",
		Border:     "240",
	},
	Signal: SignalColors{
		Urgent:  "203",
		High:    "215",
		Star:    "220",
		Focus:   "141",
		Success: "78",
	},
	Event: EventColors{
		Meeting:  "75",
		Task:     "78",
		Reminder: "215",
		Focus:    "141",
	},
	Chrome: ChromeColors{
		Header:       "236",
		Footer:       "236",
		Sidebar:      "235",
		SelectedItem: "238",
		Toast:        "61",
	},
}
