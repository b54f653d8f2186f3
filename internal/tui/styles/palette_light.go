package styles

// LightTheme is the light palette.
var LightTheme = Theme{
	Name: "light",
	Base: BaseColors{
		Background: "255",
		Foreground: "236",
		Muted:      "244",
		Accent:     "26",
		Border:     "250",
	},
	Signal: SignalColors{
		Urgent:  "160",
		High:    "166",
		Star:    "172",
		Focus:   "92",
		Success: "28",
	},
	Event: EventColors{
		Meeting:  "26",
		Task:     "28",
		Reminder: "166",
		Focus:    "92",
	},
	Chrome: ChromeColors{
		Header:       "254",
		Footer:       "254",
		Sidebar:      "254",
		SelectedItem: "253",
		Toast:        "153",
	},
}
