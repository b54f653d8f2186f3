package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/flowstate/internal/models"
)

// AvatarPalette returns the six avatar colors of the theme, in the order the
// avatar index selects them.
func (t Theme) AvatarPalette() []string {
	return []string{
		t.Base.Accent,
		t.Signal.Focus,
		t.Signal.Success,
		t.Event.Meeting,
		t.Event.Task,
		t.Event.Reminder,
	}
}

// AvatarIndex picks a palette slot from the first byte of the person id.
func AvatarIndex(id string, paletteLen int) int {
	if paletteLen <= 0 || id == "" {
		return 0
	}
	return int(id[0]) % paletteLen
}

// AvatarColor returns the color code for a person.
func (t Theme) AvatarColor(p models.Person) string {
	palette := t.AvatarPalette()
	return palette[AvatarIndex(p.ID, len(palette))]
}

// Avatar renders a person's initials as a colored badge.
func (t Theme) Avatar(p models.Person) string {
	code := t.AvatarColor(p)
	initials := p.InitialsOrDerived()
	if initials == "" {
		initials = "?"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(code)).
		Foreground(lipgloss.Color(contrastingTextColor(code))).
		Bold(true).
		Render(initials)
}

// AvatarGroup renders at most max avatars followed by "+N" for the rest.
func (t Theme) AvatarGroup(people []models.Person, max int) string {
	shown, overflow := SplitAvatars(people, max)
	out := ""
	for i, p := range shown {
		if i > 0 {
			out += " "
		}
		out += t.Avatar(p)
	}
	if overflow > 0 {
		out += t.Muted().Render(fmt.Sprintf(" +%d", overflow))
	}
	return out
}

// SplitAvatars returns the people displayed and how many are hidden.
func SplitAvatars(people []models.Person, max int) ([]models.Person, int) {
	if max <= 0 || len(people) <= max {
		return people, 0
	}
	return people[:max], len(people) - max
}

func contrastingTextColor(code string) string {
	index, err := strconv.Atoi(code)
	if err != nil {
		return "231"
	}

	r, g, b := ansi256ToRGB(index)
	brightness := (299*r + 587*g + 114*b) / 1000
	if brightness >= 150 {
		return "16"
	}
	return "231"
}

func ansi256ToRGB(index int) (int, int, int) {
	if index < 0 {
		return 255, 255, 255
	}

	if index < 16 {
		table := [16][3]int{
			{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
			{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
			{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		}
		return table[index][0], table[index][1], table[index][2]
	}

	if index <= 231 {
		cube := index - 16
		return channelValue(cube / 36), channelValue((cube / 6) % 6), channelValue(cube % 6)
	}

	if index <= 255 {
		gray := 8 + (index-232)*10
		return gray, gray, gray
	}

	return 255, 255, 255
}

func channelValue(v int) int {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}
