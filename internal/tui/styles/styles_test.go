package styles

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/flowstate/internal/models"
)

func TestResolve(t *testing.T) {
	require.Equal(t, "light", Resolve("light", nil).Name)
	require.Equal(t, "dark", Resolve("dark", nil).Name)
	require.Equal(t, "dark", Resolve("system", func() bool { return true }).Name)
	require.Equal(t, "light", Resolve("system", func() bool { return false }).Name)
}

func TestNext(t *testing.T) {
	require.Equal(t, "dark", Next("light"))
	require.Equal(t, "system", Next("dark"))
	require.Equal(t, "light", Next("system"))
	require.Equal(t, "light", Next("bogus"))
}

func TestAvatarIndex(t *testing.T) {
	// '1' is 49, 49 % 6 == 1.
	require.Equal(t, 1, AvatarIndex("1", 6))
	require.Equal(t, 1, AvatarIndex("1abc", 6))
	require.Equal(t, 2, AvatarIndex("2", 6))
	require.Equal(t, 0, AvatarIndex("", 6))
	require.Equal(t, 0, AvatarIndex("x", 0))

	p := models.Person{ID: "2", Name: "Marcus Webb"}
	require.Equal(t, DarkTheme.Signal.Success, DarkTheme.AvatarColor(p))
	require.Equal(t, DarkTheme.AvatarColor(p), DarkTheme.AvatarColor(p))
}

func TestSplitAvatars(t *testing.T) {
	people := []models.Person{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}
	shown, overflow := SplitAvatars(people, 3)
	require.Len(t, shown, 3)
	require.Equal(t, 2, overflow)

	shown, overflow = SplitAvatars(people[:2], 3)
	require.Len(t, shown, 2)
	require.Zero(t, overflow)
}

func TestAvatarGroup_Overflow(t *testing.T) {
	people := []models.Person{
		{ID: "1", Name: "Sarah Chen"},
		{ID: "2", Name: "Marcus Webb"},
		{ID: "3", Name: "Priya Patel"},
		{ID: "4", Name: "Jordan Lee"},
	}
	out := LightTheme.AvatarGroup(people, 3)
	require.Contains(t, out, "SC")
	require.Contains(t, out, "PP")
	require.NotContains(t, out, "JL")
	require.Contains(t, out, "+1")
}

func TestContrastingTextColor(t *testing.T) {
	require.Equal(t, "16", contrastingTextColor("255"))
	require.Equal(t, "231", contrastingTextColor("16"))
	require.Equal(t, "231", contrastingTextColor("not-a-code"))
}

func TestComputeColumnWidths(t *testing.T) {
	wide := ComputeColumnWidths(140, false)
	require.Equal(t, SidebarWidth, wide.Sidebar)
	require.Equal(t, maxContextWidth, wide.Context)
	require.Equal(t, 140, wide.Sidebar+wide.Timeline+wide.Context+LayoutGap*2)

	collapsed := ComputeColumnWidths(140, true)
	require.Equal(t, SidebarCollapsedWidth, collapsed.Sidebar)
	require.Greater(t, collapsed.Timeline, wide.Timeline)

	medium := ComputeColumnWidths(80, false)
	require.Zero(t, medium.Context)
	require.Equal(t, 80, medium.Sidebar+medium.Timeline+LayoutGap)

	narrow := ComputeColumnWidths(50, false)
	require.Equal(t, SidebarCollapsedWidth, narrow.Sidebar)

	tiny := ComputeColumnWidths(30, false)
	require.Equal(t, ColumnWidths{Timeline: 30}, tiny)
}
