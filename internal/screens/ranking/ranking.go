package ranking

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/glassquiz/glassquiz/internal/quiz"
	"github.com/glassquiz/glassquiz/internal/screen"
	"github.com/glassquiz/glassquiz/internal/ui/components"
	"github.com/glassquiz/glassquiz/internal/ui/keys"
	"github.com/glassquiz/glassquiz/internal/ui/layout"
	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

var medals = []string{"🥇", "🥈", "🥉"}

// RankingScreen is the session leaderboard.
type RankingScreen struct {
	ctrl    *quiz.Controller
	now     func() time.Time
	entries []quiz.RankingEntry
	scroll  components.Scroller
	// lines is the rendered row line count from the last View.
	lines int
}

var (
	_ screen.Screen          = (*RankingScreen)(nil)
	_ screen.KeyHintProvider = (*RankingScreen)(nil)
)

// New creates a RankingScreen. now feeds the relative age column and
// defaults to time.Now.
func New(ctrl *quiz.Controller, now func() time.Time) *RankingScreen {
	if now == nil {
		now = time.Now
	}
	return &RankingScreen{ctrl: ctrl, now: now}
}

func (s *RankingScreen) Init() tea.Cmd {
	s.entries = s.ctrl.Rankings()
	s.scroll = components.Scroller{}
	s.lines = 0
	return nil
}

func (s *RankingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if key.Matches(kmsg, keys.Back, keys.Select) {
		s.ctrl.GoHome()
		return s, nil
	}
	s.scroll = s.scroll.Update(kmsg, s.lines)
	return s, nil
}

func (s *RankingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	heading := components.Heading("🏆 Ranking", cw)

	if len(s.entries) == 0 {
		body := components.GlassCard(strings.Join([]string{
			"🏆",
			theme.Body.Render("No records yet"),
			theme.Hint.Render("Take a quiz!"),
		}, "\n"), cw)
		return components.GlassFrame(heading+"\n\n"+body, width, height)
	}

	now := s.now()
	var lines []string
	for i, e := range s.entries {
		lines = append(lines, strings.Split(renderRow(i+1, e, now, cw), "\n")...)
	}
	s.lines = len(lines)
	window := s.scroll.Window(lines, height-4)
	return components.GlassFrame(heading+"\n\n"+strings.Join(window, "\n"), width, height)
}

// Medal returns the badge for a 1-based rank.
func Medal(rank int) string {
	if rank >= 1 && rank <= len(medals) {
		return medals[rank-1]
	}
	return fmt.Sprintf("%d.", rank)
}

func renderRow(rank int, e quiz.RankingEntry, now time.Time, cw int) string {
	medal := lipgloss.NewStyle().
		Width(4).
		Foreground(theme.MedalColor(rank)).
		Bold(true).
		Render(Medal(rank))

	info := lipgloss.JoinVertical(lipgloss.Left,
		theme.Body.Bold(true).Render(e.TopicName),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d/%d correct · %s · %s", e.Score, e.Total, e.Date, humanize.RelTime(e.Timestamp, now, "ago", "from now")),
		),
	)

	pct := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%d%%", e.Percent()))

	inner := max(cw-4, 0)
	gap := max(inner-lipgloss.Width(medal)-lipgloss.Width(info)-lipgloss.Width(pct), 1)
	row := lipgloss.JoinHorizontal(lipgloss.Center, medal, info, strings.Repeat(" ", gap), pct)

	border := theme.Border
	if rank <= len(medals) {
		border = theme.MedalColor(rank)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(cw-2, 0)).
		Padding(0, 1).
		Render(row)
}

func (s *RankingScreen) Title() string {
	return "Ranking"
}

func (s *RankingScreen) KeyHints() []layout.KeyHint {
	home := key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("Esc", "home"))
	if len(s.entries) == 0 {
		return layout.HintsFromBindings(home, keys.Quit)
	}
	return layout.HintsFromBindings(keys.Up, keys.Down, home, keys.Quit)
}
