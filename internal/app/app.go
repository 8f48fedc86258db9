package app

import (
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/glassquiz/glassquiz/internal/catalog"
	"github.com/glassquiz/glassquiz/internal/quiz"
	"github.com/glassquiz/glassquiz/internal/router"
	"github.com/glassquiz/glassquiz/internal/screen"
	"github.com/glassquiz/glassquiz/internal/screens/home"
	quizscreen "github.com/glassquiz/glassquiz/internal/screens/quiz"
	"github.com/glassquiz/glassquiz/internal/screens/ranking"
	"github.com/glassquiz/glassquiz/internal/screens/result"
	"github.com/glassquiz/glassquiz/internal/screens/wronganswers"
	"github.com/glassquiz/glassquiz/internal/sound"
	"github.com/glassquiz/glassquiz/internal/ui/keys"
	"github.com/glassquiz/glassquiz/internal/ui/layout"
)

// Options wires the app's collaborators. Zero values select defaults.
type Options struct {
	Catalog *catalog.Catalog
	Player  sound.Player
	Logger  *slog.Logger
	Now     func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *quiz.Controller
	router *router.Router
	width  int
	height int
}

// NewModel builds the controller and one screen per session screen.
func NewModel(opts Options) (AppModel, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Player == nil {
		opts.Player = sound.Nop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ctrl := quiz.NewController(opts.Catalog, quiz.Options{
		Now:    opts.Now,
		Logger: opts.Logger,
	})

	r, err := router.New(ctrl, map[quiz.Screen]screen.Screen{
		quiz.ScreenHome:         home.New(ctrl),
		quiz.ScreenQuiz:         quizscreen.New(ctrl, opts.Player),
		quiz.ScreenResult:       result.New(ctrl),
		quiz.ScreenWrongAnswers: wronganswers.New(ctrl),
		quiz.ScreenRanking:      ranking.New(ctrl, opts.Now),
	})
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{ctrl: ctrl, router: r}, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.render(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// render draws the full frame, or nothing before the first resize.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), layout.SessionStats{
		Runs:  len(m.ctrl.Rankings()),
		Wrong: len(m.ctrl.WrongAnswers()),
	}, m.width)

	hints := layout.HintsFromBindings(keys.Select, keys.Quit)
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
