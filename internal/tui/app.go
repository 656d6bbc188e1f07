// SPDX-License-Identifier: MIT
// Package: routepuzzle/internal/tui
//
// app.go - bubbletea host: difficulty menu and puzzle scenes.
//
// Contract:
//   • The App is the session's Navigator; Back returns to the menu scene.
//   • Mouse presses are hit-tested through Session.ControlAt, so the
//     control→node mapping lives in the session, not in the terminal layout.
//   • App uses pointer receivers; run it as tea.NewProgram(app).

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/routepuzzle/core"
	"github.com/katalvlaran/routepuzzle/puzzle"
)

// Board geometry in terminal cells.
const (
	BoardCols = 80
	BoardRows = 30
	boardTop  = 2 // title and status lines above the board
)

type scene int

const (
	menuScene scene = iota
	puzzleScene
)

// Factory creates a session for a tier; the App appends its own options.
type Factory func(tier puzzle.Tier, opts ...puzzle.Option) (*puzzle.Session, error)

// App is the terminal host.
type App struct {
	factory Factory
	width   float64
	height  float64

	scene   scene
	cursor  int
	tier    puzzle.Tier
	session *puzzle.Session
	canvas  *Canvas

	pointer    orb.Point
	hasPointer bool

	message    string
	messageErr bool
	help       help.Model
	keys       keyMap
}

// NewApp builds a host over a width×height play area.
func NewApp(factory Factory, width, height float64) *App {
	return &App{
		factory: factory,
		width:   width,
		height:  height,
		canvas:  NewCanvas(BoardCols, BoardRows, width, height),
		help:    help.New(),
		keys:    keys,
	}
}

// ReturnToMenu implements puzzle.Navigator.
func (a *App) ReturnToMenu() {
	a.scene = menuScene
	a.session = nil
	a.hasPointer = false
	a.message = ""
}

// Session returns the active session, nil on the menu.
func (a *App) Session() *puzzle.Session { return a.session }

// InMenu reports whether the difficulty menu is showing.
func (a *App) InMenu() bool { return a.scene == menuScene }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.scene == menuScene {
			a.updateMenu(msg)
		} else {
			a.updatePuzzle(msg)
		}

	case tea.MouseMsg:
		if a.scene == puzzleScene {
			a.updateMouse(msg)
		}
	}

	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(puzzle.Tiers)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Enter):
		a.play(puzzle.Tiers[a.cursor])
	case key.Matches(msg, a.keys.Node):
		n, _ := strconv.Atoi(msg.String())
		if n >= 1 && n <= len(puzzle.Tiers) {
			a.cursor = n - 1
			a.play(puzzle.Tiers[a.cursor])
		}
	}
}

func (a *App) updatePuzzle(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.session.Press(puzzle.BackControl)
	case key.Matches(msg, a.keys.New):
		a.play(a.tier)
	case key.Matches(msg, a.keys.Start):
		a.session.HandleSelection(a.session.Start())
	case key.Matches(msg, a.keys.End):
		a.session.HandleSelection(a.session.End())
	case key.Matches(msg, a.keys.Node):
		n, _ := strconv.Atoi(msg.String())
		a.session.HandleSelection(core.NodeID(n))
	}
}

func (a *App) updateMouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-boardTop
	cols, rows := a.canvas.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		a.hasPointer = false
		return
	}
	a.pointer, a.hasPointer = a.canvas.ToArea(col, row), true

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if ctl, ok := a.session.ControlAt(a.pointer); ok {
		a.session.Press(ctl.ID)
	}
}

func (a *App) play(tier puzzle.Tier) {
	s, err := a.factory(tier, puzzle.WithNavigator(a))
	if err != nil {
		a.message = fmt.Sprintf("could not build puzzle: %v", err)
		a.messageErr = true
		return
	}
	a.tier = tier
	a.session = s
	a.scene = puzzleScene
	a.message = ""
	a.messageErr = false
}

func (a *App) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Shortest Route Puzzle"))
	s.WriteString("\n")

	if a.scene == menuScene {
		s.WriteString(statusStyle.Render("Choose a difficulty"))
		s.WriteString("\n\n")
		for i, t := range puzzle.Tiers {
			n, _ := t.NodeCount()
			line := fmt.Sprintf("%d. %s (%d nodes)", i+1, t, n)
			if i == a.cursor {
				s.WriteString(cursorStyle.Render(line))
			} else {
				s.WriteString(itemStyle.Render(line))
			}
			s.WriteString("\n")
		}
		if a.message != "" {
			s.WriteString("\n")
			s.WriteString(failureStyle.Render(a.message))
			s.WriteString("\n")
		}
		s.WriteString("\n")
		s.WriteString(helpStyle.Render(a.help.ShortHelpView(a.keys.menuHelp())))
		return s.String()
	}

	st := a.session.RenderState()
	s.WriteString(statusStyle.Render(statusLine(st)))
	s.WriteString("\n")

	a.canvas.Paint(a.session, a.pointer, a.hasPointer)
	s.WriteString(a.canvas.String())
	s.WriteString("\n")

	if banner := Banner(st); banner != "" {
		if st.Outcome == puzzle.Success {
			s.WriteString(successStyle.Render(banner))
		} else {
			s.WriteString(failureStyle.Render(banner))
		}
	}
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(a.help.ShortHelpView(a.keys.puzzleHelp())))

	return s.String()
}

func statusLine(st puzzle.State) string {
	route := make([]string, len(st.PlayerRoute))
	for i, id := range st.PlayerRoute {
		route[i] = id.String()
	}

	return fmt.Sprintf("%s | start %s → end %s | route [%s]",
		st.Tier, st.Start, st.End, strings.Join(route, " "))
}

// Banner returns the result text for a finished session, "" otherwise.
func Banner(st puzzle.State) string {
	switch st.Outcome {
	case puzzle.Success:
		return fmt.Sprintf("SUCCESS! cost %.1f", st.OptimalCost)
	case puzzle.Failure:
		if st.PlayerComplete {
			return fmt.Sprintf("TRY AGAIN! your cost %.1f, best %.1f (shown as ~)", st.PlayerCost, st.OptimalCost)
		}
		return fmt.Sprintf("TRY AGAIN! not every node was visited, best %.1f (shown as ~)", st.OptimalCost)
	default:
		return ""
	}
}
