// Package tui is the full-screen terminal front-end: a transcript viewport,
// a one-line input, and a "/" popup listing every command.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/attache/internal/assistant"
	"github.com/jeanpaul/attache/internal/command"
)

type entry struct {
	kind    string // "user", "reply", "error", "warning", "hint", "welcome"
	content string
}

type Model struct {
	width, height int
	viewport      viewport.Model
	textarea      textarea.Model
	assistant     *assistant.Assistant
	renderer      *glamour.TermRenderer
	entries       []entry
	menu          MenuModel
}

func NewModel(a *assistant.Assistant, loadWarnings []string) Model {
	ta := textarea.New()
	ta.Placeholder = "Type a command, or / for the menu..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(White)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(DimViolet)
	ta.BlurredStyle.Base = lipgloss.NewStyle().Foreground(MidGray)
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	m := Model{
		viewport:  vp,
		textarea:  ta,
		assistant: a,
		renderer:  r,
		menu:      NewMenuModel(a.Specs()),
	}

	m.entries = append(m.entries, entry{
		kind:    "welcome",
		content: "Welcome! I keep your contacts and notes.\n\nTry:\n  • add-contact Ann 0991234567\n  • add-note Groceries milk and eggs\n  • birthdays 7\n  • help — or / for the command menu",
	})
	for _, w := range loadWarnings {
		m.entries = append(m.entries, entry{kind: "warning", content: w})
	}
	m.rebuildView()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		tea.EnableMouseCellMotion,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.rebuildView()

	case tea.KeyMsg:
		if m.menu.active {
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)

			if msg.String() == "enter" && m.menu.active {
				if selected := m.menu.list.SelectedItem(); selected != nil {
					// Usage strings look like "add-contact <name> [phone]";
					// prime the input with the command word.
					name, _, _ := strings.Cut(selected.(item).Title(), " ")
					m.menu.active = false
					m.textarea.SetValue(name + " ")
					m.textarea.Focus()
					m.textarea.CursorEnd()
				}
			}
			if msg.String() == "esc" {
				m.menu.active = false
				m.textarea.Focus()
			}
			if !m.menu.active {
				m.resize()
				m.rebuildView()
			}
			return m, cmd
		}

		// "/" on an empty line opens the menu with filtering armed.
		if msg.String() == "/" && m.textarea.Value() == "" {
			m.menu.active = true
			m.menu.list.ResetSelected()
			m.menu.list.ResetFilter()
			m.resize()
			m.rebuildView()
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		}

		switch msg.Type {
		case tea.KeyPgUp:
			m.viewport.HalfViewUp()
			return m, nil
		case tea.KeyPgDown:
			m.viewport.HalfViewDown()
			return m, nil
		case tea.KeyEsc, tea.KeyCtrlC:
			if err := m.assistant.Save(); err != nil {
				m.entries = append(m.entries, entry{kind: "error", content: "save failed: " + err.Error()})
				m.rebuildView()
			}
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.textarea.Value())
			if text == "" {
				return m, nil
			}
			m.textarea.Reset()
			return m.execute(text)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if !m.menu.active {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// execute runs one line through the assistant and folds the response into
// the transcript.
func (m Model) execute(text string) (Model, tea.Cmd) {
	m.entries = append(m.entries, entry{kind: "user", content: text})

	resp := m.assistant.Execute(text)
	if resp.Inferred {
		m.entries = append(m.entries, entry{kind: "hint", content: fmt.Sprintf("interpreting as %q", resp.Phrase)})
	}

	switch {
	case resp.IsError:
		m.entries = append(m.entries, entry{kind: "error", content: resp.Message})
	case resp.Op == command.OpHelp:
		rendered, err := m.renderer.Render(resp.Message)
		if err != nil {
			rendered = resp.Message
		}
		m.entries = append(m.entries, entry{kind: "reply", content: strings.TrimRight(rendered, "\n")})
	default:
		m.entries = append(m.entries, entry{kind: "reply", content: resp.Message})
	}
	m.rebuildView()

	if !resp.IsError && resp.Op == command.OpExit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) resize() {
	headerH := 9
	inputH := 3
	menuH := 0
	if m.menu.active {
		menuH = 16
	}
	m.viewport.Width = m.width - 4
	m.viewport.Height = m.height - headerH - inputH - menuH
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.textarea.SetWidth(m.width - 6)
}

func (m *Model) rebuildView() {
	var sb strings.Builder
	for _, e := range m.entries {
		switch e.kind {
		case "welcome":
			sb.WriteString(ReplyStyle.Render(e.content) + "\n\n")
		case "user":
			sb.WriteString(UserLabelStyle.Render("you") + " " + UserMsgStyle.Render(e.content) + "\n")
		case "hint":
			sb.WriteString(HintStyle.Render("  ↪ "+e.content) + "\n")
		case "reply":
			sb.WriteString(ReplyStyle.Render(e.content) + "\n\n")
		case "warning":
			sb.WriteString(WarningStyle.Render("  ⚠ "+e.content) + "\n")
		case "error":
			sb.WriteString(ErrorStyle.Render("  ✗ "+e.content) + "\n\n")
		}
	}

	wasAtBottom := m.viewport.AtBottom()
	m.viewport.SetContent(sb.String())
	if wasAtBottom || len(m.entries) <= 1 {
		m.viewport.GotoBottom()
	}
}

func (m Model) View() string {
	header := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(DimViolet).
		Width(m.width).
		Align(lipgloss.Center).
		Render(BannerStyle.Render(Banner))

	prompt := lipgloss.NewStyle().Foreground(Violet).Bold(true).Render("> ")
	inputBox := InputBoxStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, prompt, m.textarea.View()))

	help := HelpStyle.Render("Enter: run  •  /: menu  •  PgUp/PgDn: scroll  •  Esc: save & quit")

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		header,
		ViewportStyle.Render(m.viewport.View()),
		inputBox,
		lipgloss.NewStyle().PaddingLeft(2).Render(help),
	)

	if m.menu.active {
		return lipgloss.JoinVertical(lipgloss.Left, mainView, m.menu.View())
	}
	return mainView
}
