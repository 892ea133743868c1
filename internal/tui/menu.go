package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/attache/internal/command"
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// MenuModel is the "/" popup: a filterable list of every command.
type MenuModel struct {
	list   list.Model
	active bool
}

func NewMenuModel(specs []command.Spec) MenuModel {
	items := make([]list.Item, 0, len(specs))
	for _, s := range specs {
		items = append(items, item{title: s.Usage, desc: s.Help})
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Violet).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Violet).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(DimViolet)

	l := list.New(items, d, 44, 14)
	l.Title = "Commands"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Foreground(Violet).Bold(true).MarginLeft(2)

	return MenuModel{list: l}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.active = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	if !m.active {
		return ""
	}
	return MenuBoxStyle.Render(m.list.View())
}
