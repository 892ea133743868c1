package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Violet       = lipgloss.Color("#9D7CD8")
	BrightViolet = lipgloss.Color("#BB9AF7")
	DimViolet    = lipgloss.Color("#3B2E5A")
	Lavender     = lipgloss.Color("#C0CAF5")
	Teal         = lipgloss.Color("#73DACA")
	Amber        = lipgloss.Color("#E0AF68")
	Red          = lipgloss.Color("#F7768E")
	MidGray      = lipgloss.Color("#565F89")
	White        = lipgloss.Color("#E0E0E0")

	// User input echoed into the transcript
	UserLabelStyle = lipgloss.NewStyle().
			Foreground(BrightViolet).
			Bold(true)

	UserMsgStyle = lipgloss.NewStyle().
			Foreground(Lavender)

	// Assistant replies
	ReplyStyle = lipgloss.NewStyle().
			Foreground(White)

	// Inferred-command hint
	HintStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Italic(true)

	// Warnings (load warnings, busy notices)
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// Errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Input box
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Violet).
			Padding(0, 1)

	// Viewport frame
	ViewportStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimViolet).
			Padding(0, 1)

	// Menu popup
	MenuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Violet).
			Padding(0, 1)

	// Help text under the input
	HelpStyle = lipgloss.NewStyle().
			Foreground(MidGray)

	// Banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(Violet).
			Bold(true)
)

const Banner = `
   █████╗ ████████╗████████╗ █████╗  ██████╗██╗  ██╗███████╗
  ██╔══██╗╚══██╔══╝╚══██╔══╝██╔══██╗██╔════╝██║  ██║██╔════╝
  ███████║   ██║      ██║   ███████║██║     ███████║█████╗
  ██╔══██║   ██║      ██║   ██╔══██║██║     ██╔══██║██╔══╝
  ██║  ██║   ██║      ██║   ██║  ██║╚██████╗██║  ██║███████╗
  ╚═╝  ╚═╝   ╚═╝      ╚═╝   ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝
`
