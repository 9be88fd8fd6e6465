package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Focused                             lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor

	SymTag, SymCaretDown, SymCaretRight string
	SymAvatar, SymAvatarPlaceholder     string
	SymDropdown, SymCheck, SymCross     string

	// Glamour standard style used for markdown bodies.
	Markdown string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:    "neon",
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")),
			Focused:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("14")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),

			SymTag: "◆", SymCaretDown: "▾", SymCaretRight: "▸",
			SymAvatar: "◉", SymAvatarPlaceholder: "◌",
			SymDropdown: "▾", SymCheck: "✔", SymCross: "✖",
			Markdown: "dracula",
		}
	case "mono":
		current = Theme{
			Name:    "mono",
			Title:   lipgloss.NewStyle(),
			Muted:   lipgloss.NewStyle(),
			Accent:  lipgloss.NewStyle(),
			Success: lipgloss.NewStyle(),
			Error:   lipgloss.NewStyle(),
			Pending: lipgloss.NewStyle(),

			Selected:    lipgloss.NewStyle().Reverse(true),
			Focused:     lipgloss.NewStyle().Underline(true),
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},

			SymTag: "#", SymCaretDown: "v", SymCaretRight: ">",
			SymAvatar: "@", SymAvatarPlaceholder: "?",
			SymDropdown: "v", SymCheck: "x", SymCross: "!",
			Markdown: "notty",
		}
	default: // classic
		current = Theme{
			Name:    "classic",
			Title:   lipgloss.NewStyle().Bold(true),
			Muted:   lipgloss.NewStyle().Faint(true),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Focused:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("12")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),

			SymTag: "⚑", SymCaretDown: "▾", SymCaretRight: "▸",
			SymAvatar: "●", SymAvatarPlaceholder: "○",
			SymDropdown: "▾", SymCheck: "✔", SymCross: "✖",
			Markdown: "dark",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
