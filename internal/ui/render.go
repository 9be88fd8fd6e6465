package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/itemdetail/internal/fragment"
)

// Renderer draws fragment trees as terminal text.
type Renderer struct {
	Width int
	// Focus is the node under the keyboard cursor, if any.
	Focus *fragment.Node
}

// Render draws n. Nodes classed "hidden" and nil nodes draw nothing.
func (r Renderer) Render(n *fragment.Node) string {
	out := r.node(n)
	if r.Width <= 0 {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, ln := range lines {
		lines[i] = ansi.Truncate(ln, r.Width, "…")
	}
	return strings.Join(lines, "\n")
}

func (r Renderer) node(n *fragment.Node) string {
	if n == nil || n.HasClass("hidden") {
		return ""
	}
	t := current
	var s string
	switch n.Tag {
	case fragment.UL:
		sep := " "
		if n.HasClass("tags__list") {
			sep = ""
		}
		s = strings.Join(r.children(n), sep)
	case fragment.LI:
		switch {
		case n.HasClass("tag-sep"):
			s = t.Muted.Render(n.Text) + " "
		case len(n.Children) > 0:
			s = strings.Join(r.children(n), "")
		default:
			s = t.Accent.Render(n.Text)
		}
		if n.HasClass("selected") {
			s = t.Selected.Render(ansi.Strip(s))
		}
	case fragment.Button:
		s = " " + n.Text + " "
	case fragment.Span:
		switch {
		case n.HasClass("glyphicon-tag"):
			s = t.Muted.Render(t.SymTag) + " "
		case n.HasClass("status"):
			s = t.Pending.Render(n.Text)
		default:
			s = n.Text
		}
	case fragment.Div:
		switch {
		case n.HasClass("header"):
			s = lipgloss.JoinVertical(lipgloss.Left, r.children(n)...)
		case n.HasClass("title"):
			s = t.Title.Render(n.Text)
		case n.HasClass("sep"):
			w := r.Width
			if w <= 0 {
				w = 20
			}
			s = t.Muted.Render(strings.Repeat(t.Border.Top, w))
		case n.HasClass("action__restricted"):
			s = t.Muted.Render(ansi.Strip(strings.Join(r.children(n), "")))
		default:
			s = n.Text + strings.Join(r.children(n), "")
		}
	case fragment.Select:
		s = r.selectBox(n.Select)
	case fragment.Mentions:
		s = r.mentions(n.Mentions)
	case fragment.Avatar:
		s = r.avatar(n.Avatar)
	case fragment.Markdown:
		s = r.markdown(n.Text)
	default:
		s = n.Text + strings.Join(r.children(n), "")
	}
	if n == r.Focus && n.Tag != fragment.Markdown {
		s = t.Focused.Render(ansi.Strip(s))
	}
	return s
}

func (r Renderer) children(n *fragment.Node) []string {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if s := r.node(c); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r Renderer) selectBox(p *fragment.SelectProps) string {
	t := current
	if p == nil {
		return ""
	}
	label := p.Value
	style := lipgloss.NewStyle()
	if label == "" {
		label = p.Placeholder
		style = t.Muted
	}
	if p.Disabled {
		style = t.Muted
	}
	box := style.Render(label) + " " + t.Muted.Render(t.SymDropdown)
	if p.Clearable && p.Value != "" {
		box += " " + t.Muted.Render("×")
	}
	return box
}

func (r Renderer) mentions(p *fragment.MentionsProps) string {
	if p == nil {
		return ""
	}
	if p.Value == "" {
		return current.Muted.Render(p.Placeholder)
	}
	return p.Value
}

func (r Renderer) avatar(p *fragment.AvatarProps) string {
	t := current
	if p == nil || p.Email == "" {
		return t.Muted.Render(t.SymAvatarPlaceholder)
	}
	return t.Accent.Render(t.SymAvatar) + " " + t.Muted.Render(p.Email)
}

func (r Renderer) markdown(text string) string {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(current.Markdown)}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	gr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return text
	}
	out, err := gr.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
