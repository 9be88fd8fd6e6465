package tui

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/itemdetail/internal/detail"
	"github.com/Makepad-fr/itemdetail/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	r := ui.Renderer{Width: inner}

	var lines []string
	lines = append(lines, r.Render(m.p.Header(fmt.Sprintf("#%d %s", m.item.Number, m.item.Title))))
	if by, ok := m.p.CreatedByTimestamp(m.item.CreatedAt, m.item.CreatedBy); ok {
		lines = append(lines, t.Muted.Render(by))
	} else {
		lines = append(lines, t.Muted.Render("Created "+m.p.TimeSinceNow(m.item.CreatedAt)))
	}
	lines = append(lines, "")

	status := m.p.ItemStatus(m.item.Status)
	if m.hover.status != "" {
		status += t.Muted.Render("  → " + m.p.ItemStatus(m.hover.status))
	}
	lines = append(lines, m.row(ctrlStatus, "Status", status))
	lines = append(lines, m.controlBody(ctrlStatus, r)...)

	estimate := t.Muted.Render("none")
	if m.item.Score != "" {
		estimate = m.item.Score
	}
	lines = append(lines, m.row(ctrlEstimate, "Estimate", estimate))
	lines = append(lines, m.controlBody(ctrlEstimate, r)...)

	lines = append(lines, m.row(ctrlAssignee, "Assignee", m.assigneeLine(r)))
	lines = append(lines, m.controlBody(ctrlAssignee, r)...)

	if tags := m.p.BuildTags(m.item.Tags); tags != nil {
		lines = append(lines, ui.Row("  Tags", r.Render(tags)))
	}
	lines = append(lines, "")

	lines = append(lines, m.row(ctrlDescription, "Description", ""))
	lines = append(lines, m.controlBody(ctrlDescription, r)...)
	if m.open() != ctrlDescription {
		if d := r.Render(m.p.Description(m.item.Description)); d != "" {
			lines = append(lines, d)
		}
	}

	if m.err != "" {
		lines = append(lines, "", t.Error.Render(m.err))
	}
	lines = append(lines, "", m.help.View(m.keys))
	return ui.PanelString(strings.Join(lines, "\n"))
}

func (m Model) row(name, label, value string) string {
	caret := ui.Current().SymCaretRight
	if m.p.CaretDirection(m.toggles[name]) == "down" {
		caret = ui.Current().SymCaretDown
	}
	return ui.Row(caret+" "+label, value)
}

func (m Model) assigneeLine(r ui.Renderer) string {
	var email, label string
	if m.item.AssignedTo != nil {
		if mem, ok := m.ws.Member(*m.item.AssignedTo); ok {
			email, label = mem.Email, mem.Label
		}
	}
	out := r.Render(m.p.AssigneeGravatar(email))
	if label != "" {
		out += " " + label
	}
	return out
}

// controlBody renders the expanded part of a control. Closed controls are
// classed hidden and draw nothing.
func (m Model) controlBody(name string, r ui.Renderer) []string {
	class := detail.ComponentVisible(m.toggles, name)
	if class == "hidden" {
		return nil
	}

	var body string
	switch name {
	case ctrlStatus, ctrlEstimate:
		n := m.picker()
		if n != nil && m.cursor < len(n.Children) {
			r.Focus = n.Children[m.cursor]
		}
		body = r.Render(n)
	case ctrlAssignee:
		n := m.p.AssigneeSelector(m.item, m.ws.Members)
		if n.Select == nil {
			body = r.Render(n)
		} else {
			body = r.Render(n) + "\n" + m.assignee.View()
		}
	case ctrlDescription:
		mentions := m.p.MentionsComponent(m.editor.Value(), m.editor.Placeholder, m.ws.Members, nil)
		body = m.editor.View()
		if len(m.suggestions) > 0 {
			var names []string
			for _, s := range m.suggestions {
				names = append(names, "@"+s.Display)
			}
			body += "\n" + ui.Current().Muted.Render("tab: "+strings.Join(names, "  "))
		} else if len(mentions.Mentions.Suggestions) > 0 {
			body += "\n" + ui.Current().Muted.Render(fmt.Sprintf("%d members can be mentioned", len(mentions.Mentions.Suggestions)))
		}
	}

	return []string{indent(body, "    ")}
}

func indent(s, pad string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
