package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/itemdetail/internal/detail"
	"github.com/Makepad-fr/itemdetail/internal/fragment"
	"github.com/Makepad-fr/itemdetail/internal/helpers"
	"github.com/Makepad-fr/itemdetail/internal/model"
	"github.com/Makepad-fr/itemdetail/internal/store/jsonstore"
)

// Controls of the panel, in tab order. At most one is open at a time.
const (
	ctrlStatus      = "status"
	ctrlEstimate    = "estimate"
	ctrlAssignee    = "assignee"
	ctrlDescription = "description"
)

var controls = []string{ctrlStatus, ctrlEstimate, ctrlAssignee, ctrlDescription}

// Loader fetches the current workspace.
type Loader func() (*jsonstore.Workspace, error)

type reloadedMsg struct {
	ws  *jsonstore.Workspace
	err error
}

// hover is shared with the status picker's handlers, which outlive the
// model value they were bound from.
type hover struct {
	status string
}

// Model is the bubbletea model hosting one item's detail panel.
type Model struct {
	p      *detail.Presenter
	load   Loader
	number int

	ws      *jsonstore.Workspace
	item    model.Item
	toggles model.ToggleState
	cursor  int
	hover   *hover

	assignee    list.Model
	editor      textinput.Model
	suggestions []helpers.Mention

	keys   keyMap
	help   help.Model
	width  int
	height int
	err    string
}

// assigneeOption adapts a select option to bubbles/list.
type assigneeOption struct {
	label string
	value any
}

func (o assigneeOption) Title() string       { return o.label }
func (o assigneeOption) Description() string { return "" }
func (o assigneeOption) FilterValue() string { return o.label }

// New loads the workspace and returns a model showing item number.
func New(p *detail.Presenter, load Loader, number int) (Model, error) {
	ws, err := load()
	if err != nil {
		return Model{}, err
	}
	it, ok := ws.Find(number)
	if !ok {
		return Model{}, fmt.Errorf("item %d not found", number)
	}

	m := Model{
		p:       p,
		load:    load,
		number:  number,
		ws:      ws,
		item:    *it,
		toggles: model.NewToggleState(controls...),
		hover:   &hover{},
		keys:    newKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	m.assignee = list.New(nil, delegate, m.width-4, 8)
	m.assignee.SetShowHelp(false)
	m.assignee.SetShowStatusBar(false)
	m.assignee.SetShowPagination(false)
	m.assignee.SetFilteringEnabled(false)
	m.assignee.SetShowTitle(false)

	m.editor = textinput.New()
	m.editor.Prompt = "> "
	m.editor.CharLimit = 2000
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Toggles exposes the control state, mostly for tests.
func (m Model) Toggles() model.ToggleState { return m.toggles }

func (m Model) open() string {
	for _, c := range controls {
		if m.toggles[c] {
			return c
		}
	}
	return ""
}

func (m Model) reload() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		ws, err := load()
		return reloadedMsg{ws: ws, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.assignee.SetSize(msg.Width-4, 8)
		m.editor.Width = msg.Width - 8
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.ws = msg.ws
		if it, ok := msg.ws.Find(m.number); ok {
			m.item = *it
			m.err = ""
		} else {
			m.err = fmt.Sprintf("item %d no longer exists", m.number)
		}
		return m, nil

	case tea.KeyMsg:
		if m.open() == ctrlDescription {
			return m.updateEditor(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.switchTo(m.step(1)), nil
		case key.Matches(msg, m.keys.Prev):
			return m.switchTo(m.step(-1)), nil
		case key.Matches(msg, m.keys.Close):
			return m.switchTo(""), nil
		}
		switch m.open() {
		case ctrlStatus, ctrlEstimate:
			return m.updatePicker(msg)
		case ctrlAssignee:
			return m.updateAssignee(msg)
		}
	}
	return m, nil
}

// step returns the control d positions away from the open one.
func (m Model) step(d int) string {
	cur := -1
	for i, c := range controls {
		if c == m.open() {
			cur = i
		}
	}
	if cur < 0 {
		if d > 0 {
			return controls[0]
		}
		return controls[len(controls)-1]
	}
	n := len(controls)
	return controls[((cur+d)%n+n)%n]
}

// switchTo opens name (closing everything for ""), leaving the status
// picker first when it was open.
func (m Model) switchTo(name string) Model {
	if m.open() == ctrlStatus {
		if n := m.picker(); n.OnMouseLeave != nil {
			n.OnMouseLeave()
		}
	}
	m.toggles = detail.ControlToggle(m.toggles, name)
	m.cursor = m.selectedIndex()
	m.suggestions = nil

	switch name {
	case ctrlStatus:
		m.hoverCursor()
	case ctrlAssignee:
		m.fillAssignee()
	case ctrlDescription:
		m.editor.SetValue(m.item.Description)
		m.editor.CursorEnd()
		m.editor.Placeholder = "Describe the item, @ to mention"
		m.editor.Focus()
	}
	if name != ctrlDescription {
		m.editor.Blur()
	}
	return m
}

// picker is the fragment of the open picker control.
func (m Model) picker() *fragment.Node {
	switch m.open() {
	case ctrlStatus:
		return m.p.StatusPicker(m.item, m.onHover, m.onHoverReset)
	case ctrlEstimate:
		return m.p.Estimator(m.item)
	}
	return nil
}

func (m Model) onHover(_ int, status string) { m.hover.status = status }
func (m Model) onHoverReset(_ int)           { m.hover.status = "" }

func (m Model) selectedIndex() int {
	n := m.picker()
	if n == nil {
		return 0
	}
	for i, c := range n.Children {
		if c.HasClass("selected") {
			return i
		}
	}
	return 0
}

func (m Model) hoverCursor() {
	n := m.picker()
	if n == nil || m.cursor >= len(n.Children) {
		return
	}
	if h := n.Children[m.cursor].OnMouseEnter; h != nil {
		h()
	}
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.picker()
	if n == nil || len(n.Children) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Left, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.hoverCursor()
	case key.Matches(msg, m.keys.Right, m.keys.Down):
		if m.cursor < len(n.Children)-1 {
			m.cursor++
		}
		m.hoverCursor()
	case key.Matches(msg, m.keys.Select):
		if click := n.Children[m.cursor].OnClick; click != nil {
			click()
			return m, m.reload()
		}
	}
	return m, nil
}

func (m *Model) fillAssignee() {
	n := m.p.AssigneeSelector(m.item, m.ws.Members)
	if n.Select == nil {
		m.assignee.SetItems(nil)
		return
	}
	items := []list.Item{assigneeOption{label: "(unassigned)"}}
	selected := 0
	for i, o := range n.Select.Options {
		items = append(items, assigneeOption{label: o.Label, value: o.Value})
		if o.Label == n.Select.Value {
			selected = i + 1
		}
	}
	m.assignee.SetItems(items)
	m.assignee.Select(selected)
}

func (m Model) updateAssignee(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.p.AssigneeSelector(m.item, m.ws.Members)
	if n.Select == nil {
		return m, nil
	}
	if key.Matches(msg, m.keys.Select) {
		opt, ok := m.assignee.SelectedItem().(assigneeOption)
		if !ok {
			return m, nil
		}
		n.Select.OnChange(opt.value)
		m = m.switchTo("")
		return m, m.reload()
	}
	var cmd tea.Cmd
	m.assignee, cmd = m.assignee.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.switchTo(""), nil
	case "tab":
		if len(m.suggestions) > 0 {
			m.editor.SetValue(helpers.CompleteMention(m.editor.Value(), m.suggestions[0]))
			m.editor.CursorEnd()
			m.suggestions = nil
			return m, nil
		}
		return m.switchTo(m.step(1)), nil
	case "enter":
		value := strings.TrimSpace(m.editor.Value())
		mentions := m.p.MentionsComponent(value, m.editor.Placeholder, m.ws.Members, func(v string) {
			m.p.UpdateAttribute(m.item.Number, detail.AttrDescription, v)
		})
		mentions.Mentions.OnChange(value)
		m = m.switchTo("")
		return m, m.reload()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.suggestions = nil
	if q, ok := helpers.PendingMention(m.editor.Value()); ok {
		m.suggestions = helpers.SuggestMentions(q, helpers.FormatMentionMembers(m.ws.Members))
	}
	return m, cmd
}
