package detail

import (
	"strconv"

	"github.com/Makepad-fr/itemdetail/internal/fragment"
	"github.com/Makepad-fr/itemdetail/internal/helpers"
	"github.com/Makepad-fr/itemdetail/internal/model"
)

// Attribute names an item field that can be updated from the panel.
type Attribute string

const (
	AttrScore       Attribute = "score"
	AttrStatus      Attribute = "status"
	AttrAssignedTo  Attribute = "assigned_to"
	AttrDescription Attribute = "description"
	AttrTags        Attribute = "tags"
	AttrTitle       Attribute = "title"
)

// Placeholder is the prompt a selector shows for the attribute while empty.
func (a Attribute) Placeholder() (string, bool) {
	switch a {
	case AttrAssignedTo:
		return "Choose assignee", true
	}
	return "", false
}

// reassignable lists the statuses in which the assignee may change.
var reassignable = map[string]bool{
	"someday":     true,
	"backlog":     true,
	"in-progress": true,
}

// CanBeReassigned reports whether an item in status may change assignee.
func (p *Presenter) CanBeReassigned(status string) bool {
	return reassignable[status]
}

// CurrentAssignee returns the label of the member with id, if any.
func (p *Presenter) CurrentAssignee(members []model.Member, id *model.MemberID) (string, bool) {
	if id == nil {
		return "", false
	}
	for _, m := range members {
		if m.Value == *id {
			return m.Label, true
		}
	}
	return "", false
}

// ActionRestricted explains why the assignee cannot be changed.
func (p *Presenter) ActionRestricted(status string) *fragment.Node {
	return fragment.El(fragment.Div, "action__restricted",
		fragment.Text(fragment.Span, "", "Cannot reassign tickets which are "),
		fragment.Text(fragment.Span, "status", helpers.ToTitleCase(status)),
	)
}

// AssigneeSelector renders the assignee dropdown, or a notice when the
// item's status does not allow reassignment.
func (p *Presenter) AssigneeSelector(item model.Item, members []model.Member) *fragment.Node {
	if !p.CanBeReassigned(item.Status) {
		return p.ActionRestricted(item.Status)
	}
	current, _ := p.CurrentAssignee(members, item.AssignedTo)
	options := make([]fragment.Option, 0, len(members))
	for _, m := range members {
		options = append(options, fragment.Option{Value: m.Value, Label: m.Label})
	}
	return p.Selector(item, current, options, AttrAssignedTo)
}

// Selector is a clearable single-select bound to attr. Choosing an option
// dispatches its value; clearing dispatches nil.
func (p *Presenter) Selector(item model.Item, current string, options []fragment.Option, attr Attribute) *fragment.Node {
	placeholder, _ := attr.Placeholder()
	n := &fragment.Node{
		Tag:   fragment.Select,
		Class: "assign-dropdown",
		Select: &fragment.SelectProps{
			Name:        "form-field-name",
			Placeholder: placeholder,
			Disabled:    false,
			Value:       current,
			Options:     options,
			Clearable:   true,
		},
	}
	n.Select.OnChange = func(value any) {
		p.UpdateAttribute(item.Number, attr, value)
	}
	return n
}

// AssigneeGravatar renders the assignee's avatar, or a placeholder without email.
func (p *Presenter) AssigneeGravatar(email string) *fragment.Node {
	if email == "" {
		return &fragment.Node{Tag: fragment.Avatar, Class: "owner", Avatar: &fragment.AvatarProps{Variant: "placeholder-dark"}}
	}
	return &fragment.Node{Tag: fragment.Avatar, Class: "gravatar", Avatar: &fragment.AvatarProps{Email: email, Size: 36}}
}

// MentionsComponent is a free-text input that completes "@" mentions from members.
func (p *Presenter) MentionsComponent(value, placeholder string, members []model.Member, onChange func(string)) *fragment.Node {
	mentions := helpers.FormatMentionMembers(members)
	suggestions := make([]fragment.Suggestion, 0, len(mentions))
	for _, m := range mentions {
		suggestions = append(suggestions, fragment.Suggestion{ID: strconv.Itoa(int(m.ID)), Display: m.Display})
	}
	return &fragment.Node{
		Tag:   fragment.Mentions,
		Key:   "mentions",
		Class: "mentions",
		Mentions: &fragment.MentionsProps{
			Value:       value,
			Placeholder: placeholder,
			Suggestions: suggestions,
			OnChange:    onChange,
		},
	}
}

// ParseAttribute resolves an attribute name typed by a user.
func ParseAttribute(s string) (Attribute, bool) {
	switch a := Attribute(s); a {
	case AttrScore, AttrStatus, AttrAssignedTo, AttrDescription, AttrTags, AttrTitle:
		return a, true
	}
	return "", false
}
