// Package fragment is the small render tree returned by the detail presenter.
// A host walks it to draw the panel and to route key and mouse events to the
// bound handlers.
package fragment

import "strings"

// Tags used by the presenter.
const (
	Div      = "div"
	Span     = "span"
	UL       = "ul"
	LI       = "li"
	Button   = "button"
	Select   = "select"
	Mentions = "mentions"
	Avatar   = "avatar"
	Markdown = "markdown"
)

// Option is one entry of a select dropdown.
type Option struct {
	Value any
	Label string
}

// SelectProps configures a single-select dropdown.
type SelectProps struct {
	Name        string
	Placeholder string
	Disabled    bool
	Value       string // current label, "" when nothing is selected
	Options     []Option
	Clearable   bool
	// OnChange receives the chosen option value, or nil when cleared.
	OnChange func(value any)
}

// Suggestion is an entry offered by a mentions input.
type Suggestion struct {
	ID      string
	Display string
}

// MentionsProps configures a free-text input with "@mention" completion.
type MentionsProps struct {
	Value       string
	Placeholder string
	Suggestions []Suggestion
	OnChange    func(value string)
}

// AvatarProps selects between an identity avatar and a placeholder.
type AvatarProps struct {
	Email   string
	Size    int
	Variant string // placeholder variant when Email is empty
}

// Node is one element of a fragment tree.
type Node struct {
	Tag      string
	Key      string
	Class    string
	Text     string
	Children []*Node

	OnClick      func()
	OnMouseEnter func()
	OnMouseLeave func()

	Select   *SelectProps
	Mentions *MentionsProps
	Avatar   *AvatarProps
}

// El builds a node with children.
func El(tag, class string, children ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Children: children}
}

// Text builds a leaf node.
func Text(tag, class, text string) *Node {
	return &Node{Tag: tag, Class: class, Text: text}
}

// HasClass reports whether c is one of the node's classes.
func (n *Node) HasClass(c string) bool {
	if n == nil {
		return false
	}
	for _, f := range strings.Fields(n.Class) {
		if f == c {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Find returns every node in the tree carrying class c, in document order.
func Find(n *Node, c string) []*Node {
	var out []*Node
	Walk(n, func(x *Node) bool {
		if x.HasClass(c) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// TextContent concatenates the text of n and its descendants.
func TextContent(n *Node) string {
	var b strings.Builder
	Walk(n, func(x *Node) bool {
		b.WriteString(x.Text)
		return true
	})
	return b.String()
}
