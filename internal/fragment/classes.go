package fragment

import "strings"

// Cls pairs a class name with the condition enabling it.
type Cls struct {
	Name string
	On   bool
}

// ClassNames joins the enabled class names, keeping argument order.
func ClassNames(cs ...Cls) string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		if c.On && c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, " ")
}
