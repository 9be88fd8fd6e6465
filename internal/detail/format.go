package detail

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Makepad-fr/itemdetail/internal/fragment"
	"github.com/Makepad-fr/itemdetail/internal/helpers"
	"github.com/Makepad-fr/itemdetail/internal/model"
)

const tagSeparator = ","

// Header renders a section title.
func (p *Presenter) Header(title string) *fragment.Node {
	return fragment.El(fragment.Div, "header",
		fragment.Text(fragment.Div, "title", helpers.ToTitleCase(title)),
		fragment.El(fragment.Div, "sep"),
	)
}

// CaretDirection is the caret shown next to a collapsible section.
func (p *Presenter) CaretDirection(open bool) string {
	if open {
		return "down"
	}
	return "right"
}

// ParseTags splits a comma separated tag string. Only elements equal to the
// separator itself are dropped; empty elements are kept.
func ParseTags(tags string) []string {
	parts := strings.Split(tags, tagSeparator)
	out := parts[:0]
	for _, t := range parts {
		if t == tagSeparator {
			continue
		}
		out = append(out, t)
	}
	return out
}

// BuildTags renders the tag list: an icon followed by the tags with a
// separator between each pair. Returns nil when there are no tags.
func (p *Presenter) BuildTags(tags string) *fragment.Node {
	if tags == "" {
		return nil
	}
	parsed := ParseTags(tags)

	tagEls := make([]*fragment.Node, 0, len(parsed))
	for i, t := range parsed {
		n := fragment.Text(fragment.LI, "tag", t)
		n.Key = strconv.Itoa(i)
		tagEls = append(tagEls, n)
	}
	commas := make([]*fragment.Node, 0, len(parsed))
	for i := 0; i < len(parsed)-1; i++ {
		commas = append(commas, fragment.Text(fragment.LI, "tag-sep", tagSeparator))
	}

	icon := fragment.El(fragment.LI, "", fragment.Text(fragment.Span, "glyphicon glyphicon-tag", ""))
	icon.Key = "tag"

	list := fragment.El(fragment.UL, "tags__list", icon)
	list.Children = append(list.Children, interleave(tagEls, commas)...)
	return list
}

// interleave zips a and b and drops the padding left by the shorter side.
func interleave(a, b []*fragment.Node) []*fragment.Node {
	n := max(len(a), len(b))
	out := make([]*fragment.Node, 0, len(a)+len(b))
	for i := 0; i < n; i++ {
		if i < len(a) && a[i] != nil {
			out = append(out, a[i])
		}
		if i < len(b) && b[i] != nil {
			out = append(out, b[i])
		}
	}
	return out
}

// TimeSinceNow renders t relative to the presenter's clock ("3 hours ago").
func (p *Presenter) TimeSinceNow(t time.Time) string {
	return humanize.RelTime(t, p.now(), "ago", "from now")
}

// CreatedByTimestamp attributes the item to its creator. The second result is
// false when the creator is unknown.
func (p *Presenter) CreatedByTimestamp(createdAt time.Time, createdBy *model.Person) (string, bool) {
	if createdBy == nil {
		return "", false
	}
	creator := fmt.Sprintf("%s %s", createdBy.FirstName, createdBy.LastName)
	return fmt.Sprintf("Created by %s %s", creator, p.TimeSinceNow(createdAt)), true
}

// ItemStatus is the title-cased display form of a canonical status.
func (p *Presenter) ItemStatus(status string) string {
	return helpers.ToTitleCase(helpers.ItemStatusMapIn(p.statuses, status))
}

// Description renders the item's markdown body, or nil when empty.
func (p *Presenter) Description(text string) *fragment.Node {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return fragment.Text(fragment.Markdown, "description", text)
}
