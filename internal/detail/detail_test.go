package detail

import (
	"reflect"
	"testing"
	"time"

	"github.com/Makepad-fr/itemdetail/internal/fragment"
	"github.com/Makepad-fr/itemdetail/internal/model"
)

type update struct {
	product string
	item    int
	attrs   map[string]any
}

type recordingDispatcher struct {
	calls []update
}

func (d *recordingDispatcher) UpdateItem(productID string, itemID int, attrs map[string]any) {
	d.calls = append(d.calls, update{product: productID, item: itemID, attrs: attrs})
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPresenter() (*Presenter, *recordingDispatcher) {
	d := &recordingDispatcher{}
	p := New(d, StaticRouter{ID: "42"}, WithClock(func() time.Time { return testNow }))
	return p, d
}

func memberID(v int) *model.MemberID {
	id := model.MemberID(v)
	return &id
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	if got := ParseTags("a,b,c"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c]; got %q", got)
	}
	if got := ParseTags("a,,b"); !reflect.DeepEqual(got, []string{"a", "", "b"}) {
		t.Fatalf("expected empty element to be kept; got %q", got)
	}
	if got := ParseTags(" a, b"); !reflect.DeepEqual(got, []string{" a", " b"}) {
		t.Fatalf("expected whitespace to be kept; got %q", got)
	}
}

func TestBuildTags_Absent(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	if n := p.BuildTags(""); n != nil {
		t.Fatalf("expected no fragment for empty tags; got %+v", n)
	}
}

func TestBuildTags_Single(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	n := p.BuildTags("x")
	if n == nil || n.Tag != fragment.UL || !n.HasClass("tags__list") {
		t.Fatalf("expected a tags__list; got %+v", n)
	}
	if len(n.Children) != 2 {
		t.Fatalf("expected icon + 1 tag; got %d children", len(n.Children))
	}
	if n.Children[0].Key != "tag" || n.Children[1].Text != "x" {
		t.Fatalf("unexpected order: %+v", n.Children)
	}
	if seps := fragment.Find(n, "tag-sep"); len(seps) != 0 {
		t.Fatalf("expected no separators; got %d", len(seps))
	}
}

func TestBuildTags_Interleaves(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	n := p.BuildTags("x,y,z")
	if got := len(fragment.Find(n, "tag-sep")); got != 2 {
		t.Fatalf("expected 2 separators; got %d", got)
	}
	if got := len(fragment.Find(n, "tag")); got != 3 {
		t.Fatalf("expected 3 tags; got %d", got)
	}
	var order []string
	for _, c := range n.Children[1:] {
		order = append(order, c.Text)
	}
	if !reflect.DeepEqual(order, []string{"x", ",", "y", ",", "z"}) {
		t.Fatalf("unexpected order %q", order)
	}
	if n.Children[0].Key != "tag" {
		t.Fatalf("expected icon first; got %+v", n.Children[0])
	}
}

func TestHeaderAndCaret(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	h := p.Header("activity log")
	if got := fragment.TextContent(h); got != "Activity Log" {
		t.Fatalf("expected title-cased header; got %q", got)
	}
	if p.CaretDirection(true) != "down" || p.CaretDirection(false) != "right" {
		t.Fatalf("unexpected caret directions")
	}
}

func TestCreatedByTimestamp(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	got, ok := p.CreatedByTimestamp(testNow.Add(-3*time.Hour), &model.Person{FirstName: "Ada", LastName: "Lovelace"})
	if !ok || got != "Created by Ada Lovelace 3 hours ago" {
		t.Fatalf("unexpected attribution %q ok=%v", got, ok)
	}
	if _, ok := p.CreatedByTimestamp(testNow, nil); ok {
		t.Fatalf("expected no attribution without creator")
	}
}

func TestItemStatus(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	for in, want := range map[string]string{
		"in_progress": "Current",
		"in-progress": "Current",
		"completed":   "Complete",
		"backlog":     "Backlog",
	} {
		if got := p.ItemStatus(in); got != want {
			t.Fatalf("ItemStatus(%q): expected %q; got %q", in, want, got)
		}
	}
}

func TestEstimator_SelectsRawKey(t *testing.T) {
	t.Parallel()

	p, d := newTestPresenter()
	item := model.Item{Number: 7, Type: "story", Score: "M", Status: "backlog"}
	n := p.Estimator(item)

	if len(n.Children) != len(model.ScoreMap) {
		t.Fatalf("expected %d options; got %d", len(model.ScoreMap), len(n.Children))
	}
	selected := 0
	for i, opt := range n.Children {
		key := model.ScoreMap[i].Key
		if opt.HasClass("selected") != (key == item.Score) {
			t.Fatalf("option %s: selected=%v", key, opt.HasClass("selected"))
		}
		if opt.HasClass("selected") {
			selected++
		}
		btn := opt.Children[0]
		if btn.Text != key || !btn.HasClass("story") {
			t.Fatalf("unexpected button %+v", btn)
		}
	}
	if selected != 1 {
		t.Fatalf("expected exactly one selected option; got %d", selected)
	}

	n.Children[4].OnClick()
	want := update{product: "42", item: 7, attrs: map[string]any{"score": "XL"}}
	if len(d.calls) != 1 || !reflect.DeepEqual(d.calls[0], want) {
		t.Fatalf("expected %+v; got %+v", want, d.calls)
	}
}

func TestEstimator_NoScoreSelectsNothing(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	n := p.Estimator(model.Item{Number: 1, Type: "task"})
	if got := len(fragment.Find(n, "selected")); got != 0 {
		t.Fatalf("expected no selection; got %d", got)
	}
}

func TestStatusPicker_ComparesMappedValue(t *testing.T) {
	t.Parallel()

	p, d := newTestPresenter()
	var hovered []string
	var resets []int
	item := model.Item{Number: 9, Status: "in-progress"}
	n := p.StatusPicker(item,
		func(id int, status string) { hovered = append(hovered, status) },
		func(id int) { resets = append(resets, id) },
	)

	var labels []string
	for _, opt := range n.Children {
		labels = append(labels, opt.Children[0].Text)
		if !opt.Children[0].HasClass("status") {
			t.Fatalf("expected status button class; got %q", opt.Children[0].Class)
		}
	}
	if !reflect.DeepEqual(labels, []string{"S", "B", "C", "C", "A"}) {
		t.Fatalf("unexpected labels %q", labels)
	}

	sel := fragment.Find(n, "selected")
	if len(sel) != 1 || sel[0] != n.Children[2] {
		t.Fatalf("expected the current option to be selected; got %v", sel)
	}

	n.Children[1].OnMouseEnter()
	n.OnMouseLeave()
	if !reflect.DeepEqual(hovered, []string{"backlog"}) || !reflect.DeepEqual(resets, []int{9}) {
		t.Fatalf("unexpected hover calls %v %v", hovered, resets)
	}

	n.Children[3].OnClick()
	want := update{product: "42", item: 9, attrs: map[string]any{"status": "complete"}}
	if len(d.calls) != 1 || !reflect.DeepEqual(d.calls[0], want) {
		t.Fatalf("expected %+v; got %+v", want, d.calls)
	}
}

func TestStatusPicker_RawStatusKeyIsNotSelected(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	n := p.StatusPicker(model.Item{Number: 1, Status: "current"}, nil, nil)
	if got := len(fragment.Find(n, "selected")); got != 0 {
		t.Fatalf("expected picker keys not to match item status; got %d selected", got)
	}
	if n.OnMouseLeave != nil {
		t.Fatalf("expected no leave handler without reset func")
	}
}

func TestCanBeReassigned(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	for _, s := range []string{"someday", "backlog", "in-progress"} {
		if !p.CanBeReassigned(s) {
			t.Fatalf("expected %s to allow reassignment", s)
		}
	}
	for _, s := range []string{"done", "completed", "accepted", ""} {
		if p.CanBeReassigned(s) {
			t.Fatalf("expected %s to forbid reassignment", s)
		}
	}
}

func TestCurrentAssignee(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	members := []model.Member{{Value: 1, Label: "Ada"}, {Value: 2, Label: "Grace"}}
	if got, ok := p.CurrentAssignee(members, memberID(2)); !ok || got != "Grace" {
		t.Fatalf("expected Grace; got %q ok=%v", got, ok)
	}
	if _, ok := p.CurrentAssignee(members, memberID(3)); ok {
		t.Fatalf("expected no match for unknown id")
	}
	if _, ok := p.CurrentAssignee(members, nil); ok {
		t.Fatalf("expected no match for nil id")
	}
}

func TestAssigneeSelector(t *testing.T) {
	t.Parallel()

	p, d := newTestPresenter()
	members := []model.Member{{Value: 1, Label: "Ada"}, {Value: 2, Label: "Grace"}}
	item := model.Item{Number: 3, Status: "backlog", AssignedTo: memberID(1)}

	n := p.AssigneeSelector(item, members)
	if n.Tag != fragment.Select || n.Select == nil {
		t.Fatalf("expected a select; got %+v", n)
	}
	sp := n.Select
	if sp.Value != "Ada" || sp.Placeholder != "Choose assignee" || !sp.Clearable || sp.Disabled {
		t.Fatalf("unexpected select props %+v", sp)
	}
	if len(sp.Options) != 2 || sp.Options[1].Value != model.MemberID(2) {
		t.Fatalf("unexpected options %+v", sp.Options)
	}

	sp.OnChange(model.MemberID(2))
	sp.OnChange(nil)
	if len(d.calls) != 2 {
		t.Fatalf("expected two dispatches; got %d", len(d.calls))
	}
	if d.calls[0].attrs["assigned_to"] != model.MemberID(2) {
		t.Fatalf("unexpected first dispatch %+v", d.calls[0])
	}
	if v, ok := d.calls[1].attrs["assigned_to"]; !ok || v != nil {
		t.Fatalf("expected clear to dispatch nil; got %+v", d.calls[1])
	}

	unassigned := p.AssigneeSelector(model.Item{Number: 3, Status: "someday"}, members)
	if unassigned.Select.Value != "" {
		t.Fatalf("expected empty selection; got %q", unassigned.Select.Value)
	}
}

func TestAssigneeSelector_Restricted(t *testing.T) {
	t.Parallel()

	p, d := newTestPresenter()
	n := p.AssigneeSelector(model.Item{Number: 3, Status: "accepted"}, nil)
	if !n.HasClass("action__restricted") {
		t.Fatalf("expected restricted notice; got %+v", n)
	}
	if got := fragment.TextContent(n); got != "Cannot reassign tickets which are Accepted" {
		t.Fatalf("unexpected notice %q", got)
	}
	if len(d.calls) != 0 {
		t.Fatalf("expected no dispatch")
	}
}

func TestSelector_PlaceholderOnlyForAssignee(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	n := p.Selector(model.Item{Number: 1}, "", nil, AttrScore)
	if n.Select.Placeholder != "" {
		t.Fatalf("expected no placeholder for score; got %q", n.Select.Placeholder)
	}
	if _, ok := Attribute("unknown").Placeholder(); ok {
		t.Fatalf("expected unknown attribute to have no placeholder")
	}
}

func TestAssigneeGravatar(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	if n := p.AssigneeGravatar(""); n.Avatar.Variant != "placeholder-dark" || n.Avatar.Email != "" {
		t.Fatalf("expected placeholder avatar; got %+v", n.Avatar)
	}
	if n := p.AssigneeGravatar("ada@example.com"); n.Avatar.Email != "ada@example.com" || n.Avatar.Size != 36 {
		t.Fatalf("expected gravatar; got %+v", n.Avatar)
	}
}

func TestMentionsComponent(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	var got string
	n := p.MentionsComponent("hi", "Add a note", []model.Member{{Value: 5, Label: "Ada"}}, func(v string) { got = v })
	mp := n.Mentions
	if mp.Value != "hi" || mp.Placeholder != "Add a note" || len(mp.Suggestions) != 1 || mp.Suggestions[0].ID != "5" {
		t.Fatalf("unexpected mention props %+v", mp)
	}
	mp.OnChange("hi @Ada")
	if got != "hi @Ada" {
		t.Fatalf("expected change handler to run; got %q", got)
	}
}

func TestUpdateAttribute(t *testing.T) {
	t.Parallel()

	p, d := newTestPresenter()
	p.UpdateAttribute(12, AttrTags, "ui,bug")
	want := update{product: "42", item: 12, attrs: map[string]any{"tags": "ui,bug"}}
	if len(d.calls) != 1 || !reflect.DeepEqual(d.calls[0], want) {
		t.Fatalf("expected %+v; got %+v", want, d.calls)
	}
}

func TestDescription(t *testing.T) {
	t.Parallel()

	p, _ := newTestPresenter()
	if p.Description("  ") != nil {
		t.Fatalf("expected nil for blank description")
	}
	if n := p.Description("# Hi"); n.Tag != fragment.Markdown || n.Text != "# Hi" {
		t.Fatalf("unexpected description node %+v", n)
	}
}
