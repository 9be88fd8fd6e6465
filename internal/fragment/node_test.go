package fragment

import "testing"

func TestClassNames(t *testing.T) {
	t.Parallel()

	got := ClassNames(Cls{"estimator-option", true}, Cls{"selected", false}, Cls{"story", true})
	if got != "estimator-option story" {
		t.Fatalf("unexpected classes %q", got)
	}
	if got := ClassNames(); got != "" {
		t.Fatalf("expected empty class list; got %q", got)
	}
}

func TestFindAndTextContent(t *testing.T) {
	t.Parallel()

	tree := El(UL, "tags__list",
		Text(LI, "tag", "a"),
		Text(LI, "sep", ","),
		Text(LI, "tag", "b"),
	)
	tags := Find(tree, "tag")
	if len(tags) != 2 || tags[0].Text != "a" || tags[1].Text != "b" {
		t.Fatalf("expected two tag nodes in order; got %v", tags)
	}
	if got := TextContent(tree); got != "a,b" {
		t.Fatalf("unexpected text content %q", got)
	}
	var nilNode *Node
	if nilNode.HasClass("x") {
		t.Fatalf("nil node must not report classes")
	}
}
