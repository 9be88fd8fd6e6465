package detail

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/Makepad-fr/itemdetail/internal/model"
)

func TestControlToggle(t *testing.T) {
	t.Parallel()

	in := model.ToggleState{"a": true, "b": false}
	got := ControlToggle(in, "b")
	if !reflect.DeepEqual(got, model.ToggleState{"a": false, "b": true}) {
		t.Fatalf("unexpected state %v", got)
	}
	if !in["a"] || in["b"] {
		t.Fatalf("expected input state to be left alone; got %v", in)
	}
	if again := ControlToggle(got, "b"); !reflect.DeepEqual(again, got) {
		t.Fatalf("expected idempotence; got %v", again)
	}
	unknown := ControlToggle(in, "c")
	if !reflect.DeepEqual(unknown, model.ToggleState{"a": false, "b": false}) {
		t.Fatalf("expected unknown name to close everything; got %v", unknown)
	}
}

func TestComponentVisible(t *testing.T) {
	t.Parallel()

	if got := ComponentVisible(nil, "a"); got != "hidden" {
		t.Fatalf("expected hidden for nil state; got %s", got)
	}
	if got := ComponentVisible(model.ToggleState{"a": true}, "a"); got != "visible" {
		t.Fatalf("expected visible; got %s", got)
	}
	if got := ComponentVisible(model.ToggleState{"a": true}, "b"); got != "hidden" {
		t.Fatalf("expected hidden for missing entry; got %s", got)
	}
}

func TestControlToggle_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfDistinct(rapid.StringMatching(`[a-z]{1,6}`), rapid.ID[string]).Draw(t, "names")
		state := make(model.ToggleState, len(names))
		for _, n := range names {
			state[n] = rapid.Bool().Draw(t, "open")
		}
		target := rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "target")

		next := ControlToggle(state, target)
		if len(next) != len(state) {
			t.Fatalf("expected %d keys; got %d", len(state), len(next))
		}
		open := 0
		for k, v := range next {
			if v {
				open++
				if k != target {
					t.Fatalf("unexpected open entry %q", k)
				}
			}
		}
		_, known := state[target]
		if known && open != 1 {
			t.Fatalf("expected exactly one open entry; got %d", open)
		}
		if !known && open != 0 {
			t.Fatalf("expected nothing open for unknown target; got %d", open)
		}
		if !reflect.DeepEqual(ControlToggle(next, target), next) {
			t.Fatalf("expected reducer to be idempotent")
		}
	})
}

func TestParseTags_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tags := rapid.SliceOf(rapid.StringMatching(`[a-z ]{0,5}`)).Draw(t, "tags")
		if len(tags) == 0 {
			return
		}
		joined := strings.Join(tags, ",")
		if got := ParseTags(joined); !reflect.DeepEqual(got, tags) {
			t.Fatalf("expected %q; got %q", tags, got)
		}
	})
}
