package detail

import (
	"fmt"

	"github.com/Makepad-fr/itemdetail/internal/fragment"
	"github.com/Makepad-fr/itemdetail/internal/helpers"
	"github.com/Makepad-fr/itemdetail/internal/model"
)

// HoverFunc is called when the pointer enters a status option.
type HoverFunc func(itemID int, status string)

// HoverResetFunc is called when the pointer leaves the status picker.
type HoverResetFunc func(itemID int)

// ItemScoreButton is the button shared by the estimator and the status picker.
// kind is the item type for scores and "status" for statuses.
func (p *Presenter) ItemScoreButton(kind, label string) *fragment.Node {
	return fragment.Text(fragment.Button, "estimator__button "+kind, label)
}

// Estimator renders one option per score key. The option whose key equals
// item.Score is selected.
func (p *Presenter) Estimator(item model.Item) *fragment.Node {
	keys := p.scores.Keys()
	options := make([]*fragment.Node, 0, len(keys))
	for i, key := range keys {
		opt := fragment.El(fragment.LI, fragment.ClassNames(
			fragment.Cls{Name: "estimator-option", On: true},
			fragment.Cls{Name: "selected", On: key == item.Score},
		), p.ItemScoreButton(item.Type, key))
		opt.Key = fmt.Sprintf("%d-%s", i, key)
		opt.OnClick = p.bindUpdate(item.Number, AttrScore, key)
		options = append(options, opt)
	}
	return fragment.El(fragment.UL, "estimator", options...)
}

// StatusPicker renders one option per status key, labelled with the key's
// upper-cased initial. Selection compares the mapped status, not the key.
func (p *Presenter) StatusPicker(item model.Item, hover HoverFunc, reset HoverResetFunc) *fragment.Node {
	options := make([]*fragment.Node, 0, len(p.statuses))
	for i, e := range p.statuses {
		key := e.Key
		opt := fragment.El(fragment.LI, fragment.ClassNames(
			fragment.Cls{Name: "estimator-option", On: true},
			fragment.Cls{Name: "selected", On: e.Value == item.Status},
		), p.ItemScoreButton(string(AttrStatus), helpers.ToTitleCase(initial(key))))
		opt.Key = fmt.Sprintf("%d-%s", i, key)
		if hover != nil {
			opt.OnMouseEnter = func() { hover(item.Number, key) }
		}
		opt.OnClick = p.bindUpdate(item.Number, AttrStatus, key)
		options = append(options, opt)
	}

	list := fragment.El(fragment.UL, "estimator", options...)
	if reset != nil {
		list.OnMouseLeave = func() { reset(item.Number) }
	}
	return list
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
