package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/itemdetail/internal/detail"
	"github.com/Makepad-fr/itemdetail/internal/model"
	"github.com/Makepad-fr/itemdetail/internal/store/jsonstore"
	"github.com/Makepad-fr/itemdetail/internal/tui"
	"github.com/Makepad-fr/itemdetail/internal/ui"
)

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, usagef("not an item number: %s", s)
	}
	return n, nil
}

func newListCmd(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List items in the workspace",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opt, false)
			if err != nil {
				return err
			}
			ws, err := jsonstore.Load(e.path)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			ui.Panel(listLines(e, ws))
			return nil
		},
	}
}

func newShowCmd(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Open the interactive detail panel for an item",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			e, err := setup(opt, true)
			if err != nil {
				return err
			}
			load := func() (*jsonstore.Workspace, error) { return jsonstore.Load(e.path) }
			if err := tui.Run(e.presenter, load, n); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

func newPrintCmd(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "print <number>",
		Short: "Print an item's detail panel",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			e, err := setup(opt, false)
			if err != nil {
				return err
			}
			ws, err := jsonstore.Load(e.path)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			it, ok := ws.Find(n)
			if !ok {
				return fmt.Errorf("item %d not found", n)
			}
			ui.Panel(detailLines(e, ws, *it, 72))
			return nil
		},
	}
}

func newSetCmd(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <number> <attribute> [value]",
		Short: "Update one attribute (score, status, assigned_to, description, tags, title)",
		Long: `Update one attribute of an item.

Omitting the value clears the attribute. Status accepts the item's status
(backlog, in-progress, ...) or a picker key (current, complete, ...).`,
		Args: usageArgs(cobra.RangeArgs(2, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			attr, ok := detail.ParseAttribute(args[1])
			if !ok {
				return usagef("unknown attribute: %s", args[1])
			}
			var value any
			if len(args) == 3 {
				value = args[2]
			}

			e, err := setup(opt, false)
			if err != nil {
				return err
			}
			var result error
			e.dispatcher.OnUpdate = func(_ int, err error) { result = err }
			e.presenter.UpdateAttribute(n, attr, value)
			if result != nil {
				return fmt.Errorf("set %s: %w", attr, result)
			}
			ui.OK(fmt.Sprintf("#%d %s updated", n, attr))
			return nil
		},
	}
}

// -------------- rendering helpers --------------

func listLines(e *env, ws *jsonstore.Workspace) []string {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d", t.Title.Render("Items"), t.Accent.Render("Total"), len(ws.Items))
	if ws.Product != "" {
		header += "  " + t.Muted.Render("product "+ws.Product)
	}
	lines := []string{header, ""}
	if len(ws.Items) == 0 {
		return append(lines, t.Muted.Render("no items"))
	}
	for _, it := range ws.Items {
		score := it.Score
		if score == "" {
			score = "-"
		}
		title := it.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s %s %-12s %s",
			t.Muted.Render(fmt.Sprintf("#%-4d", it.Number)),
			t.Accent.Render(fmt.Sprintf("%-2s", score)),
			e.presenter.ItemStatus(it.Status),
			title,
		))
	}
	return lines
}

func detailLines(e *env, ws *jsonstore.Workspace, it model.Item, width int) []string {
	p := e.presenter
	t := ui.Current()
	r := ui.Renderer{Width: width}

	lines := []string{r.Render(p.Header(fmt.Sprintf("#%d %s", it.Number, it.Title)))}
	if by, ok := p.CreatedByTimestamp(it.CreatedAt, it.CreatedBy); ok {
		lines = append(lines, t.Muted.Render(by))
	}
	lines = append(lines, "")
	lines = append(lines, ui.Row("Status", r.Render(p.StatusPicker(it, nil, nil))+"  "+p.ItemStatus(it.Status)))
	lines = append(lines, ui.Row("Estimate", r.Render(p.Estimator(it))))
	if pts, ok := e.cfg.ScoreTable().Get(it.Score); ok {
		lines = append(lines, ui.Row("", ui.ScoreBar(pts, maxPoints(e.cfg.ScoreTable()), 16)))
	}

	var email string
	if it.AssignedTo != nil {
		if m, ok := ws.Member(*it.AssignedTo); ok {
			email = m.Email
		}
	}
	lines = append(lines, ui.Row("Assignee", r.Render(p.AssigneeGravatar(email))+" "+r.Render(p.AssigneeSelector(it, ws.Members))))
	if tags := p.BuildTags(it.Tags); tags != nil {
		lines = append(lines, ui.Row("Tags", r.Render(tags)))
	}
	if d := r.Render(p.Description(it.Description)); d != "" {
		lines = append(lines, "", r.Render(p.Header("description")), d)
	}
	return lines
}

func maxPoints(t model.Table[int]) int {
	best := 0
	for _, e := range t {
		best = max(best, e.Value)
	}
	return best
}
