package jsonstore

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/Makepad-fr/itemdetail/internal/model"
)

// Dispatcher applies item updates to a workspace file. It satisfies
// detail.Dispatcher; failures are logged, never returned.
type Dispatcher struct {
	mu       sync.Mutex
	path     string
	statuses model.Table[string]
	log      *slog.Logger

	// OnUpdate, when set, runs after every update attempt with its outcome.
	OnUpdate func(itemID int, err error)
}

// NewDispatcher returns a dispatcher writing to the workspace at path.
func NewDispatcher(path string, statuses model.Table[string], log *slog.Logger) *Dispatcher {
	if len(statuses) == 0 {
		statuses = model.StatusMap
	}
	return &Dispatcher{path: path, statuses: statuses, log: log}
}

// UpdateItem applies attrs to item itemID of productID.
func (d *Dispatcher) UpdateItem(productID string, itemID int, attrs map[string]any) {
	err := d.apply(productID, itemID, attrs)
	if err != nil {
		d.log.Error("update item failed", "product", productID, "item", itemID, "error", err)
	} else {
		d.log.Debug("item updated", "product", productID, "item", itemID)
	}
	if d.OnUpdate != nil {
		d.OnUpdate(itemID, err)
	}
}

func (d *Dispatcher) apply(productID string, itemID int, attrs map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ws, err := Load(d.path)
	if err != nil {
		return err
	}
	if ws.Product != "" && productID != ws.Product {
		return fmt.Errorf("unknown product %q", productID)
	}
	it, ok := ws.Find(itemID)
	if !ok {
		return fmt.Errorf("unknown item %d", itemID)
	}
	for attr, v := range attrs {
		if err := d.set(it, attr, v); err != nil {
			return err
		}
	}
	return Save(d.path, ws)
}

func (d *Dispatcher) set(it *model.Item, attr string, v any) error {
	switch attr {
	case "score":
		s, err := asString(v)
		if err != nil {
			return fmt.Errorf("score: %w", err)
		}
		it.Score = s
	case "status":
		s, err := asString(v)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		// Picker keys stand for canonical statuses.
		if canon, ok := d.statuses.Get(s); ok {
			s = canon
		}
		it.Status = s
	case "assigned_to":
		id, err := asMemberID(v)
		if err != nil {
			return fmt.Errorf("assigned_to: %w", err)
		}
		it.AssignedTo = id
	case "description":
		s, err := asString(v)
		if err != nil {
			return fmt.Errorf("description: %w", err)
		}
		it.Description = s
	case "tags":
		s, err := asString(v)
		if err != nil {
			return fmt.Errorf("tags: %w", err)
		}
		it.Tags = s
	case "title":
		s, err := asString(v)
		if err != nil {
			return fmt.Errorf("title: %w", err)
		}
		it.Title = s
	default:
		return fmt.Errorf("unsupported attribute %q", attr)
	}
	return nil
}

func asString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", fmt.Errorf("unexpected value %v (%T)", v, v)
}

func asMemberID(v any) (*model.MemberID, error) {
	var id model.MemberID
	switch x := v.(type) {
	case nil:
		return nil, nil
	case model.MemberID:
		id = x
	case int:
		id = model.MemberID(x)
	case float64:
		id = model.MemberID(x)
	case string:
		x = strings.TrimSpace(x)
		if x == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(x)
		if err != nil {
			return nil, fmt.Errorf("not a member id: %q", x)
		}
		id = model.MemberID(n)
	default:
		return nil, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
	return &id, nil
}
