package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/itemdetail/internal/model"
)

// JSON-backed workspace. Single file, human-readable, portable.
// No locking; fine for a local single-user tool.

const DefaultFileName = "items.json"

// Workspace is everything the detail panel needs about one product.
type Workspace struct {
	Product string         `json:"product"`
	Members []model.Member `json:"members"`
	Items   []model.Item   `json:"items"`
}

// Find returns the item with the given number.
func (w *Workspace) Find(number int) (*model.Item, bool) {
	for i := range w.Items {
		if w.Items[i].Number == number {
			return &w.Items[i], true
		}
	}
	return nil, false
}

// Member returns the member with the given id.
func (w *Workspace) Member(id model.MemberID) (model.Member, bool) {
	for _, m := range w.Members {
		if m.Value == id {
			return m, true
		}
	}
	return model.Member{}, false
}

// DefaultPath is the workspace file in the current directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Load reads the workspace at path. A missing file is an empty workspace.
func Load(path string) (*Workspace, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Workspace{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var ws Workspace
	if err := json.Unmarshal(b, &ws); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return &ws, nil
}

// Save writes the workspace to path.
func Save(path string, ws *Workspace) error {
	b, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
