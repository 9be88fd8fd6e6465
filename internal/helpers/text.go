package helpers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Makepad-fr/itemdetail/internal/model"
)

// ToTitleCase upper-cases the first letter of every word and lower-cases the rest.
func ToTitleCase(s string) string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(s)
}

// ItemStatusMap turns a canonical item status into the key shown to users
// ("in-progress" -> "current"). Unknown statuses are returned unchanged.
func ItemStatusMap(status string) string {
	return ItemStatusMapIn(model.StatusMap, status)
}

// ItemStatusMapIn is ItemStatusMap over a custom status table.
func ItemStatusMapIn(statuses model.Table[string], status string) string {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), "_", "-")
	if key, ok := model.KeyOf(statuses, norm); ok {
		return key
	}
	return status
}
