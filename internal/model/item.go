package model

import "time"

// MemberID identifies a product member.
type MemberID int

// Person is the minimal identity attached to an item's creator.
type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Item is a single work-tracking ticket as seen by the detail panel.
// The panel never mutates it; changes go through the dispatcher.
type Item struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	Type        string    `json:"type"`
	Score       string    `json:"score,omitempty"` // "" when not estimated
	Status      string    `json:"status"`
	AssignedTo  *MemberID `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   *Person   `json:"created_by,omitempty"`
}

// Member is selectable reference data for the assignee dropdown.
type Member struct {
	Value MemberID `json:"value"`
	Label string   `json:"label"`
	Email string   `json:"email,omitempty"`
}
