package entity

import "time"

// ReviewVideo is the flattened projection the revisions team works from:
// one row per slot that has an edited cut, with enough path context to
// address the slot for send-back and approval.
type ReviewVideo struct {
	SlotID        string          `json:"slot_id"`
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	DayID         string          `json:"day_id"`
	SetID         string          `json:"set_id"`
	SetName       string          `json:"set_name"`
	Title         string          `json:"title"`
	Number        int             `json:"number"`
	Status        VideoStatus     `json:"status"`
	VideoURL      string          `json:"video_url,omitempty"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	RevisionNotes string          `json:"revision_notes,omitempty"`
	Comments      []ReviewComment `json:"comments"`
}
