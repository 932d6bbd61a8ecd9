package entity

import (
	"sort"
	"time"
)

// ReviewComment attaches reviewer feedback to a video slot at a playback
// offset. Replies are a single level deep: a reply belongs to exactly one
// top-level comment and its timestamp carries no meaning.
type ReviewComment struct {
	ID        string          `json:"id"`
	SlotID    string          `json:"slot_id"`
	ParentID  string          `json:"parent_id,omitempty"`
	Timestamp float64         `json:"timestamp"`
	Author    string          `json:"author"`
	Body      string          `json:"body"`
	CreatedAt time.Time       `json:"created_at"`
	Replies   []ReviewComment `json:"replies,omitempty"`
}

func (c *ReviewComment) IsReply() bool {
	return c.ParentID != ""
}

// SortCommentsForDisplay orders top-level comments by ascending playback
// timestamp; replies keep their insertion order.
func SortCommentsForDisplay(comments []ReviewComment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp < comments[j].Timestamp
	})
}
