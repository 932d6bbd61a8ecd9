package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortCommentsForDisplay(t *testing.T) {
	comments := []ReviewComment{
		{ID: "c1", Timestamp: 120},
		{ID: "c2", Timestamp: 15},
		{ID: "c3", Timestamp: 45.5},
	}

	SortCommentsForDisplay(comments)

	assert.Equal(t, "c2", comments[0].ID)
	assert.Equal(t, "c3", comments[1].ID)
	assert.Equal(t, "c1", comments[2].ID)
}

func TestSortCommentsForDisplay_StableOnEqualTimestamps(t *testing.T) {
	comments := []ReviewComment{
		{ID: "first", Timestamp: 30},
		{ID: "second", Timestamp: 30},
	}

	SortCommentsForDisplay(comments)

	assert.Equal(t, "first", comments[0].ID)
	assert.Equal(t, "second", comments[1].ID)
}

func TestIsReply(t *testing.T) {
	top := ReviewComment{ID: "c1"}
	reply := ReviewComment{ID: "c2", ParentID: "c1"}

	assert.False(t, top.IsReply())
	assert.True(t, reply.IsReply())
}
