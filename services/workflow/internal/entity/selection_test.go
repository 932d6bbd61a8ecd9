package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullSelection() UploadSelection {
	return UploadSelection{ClientID: "c1", DayID: "d1", SetID: "s1", VideoID: "v1"}
}

func TestSelectClient_ResetsDescendants(t *testing.T) {
	sel := fullSelection()

	sel.SelectClient("c2")

	assert.Equal(t, "c2", sel.ClientID)
	assert.Empty(t, sel.DayID)
	assert.Empty(t, sel.SetID)
	assert.Empty(t, sel.VideoID)
}

func TestSelectDay_ResetsSetAndVideo(t *testing.T) {
	sel := fullSelection()

	sel.SelectDay("d2")

	assert.Equal(t, "c1", sel.ClientID)
	assert.Equal(t, "d2", sel.DayID)
	assert.Empty(t, sel.SetID)
	assert.Empty(t, sel.VideoID)
}

func TestSelectSet_ResetsVideo(t *testing.T) {
	sel := fullSelection()

	sel.SelectSet("s2")

	assert.Equal(t, "d1", sel.DayID)
	assert.Equal(t, "s2", sel.SetID)
	assert.Empty(t, sel.VideoID)
}

func TestSelectVideo_KeepsAncestors(t *testing.T) {
	sel := fullSelection()

	sel.SelectVideo("v2")

	assert.Equal(t, UploadSelection{ClientID: "c1", DayID: "d1", SetID: "s1", VideoID: "v2"}, sel)
}

func TestComplete(t *testing.T) {
	sel := fullSelection()
	assert.True(t, sel.Complete())

	sel.SelectClient("c2")
	assert.False(t, sel.Complete())
}
