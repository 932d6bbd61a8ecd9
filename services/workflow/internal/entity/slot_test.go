package entity

import (
	"testing"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func testFile(name string) UploadedFile {
	return UploadedFile{
		ID:         "file-" + name,
		Name:       name,
		Size:       1024,
		Type:       "video/mp4",
		UploadedAt: time.Now(),
		UploadedBy: "user-1",
		URL:        "https://storage.test/" + name,
	}
}

func pendingSlot() *VideoSlot {
	return &VideoSlot{ID: "slot-1", SetID: "set-1", Number: 1, Status: StatusPending}
}

func editedSlot() *VideoSlot {
	return &VideoSlot{
		ID:          "slot-1",
		SetID:       "set-1",
		Number:      1,
		Status:      StatusEdited,
		RawFootage:  []UploadedFile{testFile("raw.mp4")},
		EditedVideo: []UploadedFile{testFile("cut-v1.mp4")},
	}
}

func TestAttachRawFootage_PendingToFilmed(t *testing.T) {
	slot := pendingSlot()

	err := slot.AttachRawFootage([]UploadedFile{testFile("raw.mp4")})

	assert.NoError(t, err)
	assert.Equal(t, StatusFilmed, slot.Status)
	assert.Len(t, slot.RawFootage, 1)
}

func TestAttachRawFootage_EmptyListDoesNotAdvance(t *testing.T) {
	slot := pendingSlot()

	err := slot.AttachRawFootage(nil)

	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, StatusPending, slot.Status)
	assert.Empty(t, slot.RawFootage)
}

func TestAttachRawFootage_ReshootReplacesFootage(t *testing.T) {
	slot := pendingSlot()
	assert.NoError(t, slot.AttachRawFootage([]UploadedFile{testFile("take-1.mp4")}))

	err := slot.AttachRawFootage([]UploadedFile{testFile("take-2.mp4"), testFile("take-3.mp4")})

	assert.NoError(t, err)
	assert.Equal(t, StatusFilmed, slot.Status)
	assert.Len(t, slot.RawFootage, 2)
	assert.Equal(t, "take-2.mp4", slot.RawFootage[0].Name)
}

func TestAttachRawFootage_RejectedOnceEdited(t *testing.T) {
	slot := editedSlot()

	err := slot.AttachRawFootage([]UploadedFile{testFile("late.mp4")})

	assert.True(t, apperr.IsPrecondition(err))
	assert.Equal(t, StatusEdited, slot.Status)
}

func TestAttachRawFootage_LockedInEveryLaterState(t *testing.T) {
	for _, status := range []VideoStatus{StatusEdited, StatusRevision, StatusApproved, StatusPosted} {
		slot := editedSlot()
		slot.Status = status

		err := slot.AttachRawFootage([]UploadedFile{testFile("late.mp4")})

		assert.True(t, apperr.IsPrecondition(err), "status %s must lock raw footage", status)
		assert.Equal(t, status, slot.Status)
	}
}

func TestAttachEditedVideo_FilmedToEdited(t *testing.T) {
	slot := pendingSlot()
	assert.NoError(t, slot.AttachRawFootage([]UploadedFile{testFile("raw.mp4")}))

	err := slot.AttachEditedVideo([]UploadedFile{testFile("cut-v1.mp4")})

	assert.NoError(t, err)
	assert.Equal(t, StatusEdited, slot.Status)
	assert.Len(t, slot.EditedVideo, 1)
}

func TestAttachEditedVideo_PendingRejected(t *testing.T) {
	slot := pendingSlot()

	err := slot.AttachEditedVideo([]UploadedFile{testFile("cut.mp4")})

	assert.True(t, apperr.IsPrecondition(err))
	assert.Equal(t, StatusPending, slot.Status)
	assert.Empty(t, slot.EditedVideo)
}

func TestAttachEditedVideo_EmptyListDoesNotAdvance(t *testing.T) {
	slot := pendingSlot()
	assert.NoError(t, slot.AttachRawFootage([]UploadedFile{testFile("raw.mp4")}))

	err := slot.AttachEditedVideo(nil)

	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, StatusFilmed, slot.Status)
}

func TestSendForRevision(t *testing.T) {
	slot := editedSlot()

	err := slot.SendForRevision("fix audio")

	assert.NoError(t, err)
	assert.Equal(t, StatusRevision, slot.Status)
	assert.Equal(t, "fix audio", slot.RevisionNotes)
}

func TestSendForRevision_EmptyNotesRejected(t *testing.T) {
	slot := editedSlot()

	err := slot.SendForRevision("   ")

	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, StatusEdited, slot.Status)
	assert.Empty(t, slot.RevisionNotes)
}

func TestSendForRevision_OnlyFromEdited(t *testing.T) {
	slot := pendingSlot()

	err := slot.SendForRevision("needs work")

	assert.True(t, apperr.IsPrecondition(err))
	assert.Equal(t, StatusPending, slot.Status)
}

func TestRevisionCycle_ReuploadReplacesEditedVideo(t *testing.T) {
	slot := editedSlot()
	assert.NoError(t, slot.SendForRevision("adjust color grading"))

	err := slot.AttachEditedVideo([]UploadedFile{testFile("cut-v2.mp4")})

	assert.NoError(t, err)
	assert.Equal(t, StatusEdited, slot.Status)
	// The sequence is replaced, not appended to
	assert.Len(t, slot.EditedVideo, 1)
	assert.Equal(t, "cut-v2.mp4", slot.EditedVideo[0].Name)
	// Notes are retained for history
	assert.Equal(t, "adjust color grading", slot.RevisionNotes)
}

func TestApprove(t *testing.T) {
	slot := editedSlot()

	err := slot.Approve()

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, slot.Status)
}

func TestApprove_NoEditedVideoRejected(t *testing.T) {
	slot := editedSlot()
	slot.EditedVideo = nil

	err := slot.Approve()

	assert.True(t, apperr.IsPrecondition(err))
	assert.Equal(t, StatusEdited, slot.Status)
}

func TestApprove_NotEditedRejected(t *testing.T) {
	slot := editedSlot()
	assert.NoError(t, slot.SendForRevision("fix audio"))

	err := slot.Approve()

	assert.True(t, apperr.IsPrecondition(err))
	assert.Equal(t, StatusRevision, slot.Status)
}

func TestMarkPosted(t *testing.T) {
	slot := editedSlot()
	assert.NoError(t, slot.Approve())

	err := slot.MarkPosted()

	assert.NoError(t, err)
	assert.Equal(t, StatusPosted, slot.Status)
}

func TestMarkPosted_RequiresApproved(t *testing.T) {
	slot := editedSlot()

	err := slot.MarkPosted()

	assert.True(t, apperr.IsPrecondition(err))
	assert.Equal(t, StatusEdited, slot.Status)
}

func TestPostedIsTerminal(t *testing.T) {
	slot := editedSlot()
	assert.NoError(t, slot.Approve())
	assert.NoError(t, slot.MarkPosted())

	assert.Error(t, slot.AttachRawFootage([]UploadedFile{testFile("late.mp4")}))
	assert.Error(t, slot.AttachEditedVideo([]UploadedFile{testFile("late-cut.mp4")}))
	assert.Error(t, slot.SendForRevision("too late"))
	assert.Error(t, slot.Approve())
	assert.Error(t, slot.MarkPosted())
	assert.Equal(t, StatusPosted, slot.Status)
}

func TestFullLifecycle(t *testing.T) {
	slot := pendingSlot()

	assert.NoError(t, slot.AttachRawFootage([]UploadedFile{testFile("raw.mp4")}))
	assert.NoError(t, slot.AttachEditedVideo([]UploadedFile{testFile("cut-v1.mp4")}))
	assert.NoError(t, slot.SendForRevision("please adjust the color grading"))
	assert.NoError(t, slot.AttachEditedVideo([]UploadedFile{testFile("cut-v2.mp4")}))
	assert.NoError(t, slot.Approve())
	assert.NoError(t, slot.MarkPosted())

	assert.Equal(t, StatusPosted, slot.Status)
}

func TestStatusOrdering(t *testing.T) {
	assert.True(t, StatusPending.Before(StatusFilmed))
	assert.True(t, StatusFilmed.Before(StatusEdited))
	assert.True(t, StatusEdited.Before(StatusApproved))
	assert.True(t, StatusApproved.Before(StatusPosted))
	// The revision cycle is not a backward move
	assert.False(t, StatusEdited.Before(StatusRevision))
	assert.False(t, StatusRevision.Before(StatusEdited))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusRevision.Valid())
	assert.False(t, VideoStatus("archived").Valid())
}
