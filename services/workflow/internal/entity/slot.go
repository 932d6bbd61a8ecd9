package entity

import (
	"strings"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
)

// VideoSlot moves through pending -> filmed -> edited -> approved -> posted,
// with an edited <-> revision cycle while the reviewers iterate. The slot
// methods are the only place the status field is allowed to change.
type VideoSlot struct {
	ID            string         `json:"id"`
	SetID         string         `json:"set_id"`
	Number        int            `json:"number"`
	Status        VideoStatus    `json:"status"`
	RawFootage    []UploadedFile `json:"raw_footage"`
	EditedVideo   []UploadedFile `json:"edited_video"`
	RevisionNotes string         `json:"revision_notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AttachRawFootage replaces the raw footage sequence and advances the slot to
// filmed. Re-uploading while still filmed is allowed (a re-shoot); anything
// already in editing or beyond is locked.
func (v *VideoSlot) AttachRawFootage(files []UploadedFile) error {
	if len(files) == 0 {
		return apperr.Validation("at least one footage file is required")
	}
	if StatusFilmed.Before(v.Status) {
		return apperr.Precondition("video slot %d is already in %s state and no longer accepts raw footage", v.Number, v.Status)
	}
	v.RawFootage = files
	v.Status = StatusFilmed
	return nil
}

// AttachEditedVideo replaces the edited video sequence and moves the slot to
// edited. Allowed from filmed, from edited (editor swaps the cut) and from
// revision (re-upload after fixes); revision notes are retained for history.
func (v *VideoSlot) AttachEditedVideo(files []UploadedFile) error {
	if len(files) == 0 {
		return apperr.Validation("at least one edited video file is required")
	}
	switch v.Status {
	case StatusFilmed, StatusEdited, StatusRevision:
		v.EditedVideo = files
		v.Status = StatusEdited
		return nil
	case StatusPending:
		return apperr.Precondition("video slot %d has no raw footage yet", v.Number)
	default:
		return apperr.Precondition("video slot %d is already %s", v.Number, v.Status)
	}
}

// SendForRevision moves an edited slot back to the revision state. Notes are
// mandatory so the editor knows what to fix.
func (v *VideoSlot) SendForRevision(notes string) error {
	if strings.TrimSpace(notes) == "" {
		return apperr.Validation("revision notes are required")
	}
	if v.Status != StatusEdited {
		return apperr.Precondition("video slot %d must be in edited state to request fixes, currently %s", v.Number, v.Status)
	}
	v.RevisionNotes = notes
	v.Status = StatusRevision
	return nil
}

// Approve marks an edited slot as approved for posting.
func (v *VideoSlot) Approve() error {
	if v.Status != StatusEdited {
		return apperr.Precondition("video slot %d must be in edited state to approve, currently %s", v.Number, v.Status)
	}
	if len(v.EditedVideo) == 0 {
		return apperr.Precondition("video slot %d has no edited video to approve", v.Number)
	}
	v.Status = StatusApproved
	return nil
}

// MarkPosted is the terminal transition, triggered once the posting service
// has published to at least one platform.
func (v *VideoSlot) MarkPosted() error {
	if v.Status != StatusApproved {
		return apperr.Precondition("video slot %d must be approved before posting, currently %s", v.Number, v.Status)
	}
	v.Status = StatusPosted
	return nil
}
