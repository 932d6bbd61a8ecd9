package persistent

import (
	"sort"
	"strings"

	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/model"
)

func splitCSV(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func joinCSV(items []string) string {
	return strings.Join(items, ",")
}

func ToClientEntity(m *model.ClientModel) *entity.Client {
	if m == nil {
		return nil
	}

	client := &entity.Client{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		Status:           entity.ClientStatus(m.Status),
		AssignedIdeators: make([]string, 0, len(m.Ideators)),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	for _, ideator := range m.Ideators {
		client.AssignedIdeators = append(client.AssignedIdeators, ideator.ID)
	}

	if len(m.Days) > 0 {
		client.Days = make([]entity.Day, len(m.Days))
		for i := range m.Days {
			client.Days[i] = *ToDayEntity(&m.Days[i])
		}
	}

	return client
}

func ToIdeatorEntity(m *model.IdeatorModel) *entity.Ideator {
	if m == nil {
		return nil
	}

	ideator := &entity.Ideator{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		AssignedClients: make([]string, 0, len(m.Clients)),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	for _, client := range m.Clients {
		ideator.AssignedClients = append(ideator.AssignedClients, client.ID)
	}

	return ideator
}

func ToShootEntity(m *model.ShootModel, clientName string) *entity.Shoot {
	if m == nil {
		return nil
	}

	return &entity.Shoot{
		ID:               m.ID,
		ClientID:         m.ClientID,
		ClientName:       clientName,
		Date:             m.Date,
		Description:      m.Description,
		AssignedIdeators: splitCSV(m.AssignedIdeators),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToDayEntity(m *model.DayModel) *entity.Day {
	if m == nil {
		return nil
	}

	day := &entity.Day{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Name:      m.Name,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.Sets) > 0 {
		day.Sets = make([]entity.Set, len(m.Sets))
		for i := range m.Sets {
			day.Sets[i] = *ToSetEntity(&m.Sets[i])
		}
	}

	return day
}

func ToSetEntity(m *model.SetModel) *entity.Set {
	if m == nil {
		return nil
	}

	set := &entity.Set{
		ID:          m.ID,
		DayID:       m.DayID,
		Name:        m.Name,
		Type:        m.Type,
		Description: m.Description,
		StartTime:   m.StartTime,
		Location:    m.Location,
		Props:       splitCSV(m.Props),
		Actors:      splitCSV(m.Actors),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.Videos) > 0 {
		set.Videos = make([]entity.VideoSlot, len(m.Videos))
		for i := range m.Videos {
			set.Videos[i] = *ToVideoSlotEntity(&m.Videos[i])
		}
	}

	return set
}

func ToVideoSlotEntity(m *model.VideoSlotModel) *entity.VideoSlot {
	if m == nil {
		return nil
	}

	slot := &entity.VideoSlot{
		ID:            m.ID,
		SetID:         m.SetID,
		Number:        m.Number,
		Status:        entity.VideoStatus(m.Status),
		RawFootage:    []entity.UploadedFile{},
		EditedVideo:   []entity.UploadedFile{},
		RevisionNotes: m.RevisionNotes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	files := make([]model.UploadedFileModel, len(m.Files))
	copy(files, m.Files)
	sort.SliceStable(files, func(i, j int) bool { return files[i].Position < files[j].Position })

	for i := range files {
		file := ToUploadedFileEntity(&files[i])
		switch files[i].Kind {
		case model.FileKindRaw:
			slot.RawFootage = append(slot.RawFootage, file)
		case model.FileKindEdited:
			slot.EditedVideo = append(slot.EditedVideo, file)
		}
	}

	return slot
}

func ToUploadedFileEntity(m *model.UploadedFileModel) entity.UploadedFile {
	if m == nil {
		return entity.UploadedFile{}
	}

	return entity.UploadedFile{
		ID:         m.ID,
		Name:       m.Name,
		Size:       m.Size,
		Type:       m.ContentType,
		UploadedAt: m.CreatedAt,
		UploadedBy: m.UploadedBy,
		URL:        m.URL,
	}
}

func ToUploadedFileModel(slotID, kind string, position int, f *entity.UploadedFile) *model.UploadedFileModel {
	if f == nil {
		return nil
	}

	return &model.UploadedFileModel{
		ID:          f.ID,
		SlotID:      slotID,
		Kind:        kind,
		Position:    position,
		Name:        f.Name,
		Size:        f.Size,
		ContentType: f.Type,
		UploadedBy:  f.UploadedBy,
		URL:         f.URL,
	}
}

func ToReviewCommentEntity(m *model.ReviewCommentModel) *entity.ReviewComment {
	if m == nil {
		return nil
	}

	return &entity.ReviewComment{
		ID:        m.ID,
		SlotID:    m.SlotID,
		ParentID:  m.ParentID,
		Timestamp: m.Timestamp,
		Author:    m.Author,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}
