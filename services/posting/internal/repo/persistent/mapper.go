package persistent

import (
	"strings"

	"github.com/PritamDhobale/CreatorHub/services/posting/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/model"
)

func splitPlatforms(s string) []entity.Platform {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]entity.Platform, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, entity.Platform(p))
		}
	}
	return out
}

func joinPlatforms(platforms []entity.Platform) string {
	parts := make([]string, len(platforms))
	for i, p := range platforms {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

func ToPostingVideoEntity(m *model.PostingVideoModel) entity.PostingVideo {
	return entity.PostingVideo{
		ID:           m.ID,
		FolderID:     m.FolderID,
		SourceSlotID: m.SourceSlotID,
		Position:     m.Position,
		Name:         m.Name,
		Size:         m.Size,
		ContentType:  m.ContentType,
		UploadedBy:   m.UploadedBy,
		URL:          m.URL,
		Status:       entity.PostingVideoStatus(m.Status),
		PostedAt:     m.PostedAt,
		Platforms:    splitPlatforms(m.Platforms),
		Caption:      m.Captions,
		Hashtags:     m.Hashtags,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToPostingFolderEntity(m *model.PostingFolderModel, expectedSize int) *entity.PostingFolder {
	if m == nil {
		return nil
	}

	videos := make([]entity.PostingVideo, len(m.Videos))
	for i := range m.Videos {
		videos[i] = ToPostingVideoEntity(&m.Videos[i])
	}

	return &entity.PostingFolder{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Date:      m.Date,
		Videos:    videos,
		Complete:  expectedSize > 0 && len(videos) == expectedSize,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
