package persistent

import (
	"fmt"
	"testing"

	"github.com/PritamDhobale/CreatorHub/services/posting/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/model"

	"github.com/stretchr/testify/assert"
)

func folderWithVideos(n int) *model.PostingFolderModel {
	videos := make([]model.PostingVideoModel, n)
	for i := range videos {
		videos[i] = model.PostingVideoModel{
			ID:       fmt.Sprintf("video-%d", i+1),
			FolderID: "folder-1",
			Position: i + 1,
			Status:   "ready",
		}
	}
	return &model.PostingFolderModel{
		ID:       "folder-1",
		ClientID: "client-1",
		Date:     "2026-09-07",
		Videos:   videos,
	}
}

func TestToPostingFolderEntity_CompleteExactlyAtExpectedSize(t *testing.T) {
	tests := []struct {
		name         string
		videoCount   int
		expectedSize int
		wantComplete bool
	}{
		{"under-full", 2, 3, false},
		{"exactly full", 3, 3, true},
		{"over-full", 4, 3, false},
		{"empty", 0, 3, false},
		{"size not configured", 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder := ToPostingFolderEntity(folderWithVideos(tt.videoCount), tt.expectedSize)
			assert.Equal(t, tt.wantComplete, folder.Complete)
			assert.Len(t, folder.Videos, tt.videoCount)
		})
	}
}

func TestPlatformsRoundTrip(t *testing.T) {
	platforms := []entity.Platform{entity.PlatformInstagram, entity.PlatformTikTok}

	joined := joinPlatforms(platforms)
	assert.Equal(t, "instagram,tiktok", joined)
	assert.Equal(t, platforms, splitPlatforms(joined))

	assert.Nil(t, splitPlatforms(""))
}
