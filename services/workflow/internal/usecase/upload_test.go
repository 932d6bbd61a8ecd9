package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// flakyStorage succeeds for the first failAfter uploads and fails after,
// recording every stored and deleted key.
type flakyStorage struct {
	failAfter int
	uploads   int
	stored    []string
	deleted   []string
}

func (s *flakyStorage) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	if s.uploads >= s.failAfter {
		return "", fmt.Errorf("connection reset")
	}
	s.uploads++
	s.stored = append(s.stored, key)
	return "https://cdn.test/" + key, nil
}

func (s *flakyStorage) DeleteFile(key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

var _ FileStorage = (*flakyStorage)(nil)

func footageUploads(names ...string) []FileUpload {
	files := make([]FileUpload, len(names))
	for i, name := range names {
		files[i] = FileUpload{
			Name:        name,
			Size:        1024,
			ContentType: "video/mp4",
			Reader:      strings.NewReader("frames"),
		}
	}
	return files
}

func TestUploadRawFootage_Success(t *testing.T) {
	mockRepo := new(MockProductionRepository)
	storage := &flakyStorage{failAfter: 2}
	uc := NewUploadUseCase(mockRepo, storage, nil, nil, logger.New())

	slot := &entity.VideoSlot{ID: "slot-1", Number: 1, Status: entity.StatusPending}
	mockRepo.On("ResolveSlot", "client-1", "day-1", "set-1", "slot-1").Return(slot, nil)
	mockRepo.On("SaveSlot", mock.Anything, "raw").Return(nil)

	got, err := uc.UploadRawFootage(context.Background(), "client-1", "day-1", "set-1", "slot-1", "user-1", footageUploads("take-1.mp4", "take-2.mp4"))

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusFilmed, got.Status)
	assert.Len(t, got.RawFootage, 2)
	assert.Empty(t, storage.deleted)
	mockRepo.AssertExpectations(t)
}

func TestUploadRawFootage_PartialFailureRemovesStoredObjects(t *testing.T) {
	mockRepo := new(MockProductionRepository)
	storage := &flakyStorage{failAfter: 1}
	uc := NewUploadUseCase(mockRepo, storage, nil, nil, logger.New())

	slot := &entity.VideoSlot{ID: "slot-1", Number: 1, Status: entity.StatusPending}
	mockRepo.On("ResolveSlot", "client-1", "day-1", "set-1", "slot-1").Return(slot, nil)

	got, err := uc.UploadRawFootage(context.Background(), "client-1", "day-1", "set-1", "slot-1", "user-1", footageUploads("take-1.mp4", "take-2.mp4"))

	assert.Nil(t, got)
	assert.True(t, apperr.IsExternalAdapter(err))
	assert.Equal(t, storage.stored, storage.deleted)
	assert.Len(t, storage.deleted, 1)
	mockRepo.AssertNotCalled(t, "SaveSlot", mock.Anything, mock.Anything)
}

func TestUploadRawFootage_RejectedTransitionUploadsNothing(t *testing.T) {
	mockRepo := new(MockProductionRepository)
	storage := &flakyStorage{failAfter: 2}
	uc := NewUploadUseCase(mockRepo, storage, nil, nil, logger.New())

	slot := editedSlot("slot-1")
	mockRepo.On("ResolveSlot", "client-1", "day-1", "set-1", "slot-1").Return(slot, nil)

	_, err := uc.UploadRawFootage(context.Background(), "client-1", "day-1", "set-1", "slot-1", "user-1", footageUploads("late.mp4"))

	assert.True(t, apperr.IsPrecondition(err))
	assert.Empty(t, storage.stored)
}
