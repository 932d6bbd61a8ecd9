package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/publisher"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostingRepository is a mock implementation of PostingRepository
type MockPostingRepository struct {
	mock.Mock
}

func (m *MockPostingRepository) ListFolders(clientID string) ([]*entity.PostingFolder, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PostingFolder), args.Error(1)
}

func (m *MockPostingRepository) GetFolder(folderID string) (*entity.PostingFolder, error) {
	args := m.Called(folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostingFolder), args.Error(1)
}

func (m *MockPostingRepository) GetVideo(videoID string) (*entity.PostingVideo, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostingVideo), args.Error(1)
}

func (m *MockPostingRepository) MarkPosted(videoID string, platforms []entity.Platform, caption, hashtags string, postedAt time.Time) (*entity.PostingVideo, error) {
	args := m.Called(videoID, platforms, caption, hashtags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostingVideo), args.Error(1)
}

var _ persistent.PostingRepository = (*MockPostingRepository)(nil)

// failingPublisher rejects every publish.
type failingPublisher struct {
	platform entity.Platform
}

func (p *failingPublisher) Platform() entity.Platform {
	return p.platform
}

func (p *failingPublisher) Publish(ctx context.Context, video *entity.PostingVideo, caption, hashtags string) (string, error) {
	return "", fmt.Errorf("%s rejected the upload", p.platform)
}

func readyVideo(id string) *entity.PostingVideo {
	return &entity.PostingVideo{
		ID:           id,
		FolderID:     "folder-1",
		SourceSlotID: "slot-1",
		Name:         "final.mp4",
		URL:          "https://cdn.example.com/final.mp4",
		Status:       entity.PostingVideoReady,
	}
}

func TestPostVideo_Success(t *testing.T) {
	mockRepo := new(MockPostingRepository)
	uc := NewPostingUseCase(mockRepo, publisher.DefaultRegistry(logger.New()), nil, logger.New())

	platforms := []entity.Platform{entity.PlatformInstagram, entity.PlatformTikTok}
	video := readyVideo("video-1")
	posted := readyVideo("video-1")
	posted.Status = entity.PostingVideoPosted
	posted.Platforms = platforms

	mockRepo.On("GetVideo", "video-1").Return(video, nil)
	mockRepo.On("MarkPosted", "video-1", platforms, "launch day", "#beach").Return(posted, nil)

	result, err := uc.PostVideo(context.Background(), "video-1", platforms, "launch day", "#beach", "poster-1")

	assert.NoError(t, err)
	assert.Equal(t, entity.PostingVideoPosted, result.Status)
	mockRepo.AssertExpectations(t)
}

func TestPostVideo_NoPlatforms(t *testing.T) {
	mockRepo := new(MockPostingRepository)
	uc := NewPostingUseCase(mockRepo, publisher.DefaultRegistry(logger.New()), nil, logger.New())

	_, err := uc.PostVideo(context.Background(), "video-1", nil, "", "", "poster-1")

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	mockRepo.AssertNotCalled(t, "GetVideo", mock.Anything)
}

func TestPostVideo_UnknownPlatform(t *testing.T) {
	mockRepo := new(MockPostingRepository)
	uc := NewPostingUseCase(mockRepo, publisher.DefaultRegistry(logger.New()), nil, logger.New())

	_, err := uc.PostVideo(context.Background(), "video-1", []entity.Platform{"myspace"}, "", "", "poster-1")

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestPostVideo_AlreadyPosted(t *testing.T) {
	mockRepo := new(MockPostingRepository)
	uc := NewPostingUseCase(mockRepo, publisher.DefaultRegistry(logger.New()), nil, logger.New())

	video := readyVideo("video-1")
	video.Status = entity.PostingVideoPosted
	mockRepo.On("GetVideo", "video-1").Return(video, nil)

	_, err := uc.PostVideo(context.Background(), "video-1", []entity.Platform{entity.PlatformYouTube}, "", "", "poster-1")

	assert.Error(t, err)
	assert.True(t, apperr.IsPrecondition(err))
	mockRepo.AssertNotCalled(t, "MarkPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostVideo_PublisherFailureIsAllOrNothing(t *testing.T) {
	mockRepo := new(MockPostingRepository)
	registry := publisher.NewRegistry(
		publisher.NewStubPublisher(entity.PlatformInstagram, logger.New()),
		&failingPublisher{platform: entity.PlatformTikTok},
	)
	uc := NewPostingUseCase(mockRepo, registry, nil, logger.New())

	mockRepo.On("GetVideo", "video-1").Return(readyVideo("video-1"), nil)

	platforms := []entity.Platform{entity.PlatformInstagram, entity.PlatformTikTok}
	_, err := uc.PostVideo(context.Background(), "video-1", platforms, "", "", "poster-1")

	assert.Error(t, err)
	assert.True(t, apperr.IsExternalAdapter(err))
	mockRepo.AssertNotCalled(t, "MarkPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostVideo_UnconfiguredPlatform(t *testing.T) {
	mockRepo := new(MockPostingRepository)
	registry := publisher.NewRegistry(
		publisher.NewStubPublisher(entity.PlatformInstagram, logger.New()),
	)
	uc := NewPostingUseCase(mockRepo, registry, nil, logger.New())

	mockRepo.On("GetVideo", "video-1").Return(readyVideo("video-1"), nil)

	platforms := []entity.Platform{entity.PlatformInstagram, entity.PlatformYouTube}
	_, err := uc.PostVideo(context.Background(), "video-1", platforms, "", "", "poster-1")

	assert.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	mockRepo.AssertNotCalled(t, "MarkPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
