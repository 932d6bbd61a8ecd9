package usecase

import (
	"context"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/pkg/queue"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/publisher"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/repo/persistent"
)

type PostingUseCase interface {
	ListFolders(clientID string) ([]*entity.PostingFolder, error)
	GetFolder(folderID string) (*entity.PostingFolder, error)
	PostVideo(ctx context.Context, videoID string, platforms []entity.Platform, caption, hashtags, actor string) (*entity.PostingVideo, error)
}

type postingUseCase struct {
	repo        persistent.PostingRepository
	registry    *publisher.Registry
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostingUseCase(
	repo persistent.PostingRepository,
	registry *publisher.Registry,
	queueClient *queue.Client,
	l *logger.Logger,
) PostingUseCase {
	return &postingUseCase{
		repo:        repo,
		registry:    registry,
		queueClient: queueClient,
		logger:      l,
	}
}

func (uc *postingUseCase) ListFolders(clientID string) ([]*entity.PostingFolder, error) {
	return uc.repo.ListFolders(clientID)
}

func (uc *postingUseCase) GetFolder(folderID string) (*entity.PostingFolder, error) {
	return uc.repo.GetFolder(folderID)
}

// PostVideo publishes one video to every requested platform. The publish is
// all or nothing: if any platform rejects it, no platform result and no
// status change is recorded, and the video stays ready for a retry.
func (uc *postingUseCase) PostVideo(ctx context.Context, videoID string, platforms []entity.Platform, caption, hashtags, actor string) (*entity.PostingVideo, error) {
	if len(platforms) == 0 {
		return nil, apperr.Validation("at least one platform is required")
	}

	seen := make(map[entity.Platform]bool, len(platforms))
	for _, p := range platforms {
		if !entity.ValidPlatform(p) {
			return nil, apperr.Validation("unknown platform: %s", p)
		}
		if seen[p] {
			return nil, apperr.Validation("platform %s listed twice", p)
		}
		seen[p] = true
	}

	video, err := uc.repo.GetVideo(videoID)
	if err != nil {
		return nil, err
	}
	if video.Status == entity.PostingVideoPosted {
		return nil, apperr.Precondition("video %s has already been posted", videoID)
	}

	// Resolve every publisher before touching any platform.
	resolved := make([]publisher.PlatformPublisher, len(platforms))
	for i, p := range platforms {
		pub, err := uc.registry.Get(p)
		if err != nil {
			return nil, err
		}
		resolved[i] = pub
	}

	for _, pub := range resolved {
		if _, err := pub.Publish(ctx, video, caption, hashtags); err != nil {
			uc.logger.Error("Publish of video %s to %s failed: %v", videoID, pub.Platform(), err)
			return nil, apperr.ExternalAdapter(err, "publish to %s failed", pub.Platform())
		}
	}

	posted, err := uc.repo.MarkPosted(videoID, platforms, caption, hashtags, time.Now())
	if err != nil {
		return nil, err
	}

	if uc.queueClient != nil {
		go func() {
			err := uc.queueClient.PublishNotificationTask(map[string]interface{}{
				"type":      "video_posted",
				"video_id":  posted.ID,
				"slot_id":   posted.SourceSlotID,
				"platforms": joinPlatformNames(platforms),
				"actor":     actor,
				"priority":  6,
			})
			if err != nil {
				uc.logger.Error("Failed to publish video_posted notification: %v", err)
			}
		}()
	}

	return posted, nil
}

func joinPlatformNames(platforms []entity.Platform) []string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return names
}
