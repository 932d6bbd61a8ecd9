package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/pkg/queue"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

type ReviewUseCase interface {
	ListVideosForReview() ([]*entity.ReviewVideo, error)
	AddComment(slotID, author, body string, timestamp float64) (*entity.ReviewComment, error)
	ReplyToComment(slotID, parentID, author, body string) (*entity.ReviewComment, error)
	ListComments(slotID string) ([]entity.ReviewComment, error)
	SendForRevision(ctx context.Context, slotID, notes, actor string) (*entity.VideoSlot, error)
	ApproveVideo(ctx context.Context, slotID, postingDate, actor string) (*entity.VideoSlot, error)
}

type reviewUseCase struct {
	repo        persistent.ProductionRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewReviewUseCase(
	repo persistent.ProductionRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	l *logger.Logger,
) ReviewUseCase {
	return &reviewUseCase{
		repo:        repo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      l,
	}
}

func (uc *reviewUseCase) ListVideosForReview() ([]*entity.ReviewVideo, error) {
	return uc.repo.ListVideosForReview()
}

func (uc *reviewUseCase) AddComment(slotID, author, body string, timestamp float64) (*entity.ReviewComment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.Validation("comment body is required")
	}
	if timestamp < 0 {
		return nil, apperr.Validation("comment timestamp cannot be negative")
	}
	if _, err := uc.repo.GetSlot(slotID); err != nil {
		return nil, err
	}

	comment := &entity.ReviewComment{
		SlotID:    slotID,
		Timestamp: timestamp,
		Author:    author,
		Body:      body,
	}
	if err := uc.repo.AddComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ReplyToComment nests one level deep only: replying to a reply is rejected.
func (uc *reviewUseCase) ReplyToComment(slotID, parentID, author, body string) (*entity.ReviewComment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.Validation("reply body is required")
	}

	parent, err := uc.repo.GetComment(parentID)
	if err != nil {
		return nil, err
	}
	if parent.SlotID != slotID {
		return nil, apperr.PathResolution("comment %s does not belong to slot %s", parentID, slotID)
	}
	if parent.IsReply() {
		return nil, apperr.Validation("cannot reply to a reply")
	}

	reply := &entity.ReviewComment{
		SlotID:   slotID,
		ParentID: parentID,
		Author:   author,
		Body:     body,
	}
	if err := uc.repo.AddComment(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (uc *reviewUseCase) ListComments(slotID string) ([]entity.ReviewComment, error) {
	if _, err := uc.repo.GetSlot(slotID); err != nil {
		return nil, err
	}
	return uc.repo.ListComments(slotID)
}

func (uc *reviewUseCase) SendForRevision(ctx context.Context, slotID, notes, actor string) (*entity.VideoSlot, error) {
	slot, err := uc.repo.GetSlot(slotID)
	if err != nil {
		return nil, err
	}
	if err := slot.SendForRevision(notes); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveSlot(slot, ""); err != nil {
		return nil, err
	}

	uc.notify("sent_for_revision", slot, actor)
	uc.invalidateStatusCounts(ctx)
	return slot, nil
}

// ApproveVideo is idempotent: approving an already approved slot returns it
// unchanged instead of failing, so a retried request cannot double-book the
// posting folder.
func (uc *reviewUseCase) ApproveVideo(ctx context.Context, slotID, postingDate, actor string) (*entity.VideoSlot, error) {
	if _, err := time.Parse("2006-01-02", postingDate); err != nil {
		return nil, apperr.Validation("posting date must be YYYY-MM-DD, got %q", postingDate)
	}

	slot, err := uc.repo.GetSlot(slotID)
	if err != nil {
		return nil, err
	}
	if slot.Status == entity.StatusApproved {
		return slot, nil
	}
	if err := slot.Approve(); err != nil {
		return nil, err
	}
	if err := uc.repo.ApproveSlot(slot, postingDate); err != nil {
		return nil, err
	}

	uc.notify("video_approved", slot, actor)
	uc.invalidateStatusCounts(ctx)
	return slot, nil
}

func (uc *reviewUseCase) notify(event string, slot *entity.VideoSlot, actor string) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		err := uc.queueClient.PublishNotificationTask(map[string]interface{}{
			"type":     event,
			"slot_id":  slot.ID,
			"status":   string(slot.Status),
			"actor":    actor,
			"priority": 7,
		})
		if err != nil {
			uc.logger.Error("Failed to publish %s notification: %v", event, err)
		}
	}()
}

func (uc *reviewUseCase) invalidateStatusCounts(ctx context.Context) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(ctx, statusCountsCacheKey).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate status counts cache: %v", err)
	}
}
