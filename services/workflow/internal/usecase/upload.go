package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/pkg/queue"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/model"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const selectionTTL = 24 * time.Hour

// FileUpload is one incoming file from a multipart request.
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// FileStorage is the slice of pkg/s3 the upload flow needs.
type FileStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

type UploadUseCase interface {
	UploadRawFootage(ctx context.Context, clientID, dayID, setID, slotID, uploadedBy string, files []FileUpload) (*entity.VideoSlot, error)
	UploadEditedVideo(ctx context.Context, clientID, dayID, setID, slotID, uploadedBy string, files []FileUpload) (*entity.VideoSlot, error)
	GetSelection(ctx context.Context, userID string) (*entity.UploadSelection, error)
	SelectClient(ctx context.Context, userID, clientID string) (*entity.UploadSelection, error)
	SelectDay(ctx context.Context, userID, dayID string) (*entity.UploadSelection, error)
	SelectSet(ctx context.Context, userID, setID string) (*entity.UploadSelection, error)
	SelectVideo(ctx context.Context, userID, videoID string) (*entity.UploadSelection, error)
	ClearSelection(ctx context.Context, userID string) error
}

type uploadUseCase struct {
	repo        persistent.ProductionRepository
	storage     FileStorage
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewUploadUseCase(
	repo persistent.ProductionRepository,
	storage FileStorage,
	redisClient *redis.Client,
	queueClient *queue.Client,
	l *logger.Logger,
) UploadUseCase {
	return &uploadUseCase{
		repo:        repo,
		storage:     storage,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      l,
	}
}

func (uc *uploadUseCase) UploadRawFootage(ctx context.Context, clientID, dayID, setID, slotID, uploadedBy string, files []FileUpload) (*entity.VideoSlot, error) {
	slot, err := uc.repo.ResolveSlot(clientID, dayID, setID, slotID)
	if err != nil {
		return nil, err
	}

	uploaded, err := uc.storeFiles(slot, model.FileKindRaw, uploadedBy, files)
	if err != nil {
		return nil, err
	}
	if err := slot.AttachRawFootage(uploaded); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveSlot(slot, model.FileKindRaw); err != nil {
		return nil, err
	}

	uc.notify("footage_uploaded", slot, uploadedBy)
	uc.invalidateStatusCounts(ctx)
	return slot, nil
}

func (uc *uploadUseCase) UploadEditedVideo(ctx context.Context, clientID, dayID, setID, slotID, uploadedBy string, files []FileUpload) (*entity.VideoSlot, error) {
	slot, err := uc.repo.ResolveSlot(clientID, dayID, setID, slotID)
	if err != nil {
		return nil, err
	}

	uploaded, err := uc.storeFiles(slot, model.FileKindEdited, uploadedBy, files)
	if err != nil {
		return nil, err
	}
	if err := slot.AttachEditedVideo(uploaded); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveSlot(slot, model.FileKindEdited); err != nil {
		return nil, err
	}

	uc.notify("edit_submitted", slot, uploadedBy)
	uc.invalidateStatusCounts(ctx)
	return slot, nil
}

// storeFiles validates the batch and checks the transition before any byte
// reaches S3, so a rejected upload leaves no orphaned objects behind.
func (uc *uploadUseCase) storeFiles(slot *entity.VideoSlot, kind, uploadedBy string, files []FileUpload) ([]entity.UploadedFile, error) {
	if len(files) == 0 {
		return nil, apperr.Validation("at least one file is required")
	}

	probe := *slot
	probeFiles := make([]entity.UploadedFile, len(files))
	var transitionErr error
	if kind == model.FileKindRaw {
		transitionErr = probe.AttachRawFootage(probeFiles)
	} else {
		transitionErr = probe.AttachEditedVideo(probeFiles)
	}
	if transitionErr != nil {
		return nil, transitionErr
	}

	uploaded := make([]entity.UploadedFile, 0, len(files))
	storedKeys := make([]string, 0, len(files))
	for _, f := range files {
		key := fmt.Sprintf("%s/%s/%s%s", kind, slot.ID, uuid.New().String(), filepath.Ext(f.Name))
		url, err := uc.storage.UploadFile(key, f.Reader, f.ContentType)
		if err != nil {
			uc.logger.Error("Failed to upload %s to S3: %v", f.Name, err)
			uc.discardObjects(storedKeys)
			return nil, apperr.ExternalAdapter(err, "storage upload failed for %s", f.Name)
		}
		storedKeys = append(storedKeys, key)

		uploaded = append(uploaded, entity.UploadedFile{
			Name:       f.Name,
			Size:       f.Size,
			Type:       f.ContentType,
			UploadedAt: time.Now(),
			UploadedBy: uploadedBy,
			URL:        url,
		})
	}
	return uploaded, nil
}

// discardObjects removes objects left behind by a batch that failed partway.
// Best effort: a failed delete only logs, the upload error reaches the caller.
func (uc *uploadUseCase) discardObjects(keys []string) {
	for _, key := range keys {
		if err := uc.storage.DeleteFile(key); err != nil {
			uc.logger.Warn("Failed to remove orphaned object %s: %v", key, err)
		}
	}
}

func (uc *uploadUseCase) notify(event string, slot *entity.VideoSlot, actor string) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		err := uc.queueClient.PublishNotificationTask(map[string]interface{}{
			"type":     event,
			"slot_id":  slot.ID,
			"status":   string(slot.Status),
			"actor":    actor,
			"priority": 5,
		})
		if err != nil {
			uc.logger.Error("Failed to publish %s notification: %v", event, err)
		}
	}()
}

func (uc *uploadUseCase) invalidateStatusCounts(ctx context.Context) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(ctx, statusCountsCacheKey).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate status counts cache: %v", err)
	}
}

func selectionKey(userID string) string {
	return fmt.Sprintf("upload_selection:%s", userID)
}

func (uc *uploadUseCase) loadSelection(ctx context.Context, userID string) (*entity.UploadSelection, error) {
	selection := &entity.UploadSelection{}
	data, err := uc.redisClient.Get(ctx, selectionKey(userID)).Result()
	if err == redis.Nil {
		return selection, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), selection); err != nil {
		return &entity.UploadSelection{}, nil
	}
	return selection, nil
}

func (uc *uploadUseCase) saveSelection(ctx context.Context, userID string, selection *entity.UploadSelection) error {
	data, err := json.Marshal(selection)
	if err != nil {
		return err
	}
	return uc.redisClient.Set(ctx, selectionKey(userID), data, selectionTTL).Err()
}

func (uc *uploadUseCase) GetSelection(ctx context.Context, userID string) (*entity.UploadSelection, error) {
	return uc.loadSelection(ctx, userID)
}

func (uc *uploadUseCase) SelectClient(ctx context.Context, userID, clientID string) (*entity.UploadSelection, error) {
	return uc.updateSelection(ctx, userID, func(s *entity.UploadSelection) {
		s.SelectClient(clientID)
	})
}

func (uc *uploadUseCase) SelectDay(ctx context.Context, userID, dayID string) (*entity.UploadSelection, error) {
	return uc.updateSelection(ctx, userID, func(s *entity.UploadSelection) {
		s.SelectDay(dayID)
	})
}

func (uc *uploadUseCase) SelectSet(ctx context.Context, userID, setID string) (*entity.UploadSelection, error) {
	return uc.updateSelection(ctx, userID, func(s *entity.UploadSelection) {
		s.SelectSet(setID)
	})
}

func (uc *uploadUseCase) SelectVideo(ctx context.Context, userID, videoID string) (*entity.UploadSelection, error) {
	return uc.updateSelection(ctx, userID, func(s *entity.UploadSelection) {
		s.SelectVideo(videoID)
	})
}

func (uc *uploadUseCase) updateSelection(ctx context.Context, userID string, apply func(*entity.UploadSelection)) (*entity.UploadSelection, error) {
	selection, err := uc.loadSelection(ctx, userID)
	if err != nil {
		return nil, err
	}
	apply(selection)
	if err := uc.saveSelection(ctx, userID, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

func (uc *uploadUseCase) ClearSelection(ctx context.Context, userID string) error {
	return uc.redisClient.Del(ctx, selectionKey(userID)).Err()
}
