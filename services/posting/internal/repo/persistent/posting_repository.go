package persistent

import (
	"errors"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/model"

	"gorm.io/gorm"
)

type PostingRepository interface {
	ListFolders(clientID string) ([]*entity.PostingFolder, error)
	GetFolder(folderID string) (*entity.PostingFolder, error)
	GetVideo(videoID string) (*entity.PostingVideo, error)
	MarkPosted(videoID string, platforms []entity.Platform, caption, hashtags string, postedAt time.Time) (*entity.PostingVideo, error)
}

type postingRepository struct {
	db           *gorm.DB
	expectedSize int
}

func NewPostingRepository(db *gorm.DB, expectedSize int) PostingRepository {
	return &postingRepository{db: db, expectedSize: expectedSize}
}

func (r *postingRepository) ListFolders(clientID string) ([]*entity.PostingFolder, error) {
	query := r.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("posting_videos.position ASC")
	}).Order("date DESC")
	if clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var folderModels []model.PostingFolderModel
	if err := query.Find(&folderModels).Error; err != nil {
		return nil, err
	}

	folders := make([]*entity.PostingFolder, len(folderModels))
	for i := range folderModels {
		folders[i] = ToPostingFolderEntity(&folderModels[i], r.expectedSize)
	}
	return folders, nil
}

func (r *postingRepository) GetFolder(folderID string) (*entity.PostingFolder, error) {
	var folderModel model.PostingFolderModel
	err := r.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("posting_videos.position ASC")
	}).Where("id = ?", folderID).First(&folderModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PathResolution("posting folder %s not found", folderID)
		}
		return nil, err
	}
	return ToPostingFolderEntity(&folderModel, r.expectedSize), nil
}

func (r *postingRepository) GetVideo(videoID string) (*entity.PostingVideo, error) {
	var videoModel model.PostingVideoModel
	if err := r.db.Where("id = ?", videoID).First(&videoModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PathResolution("posting video %s not found", videoID)
		}
		return nil, err
	}
	video := ToPostingVideoEntity(&videoModel)
	return &video, nil
}

// MarkPosted records a successful publish and flips the source slot from
// approved to posted in the same transaction.
func (r *postingRepository) MarkPosted(videoID string, platforms []entity.Platform, caption, hashtags string, postedAt time.Time) (*entity.PostingVideo, error) {
	var videoModel model.PostingVideoModel
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", videoID).First(&videoModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.PathResolution("posting video %s not found", videoID)
			}
			return err
		}

		updates := map[string]interface{}{
			"status":    string(entity.PostingVideoPosted),
			"posted_at": postedAt,
			"platforms": joinPlatforms(platforms),
			"captions":  caption,
			"hashtags":  hashtags,
		}
		if err := tx.Model(&videoModel).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Model(&model.VideoSlotModel{}).
			Where("id = ? AND status = ?", videoModel.SourceSlotID, "approved").
			Update("status", "posted").Error
	})
	if err != nil {
		return nil, err
	}

	videoModel.Status = string(entity.PostingVideoPosted)
	videoModel.PostedAt = &postedAt
	videoModel.Platforms = joinPlatforms(platforms)
	videoModel.Captions = caption
	videoModel.Hashtags = hashtags

	video := ToPostingVideoEntity(&videoModel)
	return &video, nil
}
