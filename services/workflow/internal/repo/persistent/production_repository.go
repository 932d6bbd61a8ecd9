package persistent

import (
	"errors"
	"fmt"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductionRepository interface {
	CreateDay(day *entity.Day) error
	CreateSet(set *entity.Set, videoCount int) error
	GetClientTree(clientID string) (*entity.Client, error)
	ListClientTrees() ([]*entity.Client, error)
	ResolveSlot(clientID, dayID, setID, slotID string) (*entity.VideoSlot, error)
	GetSlot(slotID string) (*entity.VideoSlot, error)
	SaveSlot(slot *entity.VideoSlot, replaceKind string) error
	ApproveSlot(slot *entity.VideoSlot, postingDate string) error
	AddComment(comment *entity.ReviewComment) error
	ListComments(slotID string) ([]entity.ReviewComment, error)
	GetComment(commentID string) (*entity.ReviewComment, error)
	ListVideosForReview() ([]*entity.ReviewVideo, error)
	StatusCounts() (map[entity.VideoStatus]int64, error)
}

type productionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) ProductionRepository {
	return &productionRepository{db: db}
}

func (r *productionRepository) CreateDay(day *entity.Day) error {
	var clientModel model.ClientModel
	if err := r.db.Where("id = ?", day.ClientID).First(&clientModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.PathResolution("client %s not found", day.ClientID)
		}
		return err
	}

	dayModel := &model.DayModel{
		ID:       day.ID,
		ClientID: day.ClientID,
		Name:     day.Name,
		Date:     day.Date,
	}
	if dayModel.ID == "" {
		dayModel.ID = uuid.New().String()
	}

	if err := r.db.Create(dayModel).Error; err != nil {
		return err
	}

	*day = *ToDayEntity(dayModel)
	return nil
}

func (r *productionRepository) CreateSet(set *entity.Set, videoCount int) error {
	var dayModel model.DayModel
	if err := r.db.Where("id = ?", set.DayID).First(&dayModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.PathResolution("day %s not found", set.DayID)
		}
		return err
	}

	setModel := &model.SetModel{
		ID:          set.ID,
		DayID:       set.DayID,
		Name:        set.Name,
		Type:        set.Type,
		Description: set.Description,
		StartTime:   set.StartTime,
		Location:    set.Location,
		Props:       joinCSV(set.Props),
		Actors:      joinCSV(set.Actors),
	}
	if setModel.ID == "" {
		setModel.ID = uuid.New().String()
	}

	if setModel.Name == "" {
		// Auto-generate "Set N" when no name is provided
		var count int64
		if err := r.db.Model(&model.SetModel{}).Where("day_id = ?", set.DayID).Count(&count).Error; err != nil {
			return err
		}
		setModel.Name = fmt.Sprintf("Set %d", count+1)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(setModel).Error; err != nil {
			return err
		}

		// The slot batch is fixed at creation: numbers 1..N, all pending.
		slots := make([]model.VideoSlotModel, videoCount)
		for i := 0; i < videoCount; i++ {
			slots[i] = model.VideoSlotModel{
				ID:     uuid.New().String(),
				SetID:  setModel.ID,
				Number: i + 1,
				Status: string(entity.StatusPending),
			}
			if err := tx.Create(&slots[i]).Error; err != nil {
				return err
			}
		}
		setModel.Videos = slots

		*set = *ToSetEntity(setModel)
		return nil
	})
}

func (r *productionRepository) treeQuery(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Ideators").
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("days.date ASC")
		}).
		Preload("Days.Sets", func(db *gorm.DB) *gorm.DB {
			return db.Order("sets.created_at ASC")
		}).
		Preload("Days.Sets.Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("video_slots.number ASC")
		}).
		Preload("Days.Sets.Videos.Files")
}

func (r *productionRepository) GetClientTree(clientID string) (*entity.Client, error) {
	var clientModel model.ClientModel
	if err := r.treeQuery(r.db).Where("id = ?", clientID).First(&clientModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PathResolution("client %s not found", clientID)
		}
		return nil, err
	}
	return ToClientEntity(&clientModel), nil
}

func (r *productionRepository) ListClientTrees() ([]*entity.Client, error) {
	var clientModels []model.ClientModel
	if err := r.treeQuery(r.db).Order("created_at ASC").Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]*entity.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = ToClientEntity(&clientModels[i])
	}
	return clients, nil
}

// ResolveSlot verifies the whole client->day->set->slot chain. A mutation
// whose path does not fully resolve must fail before touching anything.
func (r *productionRepository) ResolveSlot(clientID, dayID, setID, slotID string) (*entity.VideoSlot, error) {
	return r.resolveSlot(r.db, clientID, dayID, setID, slotID)
}

func (r *productionRepository) resolveSlot(tx *gorm.DB, clientID, dayID, setID, slotID string) (*entity.VideoSlot, error) {
	var slotModel model.VideoSlotModel
	err := tx.Preload("Files").
		Joins("JOIN sets ON sets.id = video_slots.set_id").
		Joins("JOIN days ON days.id = sets.day_id").
		Where("video_slots.id = ? AND sets.id = ? AND days.id = ? AND days.client_id = ?",
			slotID, setID, dayID, clientID).
		First(&slotModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PathResolution("video slot path %s/%s/%s/%s does not resolve", clientID, dayID, setID, slotID)
		}
		return nil, err
	}
	return ToVideoSlotEntity(&slotModel), nil
}

func (r *productionRepository) GetSlot(slotID string) (*entity.VideoSlot, error) {
	var slotModel model.VideoSlotModel
	if err := r.db.Preload("Files").Where("id = ?", slotID).First(&slotModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PathResolution("video slot %s not found", slotID)
		}
		return nil, err
	}
	return ToVideoSlotEntity(&slotModel), nil
}

// SaveSlot persists a slot's status and notes; when replaceKind is raw or
// edited, that file sequence is replaced wholesale inside the transaction.
func (r *productionRepository) SaveSlot(slot *entity.VideoSlot, replaceKind string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return r.saveSlot(tx, slot, replaceKind)
	})
}

func (r *productionRepository) saveSlot(tx *gorm.DB, slot *entity.VideoSlot, replaceKind string) error {
	result := tx.Model(&model.VideoSlotModel{}).Where("id = ?", slot.ID).Updates(map[string]interface{}{
		"status":         string(slot.Status),
		"revision_notes": slot.RevisionNotes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.PathResolution("video slot %s not found", slot.ID)
	}

	if replaceKind == "" {
		return nil
	}

	if err := tx.Unscoped().Where("slot_id = ? AND kind = ?", slot.ID, replaceKind).
		Delete(&model.UploadedFileModel{}).Error; err != nil {
		return err
	}

	files := slot.RawFootage
	if replaceKind == model.FileKindEdited {
		files = slot.EditedVideo
	}
	for i := range files {
		fileModel := ToUploadedFileModel(slot.ID, replaceKind, i, &files[i])
		if err := tx.Create(fileModel).Error; err != nil {
			return err
		}
		files[i].ID = fileModel.ID
	}
	return nil
}

// ApproveSlot persists the approved status and appends the slot's edited
// videos into the owning client's posting folder for the given date,
// atomically. Entries sourced from the same slot are never duplicated.
func (r *productionRepository) ApproveSlot(slot *entity.VideoSlot, postingDate string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.saveSlot(tx, slot, ""); err != nil {
			return err
		}

		var clientID string
		err := tx.Model(&model.VideoSlotModel{}).
			Select("days.client_id").
			Joins("JOIN sets ON sets.id = video_slots.set_id").
			Joins("JOIN days ON days.id = sets.day_id").
			Where("video_slots.id = ?", slot.ID).
			Scan(&clientID).Error
		if err != nil {
			return err
		}
		if clientID == "" {
			return apperr.PathResolution("video slot %s has no owning client", slot.ID)
		}

		var folder model.PostingFolderModel
		err = tx.Where("client_id = ? AND date = ?", clientID, postingDate).First(&folder).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			folder = model.PostingFolderModel{
				ID:       uuid.New().String(),
				ClientID: clientID,
				Date:     postingDate,
			}
			if err := tx.Create(&folder).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&model.PostingVideoModel{}).
			Where("source_slot_id = ?", slot.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		var position int64
		if err := tx.Model(&model.PostingVideoModel{}).
			Where("folder_id = ?", folder.ID).Count(&position).Error; err != nil {
			return err
		}

		for i := range slot.EditedVideo {
			file := &slot.EditedVideo[i]
			video := &model.PostingVideoModel{
				ID:           uuid.New().String(),
				FolderID:     folder.ID,
				SourceSlotID: slot.ID,
				Position:     int(position) + i,
				Name:         file.Name,
				Size:         file.Size,
				ContentType:  file.Type,
				UploadedBy:   file.UploadedBy,
				URL:          file.URL,
				Status:       "ready",
			}
			if err := tx.Create(video).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productionRepository) AddComment(comment *entity.ReviewComment) error {
	commentModel := &model.ReviewCommentModel{
		ID:        comment.ID,
		SlotID:    comment.SlotID,
		ParentID:  comment.ParentID,
		Timestamp: comment.Timestamp,
		Author:    comment.Author,
		Body:      comment.Body,
	}
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}

	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}

	*comment = *ToReviewCommentEntity(commentModel)
	return nil
}

func (r *productionRepository) GetComment(commentID string) (*entity.ReviewComment, error) {
	var commentModel model.ReviewCommentModel
	if err := r.db.Where("id = ?", commentID).First(&commentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PathResolution("comment %s not found", commentID)
		}
		return nil, err
	}
	return ToReviewCommentEntity(&commentModel), nil
}

// ListComments returns the thread for a slot: top-level comments ordered by
// playback timestamp, replies nested under their parent in insertion order.
func (r *productionRepository) ListComments(slotID string) ([]entity.ReviewComment, error) {
	var commentModels []model.ReviewCommentModel
	if err := r.db.Where("slot_id = ?", slotID).Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.ReviewComment)
	topLevel := make([]entity.ReviewComment, 0, len(commentModels))
	for i := range commentModels {
		if commentModels[i].ParentID == "" {
			topLevel = append(topLevel, *ToReviewCommentEntity(&commentModels[i]))
			byID[commentModels[i].ID] = &topLevel[len(topLevel)-1]
		}
	}
	for i := range commentModels {
		if commentModels[i].ParentID != "" {
			if parent, ok := byID[commentModels[i].ParentID]; ok {
				parent.Replies = append(parent.Replies, *ToReviewCommentEntity(&commentModels[i]))
			}
		}
	}

	entity.SortCommentsForDisplay(topLevel)
	return topLevel, nil
}

func (r *productionRepository) ListVideosForReview() ([]*entity.ReviewVideo, error) {
	type reviewRow struct {
		model.VideoSlotModel
		SetName    string
		DayID      string
		ClientID   string
		ClientName string
	}

	var rows []reviewRow
	err := r.db.Model(&model.VideoSlotModel{}).
		Select("video_slots.*, sets.name AS set_name, days.id AS day_id, clients.id AS client_id, clients.name AS client_name").
		Joins("JOIN sets ON sets.id = video_slots.set_id").
		Joins("JOIN days ON days.id = sets.day_id").
		Joins("JOIN clients ON clients.id = days.client_id").
		Where("video_slots.status IN ?", []string{
			string(entity.StatusEdited),
			string(entity.StatusRevision),
			string(entity.StatusApproved),
		}).
		Order("video_slots.updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	videos := make([]*entity.ReviewVideo, len(rows))
	for i, row := range rows {
		video := &entity.ReviewVideo{
			SlotID:        row.ID,
			ClientID:      row.ClientID,
			ClientName:    row.ClientName,
			DayID:         row.DayID,
			SetID:         row.SetID,
			SetName:       row.SetName,
			Title:         fmt.Sprintf("%s - Video %d", row.SetName, row.Number),
			Number:        row.Number,
			Status:        entity.VideoStatus(row.Status),
			SubmittedAt:   row.UpdatedAt,
			RevisionNotes: row.RevisionNotes,
		}

		var latestEdited model.UploadedFileModel
		if err := r.db.Where("slot_id = ? AND kind = ?", row.ID, model.FileKindEdited).
			Order("position DESC").First(&latestEdited).Error; err == nil {
			video.VideoURL = latestEdited.URL
		}

		comments, err := r.ListComments(row.ID)
		if err != nil {
			return nil, err
		}
		video.Comments = comments

		videos[i] = video
	}
	return videos, nil
}

func (r *productionRepository) StatusCounts() (map[entity.VideoStatus]int64, error) {
	type countRow struct {
		Status string
		Count  int64
	}

	var rows []countRow
	if err := r.db.Model(&model.VideoSlotModel{}).
		Select("status, count(*) AS count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[entity.VideoStatus]int64, len(rows))
	for _, row := range rows {
		status := entity.VideoStatus(row.Status)
		if !status.Valid() {
			continue
		}
		counts[status] = row.Count
	}
	return counts, nil
}
