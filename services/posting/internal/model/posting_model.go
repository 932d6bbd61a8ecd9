package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostingFolderModel struct {
	ID        string              `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  string              `gorm:"type:uuid;not null;uniqueIndex:idx_folder_client_date" json:"client_id"`
	Date      string              `gorm:"type:varchar(10);not null;uniqueIndex:idx_folder_client_date" json:"date"`
	Videos    []PostingVideoModel `gorm:"foreignKey:FolderID" json:"videos,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func (PostingFolderModel) TableName() string {
	return "posting_folders"
}

func (f *PostingFolderModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

type PostingVideoModel struct {
	ID           string     `gorm:"type:uuid;primary_key" json:"id"`
	FolderID     string     `gorm:"type:uuid;not null;index" json:"folder_id"`
	SourceSlotID string     `gorm:"type:uuid;not null;index" json:"source_slot_id"`
	Position     int        `gorm:"default:0" json:"position"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Size         int64      `gorm:"default:0" json:"size"`
	ContentType  string     `gorm:"type:varchar(100)" json:"content_type"`
	UploadedBy   string     `gorm:"type:varchar(36)" json:"uploaded_by"`
	URL          string     `gorm:"type:varchar(500)" json:"url"`
	Status       string     `gorm:"type:varchar(20);default:'ready'" json:"status"`
	PostedAt     *time.Time `json:"posted_at"`
	Platforms    string     `gorm:"type:text" json:"platforms"`
	Captions     string     `gorm:"type:text" json:"captions"`
	Hashtags     string     `gorm:"type:text" json:"hashtags"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (PostingVideoModel) TableName() string {
	return "posting_videos"
}

func (v *PostingVideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// VideoSlotModel mirrors the workflow service's slot table so posting can
// flip a slot from approved to posted without calling back into workflow.
type VideoSlotModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	SetID         string    `gorm:"type:uuid;not null" json:"set_id"`
	Number        int       `gorm:"not null" json:"number"`
	Status        string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	RevisionNotes string    `gorm:"type:text" json:"revision_notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (VideoSlotModel) TableName() string {
	return "video_slots"
}
