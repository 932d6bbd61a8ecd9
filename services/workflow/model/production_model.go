package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  string         `gorm:"type:uuid;not null;index" json:"client_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Date      string         `gorm:"type:varchar(10);not null" json:"date"`
	Sets      []SetModel     `gorm:"foreignKey:DayID" json:"sets,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DayModel) TableName() string {
	return "days"
}

func (d *DayModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

type SetModel struct {
	ID          string           `gorm:"type:uuid;primary_key" json:"id"`
	DayID       string           `gorm:"type:uuid;not null;index" json:"day_id"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	Type        string           `gorm:"type:varchar(20);not null" json:"type"`
	Description string           `gorm:"type:text" json:"description"`
	StartTime   string           `gorm:"type:varchar(5)" json:"start_time"`
	Location    string           `gorm:"type:varchar(255)" json:"location"`
	Props       string           `gorm:"type:text" json:"props"`
	Actors      string           `gorm:"type:text" json:"actors"`
	Videos      []VideoSlotModel `gorm:"foreignKey:SetID" json:"videos,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (SetModel) TableName() string {
	return "sets"
}

func (s *SetModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type VideoSlotModel struct {
	ID            string              `gorm:"type:uuid;primary_key" json:"id"`
	SetID         string              `gorm:"type:uuid;not null;uniqueIndex:idx_set_slot_number" json:"set_id"`
	Number        int                 `gorm:"not null;uniqueIndex:idx_set_slot_number" json:"number"`
	Status        string              `gorm:"type:varchar(20);default:'pending'" json:"status"`
	RevisionNotes string              `gorm:"type:text" json:"revision_notes"`
	Files         []UploadedFileModel `gorm:"foreignKey:SlotID" json:"files,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (VideoSlotModel) TableName() string {
	return "video_slots"
}

func (v *VideoSlotModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

const (
	FileKindRaw    = "raw"
	FileKindEdited = "edited"
)

type UploadedFileModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	SlotID      string         `gorm:"type:uuid;not null;index" json:"slot_id"`
	Kind        string         `gorm:"type:varchar(10);not null;index" json:"kind"`
	Position    int            `gorm:"default:0" json:"position"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Size        int64          `gorm:"default:0" json:"size"`
	ContentType string         `gorm:"type:varchar(100)" json:"content_type"`
	UploadedBy  string         `gorm:"type:varchar(36)" json:"uploaded_by"`
	URL         string         `gorm:"type:varchar(500)" json:"url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UploadedFileModel) TableName() string {
	return "uploaded_files"
}

func (f *UploadedFileModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

type ReviewCommentModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	SlotID    string         `gorm:"type:uuid;not null;index" json:"slot_id"`
	ParentID  string         `gorm:"type:varchar(36);index" json:"parent_id"`
	Timestamp float64        `gorm:"default:0" json:"timestamp"`
	Author    string         `gorm:"type:varchar(36);not null" json:"author"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ReviewCommentModel) TableName() string {
	return "review_comments"
}

func (c *ReviewCommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
