package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"type:varchar(20);default:'active'" json:"status"`
	Ideators    []IdeatorModel `gorm:"many2many:client_ideators;" json:"ideators,omitempty"`
	Days        []DayModel     `gorm:"foreignKey:ClientID" json:"days,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ClientModel) TableName() string {
	return "clients"
}

func (c *ClientModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type IdeatorModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Clients   []ClientModel  `gorm:"many2many:client_ideators;" json:"clients,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (IdeatorModel) TableName() string {
	return "ideators"
}

func (i *IdeatorModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

type ShootModel struct {
	ID               string         `gorm:"type:uuid;primary_key" json:"id"`
	ClientID         string         `gorm:"type:uuid;not null;index" json:"client_id"`
	Date             string         `gorm:"type:varchar(10);not null" json:"date"`
	Description      string         `gorm:"type:text" json:"description"`
	AssignedIdeators string         `gorm:"type:text" json:"assigned_ideators"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ShootModel) TableName() string {
	return "shoots"
}

func (s *ShootModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
