package main

import (
	"fmt"

	"github.com/PritamDhobale/CreatorHub/pkg/config"
	"github.com/PritamDhobale/CreatorHub/pkg/database"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	authmodel "github.com/PritamDhobale/CreatorHub/services/auth/model"
	"github.com/PritamDhobale/CreatorHub/services/workflow/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []authmodel.UserModel{
		{Email: "admin@creatorhub.test", Username: "admin", FullName: "Ava Admin", Role: "admin"},
		{Email: "ideator@creatorhub.test", Username: "ideator", FullName: "Ivan Ideator", Role: "ideator"},
		{Email: "filmer@creatorhub.test", Username: "filmer", FullName: "Fiona Filmer", Role: "filmer"},
		{Email: "editor@creatorhub.test", Username: "editor", FullName: "Ed Editor", Role: "editor"},
		{Email: "revisions@creatorhub.test", Username: "revisions", FullName: "Rita Reviewer", Role: "revisions"},
		{Email: "poster@creatorhub.test", Username: "poster", FullName: "Paul Poster", Role: "poster"},
	}
	for i := range users {
		users[i].Password = string(hashed)
		users[i].IsActive = true

		var existing authmodel.UserModel
		err := db.Where("email = ?", users[i].Email).First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
		log.Info("Created user %s (%s)", users[i].Username, users[i].Role)
	}

	ideators := []model.IdeatorModel{
		{Name: "John Doe", Email: "john.doe@creatorhub.test"},
		{Name: "Jane Smith", Email: "jane.smith@creatorhub.test"},
		{Name: "Mike Johnson", Email: "mike.johnson@creatorhub.test"},
		{Name: "Sarah Wilson", Email: "sarah.wilson@creatorhub.test"},
	}
	for i := range ideators {
		var existing model.IdeatorModel
		err := db.Where("email = ?", ideators[i].Email).First(&existing).Error
		if err == nil {
			ideators[i] = existing
			continue
		}
		if err := db.Create(&ideators[i]).Error; err != nil {
			return err
		}
		log.Info("Created ideator %s", ideators[i].Name)
	}

	clients := []model.ClientModel{
		{Name: "Client A", Description: "Lifestyle brand", Status: "active"},
		{Name: "Client B", Description: "Fitness brand", Status: "active"},
	}
	for i := range clients {
		var existing model.ClientModel
		err := db.Where("name = ?", clients[i].Name).First(&existing).Error
		if err == nil {
			clients[i] = existing
			continue
		}
		if err := db.Create(&clients[i]).Error; err != nil {
			return err
		}
		log.Info("Created client %s", clients[i].Name)
	}

	// Client A gets the first two ideators assigned
	if err := db.Model(&clients[0]).Association("Ideators").Append(&ideators[0], &ideators[1]); err != nil {
		return err
	}

	var dayCount int64
	if err := db.Model(&model.DayModel{}).Where("client_id = ?", clients[0].ID).Count(&dayCount).Error; err != nil {
		return err
	}
	if dayCount > 0 {
		return nil
	}

	day := model.DayModel{
		ClientID: clients[0].ID,
		Name:     "Day 1",
		Date:     "2026-09-07",
	}
	if err := db.Create(&day).Error; err != nil {
		return err
	}

	set := model.SetModel{
		DayID:       day.ID,
		Name:        "Beach Scene",
		Type:        "beach",
		Description: "Golden hour shots by the water",
		StartTime:   "17:00",
		Location:    "North Shore",
		Props:       "towels,umbrella",
		Actors:      "John Doe",
	}
	if err := db.Create(&set).Error; err != nil {
		return err
	}

	for number := 1; number <= 3; number++ {
		slot := model.VideoSlotModel{
			SetID:  set.ID,
			Number: number,
			Status: "pending",
		}
		if err := db.Create(&slot).Error; err != nil {
			return err
		}
	}

	log.Info("Created Beach Scene set with 3 video slots for %s", clients[0].Name)
	return nil
}
