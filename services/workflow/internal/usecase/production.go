package usecase

import (
	"strings"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/repo/persistent"
)

type ProductionUseCase interface {
	AddDay(clientID, name, date string) (*entity.Day, error)
	AddSet(dayID string, set entity.Set, videoCount int) (*entity.Set, error)
	GetClientTree(clientID string) (*entity.Client, error)
	ListClientTrees() ([]*entity.Client, error)
}

type productionUseCase struct {
	repo   persistent.ProductionRepository
	logger *logger.Logger
}

func NewProductionUseCase(repo persistent.ProductionRepository, l *logger.Logger) ProductionUseCase {
	return &productionUseCase{
		repo:   repo,
		logger: l,
	}
}

func (uc *productionUseCase) AddDay(clientID, name, date string) (*entity.Day, error) {
	if strings.TrimSpace(date) == "" {
		return nil, apperr.Validation("day date is required")
	}
	if strings.TrimSpace(name) == "" {
		name = date
	}

	day := &entity.Day{
		ClientID: clientID,
		Name:     name,
		Date:     date,
	}
	if err := uc.repo.CreateDay(day); err != nil {
		return nil, err
	}
	return day, nil
}

func (uc *productionUseCase) AddSet(dayID string, set entity.Set, videoCount int) (*entity.Set, error) {
	if set.Type != "" && !entity.ValidSetType(set.Type) {
		return nil, apperr.Validation("invalid set type: %s", set.Type)
	}
	if videoCount < entity.MinVideosPerSet || videoCount > entity.MaxVideosPerSet {
		return nil, apperr.Validation("video count must be between %d and %d",
			entity.MinVideosPerSet, entity.MaxVideosPerSet)
	}

	set.DayID = dayID
	if err := uc.repo.CreateSet(&set, videoCount); err != nil {
		return nil, err
	}
	return &set, nil
}

func (uc *productionUseCase) GetClientTree(clientID string) (*entity.Client, error) {
	return uc.repo.GetClientTree(clientID)
}

func (uc *productionUseCase) ListClientTrees() ([]*entity.Client, error) {
	return uc.repo.ListClientTrees()
}
