package usecase

import (
	"strings"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/pkg/queue"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/repo/persistent"
)

type AdminUseCase interface {
	CreateClient(name, description string, assignedIdeators []string) (*entity.Client, error)
	GetClient(clientID string) (*entity.Client, error)
	ListClients() ([]*entity.Client, error)
	UpdateClientStatus(clientID string, status entity.ClientStatus) error
	CreateIdeator(name, email string) (*entity.Ideator, error)
	GetIdeator(id string) (*entity.Ideator, error)
	ListIdeators() ([]*entity.Ideator, error)
	AssignIdeator(clientID, ideatorID string) error
	UnassignIdeator(clientID, ideatorID string) error
	CreateShoot(clientID, date, description string, assignedIdeators []string) (*entity.Shoot, error)
	ListShoots() ([]*entity.Shoot, error)
}

type adminUseCase struct {
	repo        persistent.ClientRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewAdminUseCase(repo persistent.ClientRepository, queueClient *queue.Client, l *logger.Logger) AdminUseCase {
	return &adminUseCase{
		repo:        repo,
		queueClient: queueClient,
		logger:      l,
	}
}

func (uc *adminUseCase) CreateClient(name, description string, assignedIdeators []string) (*entity.Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("client name is required")
	}

	client := &entity.Client{
		Name:             name,
		Description:      description,
		Status:           entity.ClientActive,
		AssignedIdeators: assignedIdeators,
	}
	if err := uc.repo.CreateClient(client); err != nil {
		return nil, err
	}

	if uc.queueClient != nil {
		go func() {
			err := uc.queueClient.PublishNotificationTask(map[string]interface{}{
				"type":      "client_created",
				"client_id": client.ID,
				"name":      client.Name,
				"priority":  3,
			})
			if err != nil {
				uc.logger.Error("Failed to publish client_created notification: %v", err)
			}
		}()
	}

	return client, nil
}

func (uc *adminUseCase) GetClient(clientID string) (*entity.Client, error) {
	return uc.repo.GetClientByID(clientID)
}

func (uc *adminUseCase) ListClients() ([]*entity.Client, error) {
	return uc.repo.ListClients()
}

func (uc *adminUseCase) UpdateClientStatus(clientID string, status entity.ClientStatus) error {
	if status != entity.ClientActive && status != entity.ClientInactive {
		return apperr.Validation("invalid client status: %s", status)
	}
	return uc.repo.UpdateClientStatus(clientID, status)
}

func (uc *adminUseCase) CreateIdeator(name, email string) (*entity.Ideator, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("ideator name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperr.Validation("ideator email is required")
	}

	ideator := &entity.Ideator{
		Name:  name,
		Email: email,
	}
	if err := uc.repo.CreateIdeator(ideator); err != nil {
		return nil, err
	}
	return ideator, nil
}

func (uc *adminUseCase) GetIdeator(id string) (*entity.Ideator, error) {
	return uc.repo.GetIdeatorByID(id)
}

func (uc *adminUseCase) ListIdeators() ([]*entity.Ideator, error) {
	return uc.repo.ListIdeators()
}

func (uc *adminUseCase) AssignIdeator(clientID, ideatorID string) error {
	return uc.repo.AssignIdeator(clientID, ideatorID)
}

func (uc *adminUseCase) UnassignIdeator(clientID, ideatorID string) error {
	return uc.repo.UnassignIdeator(clientID, ideatorID)
}

func (uc *adminUseCase) CreateShoot(clientID, date, description string, assignedIdeators []string) (*entity.Shoot, error) {
	if strings.TrimSpace(date) == "" {
		return nil, apperr.Validation("shoot date is required")
	}

	shoot := &entity.Shoot{
		ClientID:         clientID,
		Date:             date,
		Description:      description,
		AssignedIdeators: assignedIdeators,
	}
	if err := uc.repo.CreateShoot(shoot); err != nil {
		return nil, err
	}
	return shoot, nil
}

func (uc *adminUseCase) ListShoots() ([]*entity.Shoot, error) {
	return uc.repo.ListShoots()
}
