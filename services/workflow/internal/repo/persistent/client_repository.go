package persistent

import (
	"errors"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	CreateClient(client *entity.Client) error
	GetClientByID(id string) (*entity.Client, error)
	ListClients() ([]*entity.Client, error)
	UpdateClientStatus(id string, status entity.ClientStatus) error
	CreateIdeator(ideator *entity.Ideator) error
	GetIdeatorByID(id string) (*entity.Ideator, error)
	ListIdeators() ([]*entity.Ideator, error)
	AssignIdeator(clientID, ideatorID string) error
	UnassignIdeator(clientID, ideatorID string) error
	CreateShoot(shoot *entity.Shoot) error
	ListShoots() ([]*entity.Shoot, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) CreateClient(client *entity.Client) error {
	clientModel := &model.ClientModel{
		ID:          client.ID,
		Name:        client.Name,
		Description: client.Description,
		Status:      string(client.Status),
	}
	if clientModel.ID == "" {
		clientModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clientModel).Error; err != nil {
			return err
		}

		// Assignment is a join table row, so both sides of the
		// client<->ideator association stay consistent by construction.
		for _, ideatorID := range client.AssignedIdeators {
			var ideator model.IdeatorModel
			if err := tx.Where("id = ?", ideatorID).First(&ideator).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.PathResolution("ideator %s not found", ideatorID)
				}
				return err
			}
			if err := tx.Model(clientModel).Association("Ideators").Append(&ideator); err != nil {
				return err
			}
		}

		created, err := r.loadClient(tx, clientModel.ID)
		if err != nil {
			return err
		}
		*client = *created
		return nil
	})
}

func (r *clientRepository) loadClient(tx *gorm.DB, id string) (*entity.Client, error) {
	var clientModel model.ClientModel
	if err := tx.Preload("Ideators").Where("id = ?", id).First(&clientModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PathResolution("client %s not found", id)
		}
		return nil, err
	}
	return ToClientEntity(&clientModel), nil
}

func (r *clientRepository) GetClientByID(id string) (*entity.Client, error) {
	return r.loadClient(r.db, id)
}

func (r *clientRepository) ListClients() ([]*entity.Client, error) {
	var clientModels []model.ClientModel
	if err := r.db.Preload("Ideators").Order("created_at ASC").Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]*entity.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = ToClientEntity(&clientModels[i])
	}
	return clients, nil
}

func (r *clientRepository) UpdateClientStatus(id string, status entity.ClientStatus) error {
	result := r.db.Model(&model.ClientModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.PathResolution("client %s not found", id)
	}
	return nil
}

func (r *clientRepository) CreateIdeator(ideator *entity.Ideator) error {
	ideatorModel := &model.IdeatorModel{
		ID:    ideator.ID,
		Name:  ideator.Name,
		Email: ideator.Email,
	}
	if ideatorModel.ID == "" {
		ideatorModel.ID = uuid.New().String()
	}

	if err := r.db.Create(ideatorModel).Error; err != nil {
		return err
	}

	*ideator = *ToIdeatorEntity(ideatorModel)
	return nil
}

func (r *clientRepository) GetIdeatorByID(id string) (*entity.Ideator, error) {
	var ideatorModel model.IdeatorModel
	if err := r.db.Preload("Clients").Where("id = ?", id).First(&ideatorModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PathResolution("ideator %s not found", id)
		}
		return nil, err
	}
	return ToIdeatorEntity(&ideatorModel), nil
}

func (r *clientRepository) ListIdeators() ([]*entity.Ideator, error) {
	var ideatorModels []model.IdeatorModel
	if err := r.db.Preload("Clients").Order("created_at ASC").Find(&ideatorModels).Error; err != nil {
		return nil, err
	}

	ideators := make([]*entity.Ideator, len(ideatorModels))
	for i := range ideatorModels {
		ideators[i] = ToIdeatorEntity(&ideatorModels[i])
	}
	return ideators, nil
}

func (r *clientRepository) AssignIdeator(clientID, ideatorID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var clientModel model.ClientModel
		if err := tx.Where("id = ?", clientID).First(&clientModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.PathResolution("client %s not found", clientID)
			}
			return err
		}

		var ideatorModel model.IdeatorModel
		if err := tx.Where("id = ?", ideatorID).First(&ideatorModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.PathResolution("ideator %s not found", ideatorID)
			}
			return err
		}

		return tx.Model(&clientModel).Association("Ideators").Append(&ideatorModel)
	})
}

func (r *clientRepository) UnassignIdeator(clientID, ideatorID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var clientModel model.ClientModel
		if err := tx.Where("id = ?", clientID).First(&clientModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.PathResolution("client %s not found", clientID)
			}
			return err
		}

		return tx.Model(&clientModel).Association("Ideators").Delete(&model.IdeatorModel{ID: ideatorID})
	})
}

func (r *clientRepository) CreateShoot(shoot *entity.Shoot) error {
	shootModel := &model.ShootModel{
		ID:               shoot.ID,
		ClientID:         shoot.ClientID,
		Date:             shoot.Date,
		Description:      shoot.Description,
		AssignedIdeators: joinCSV(shoot.AssignedIdeators),
	}
	if shootModel.ID == "" {
		shootModel.ID = uuid.New().String()
	}

	var clientModel model.ClientModel
	if err := r.db.Where("id = ?", shoot.ClientID).First(&clientModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.PathResolution("client %s not found", shoot.ClientID)
		}
		return err
	}

	if err := r.db.Create(shootModel).Error; err != nil {
		return err
	}

	*shoot = *ToShootEntity(shootModel, clientModel.Name)
	return nil
}

func (r *clientRepository) ListShoots() ([]*entity.Shoot, error) {
	var shootModels []model.ShootModel
	if err := r.db.Order("date ASC").Find(&shootModels).Error; err != nil {
		return nil, err
	}

	names := map[string]string{}
	shoots := make([]*entity.Shoot, len(shootModels))
	for i := range shootModels {
		name, ok := names[shootModels[i].ClientID]
		if !ok {
			var clientModel model.ClientModel
			if err := r.db.Select("name").Where("id = ?", shootModels[i].ClientID).First(&clientModel).Error; err == nil {
				name = clientModel.Name
			}
			names[shootModels[i].ClientID] = name
		}
		shoots[i] = ToShootEntity(&shootModels[i], name)
	}
	return shoots, nil
}
