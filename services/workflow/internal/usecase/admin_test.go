package usecase

import (
	"testing"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) CreateClient(client *entity.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientRepository) GetClientByID(id string) (*entity.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients() ([]*entity.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClientStatus(id string, status entity.ClientStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockClientRepository) CreateIdeator(ideator *entity.Ideator) error {
	args := m.Called(ideator)
	return args.Error(0)
}

func (m *MockClientRepository) GetIdeatorByID(id string) (*entity.Ideator, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ideator), args.Error(1)
}

func (m *MockClientRepository) ListIdeators() ([]*entity.Ideator, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ideator), args.Error(1)
}

func (m *MockClientRepository) AssignIdeator(clientID, ideatorID string) error {
	args := m.Called(clientID, ideatorID)
	return args.Error(0)
}

func (m *MockClientRepository) UnassignIdeator(clientID, ideatorID string) error {
	args := m.Called(clientID, ideatorID)
	return args.Error(0)
}

func (m *MockClientRepository) CreateShoot(shoot *entity.Shoot) error {
	args := m.Called(shoot)
	return args.Error(0)
}

func (m *MockClientRepository) ListShoots() ([]*entity.Shoot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Shoot), args.Error(1)
}

var _ persistent.ClientRepository = (*MockClientRepository)(nil)

func TestGetIdeator_Success(t *testing.T) {
	mockRepo := new(MockClientRepository)
	uc := NewAdminUseCase(mockRepo, nil, logger.New())

	ideator := &entity.Ideator{
		ID:              "ideator-1",
		Name:            "John Doe",
		Email:           "john@creatorhub.test",
		AssignedClients: []string{"client-1", "client-2"},
	}
	mockRepo.On("GetIdeatorByID", "ideator-1").Return(ideator, nil)

	got, err := uc.GetIdeator("ideator-1")

	assert.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
	assert.Len(t, got.AssignedClients, 2)
	mockRepo.AssertExpectations(t)
}

func TestGetIdeator_NotFound(t *testing.T) {
	mockRepo := new(MockClientRepository)
	uc := NewAdminUseCase(mockRepo, nil, logger.New())

	mockRepo.On("GetIdeatorByID", "missing").
		Return(nil, apperr.PathResolution("ideator %s not found", "missing"))

	got, err := uc.GetIdeator("missing")

	assert.Nil(t, got)
	assert.True(t, apperr.IsPathResolution(err))
}

func TestCreateClient_RequiresName(t *testing.T) {
	mockRepo := new(MockClientRepository)
	uc := NewAdminUseCase(mockRepo, nil, logger.New())

	_, err := uc.CreateClient("   ", "", nil)

	assert.True(t, apperr.IsValidation(err))
	mockRepo.AssertNotCalled(t, "CreateClient", mock.Anything)
}

func TestUpdateClientStatus_RejectsUnknownStatus(t *testing.T) {
	mockRepo := new(MockClientRepository)
	uc := NewAdminUseCase(mockRepo, nil, logger.New())

	err := uc.UpdateClientStatus("client-1", entity.ClientStatus("archived"))

	assert.True(t, apperr.IsValidation(err))
	mockRepo.AssertNotCalled(t, "UpdateClientStatus", mock.Anything, mock.Anything)
}
