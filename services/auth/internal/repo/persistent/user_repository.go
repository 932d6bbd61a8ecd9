package persistent

import (
	"github.com/PritamDhobale/CreatorHub/services/auth/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/auth/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	ListByRole(role entity.UserRole) ([]*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	return r.getBy("email = ?", email)
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	return r.getBy("id = ?", id)
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	return r.getBy("username = ?", username)
}

func (r *userRepository) getBy(query string, arg interface{}) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where(query, arg).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	return r.db.Save(userModel).Error
}

func (r *userRepository) ListByRole(role entity.UserRole) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Where("role = ?", string(role)).Order("username ASC").Find(&userModels).Error; err != nil {
		return nil, err
	}
	return ToUserEntities(userModels), nil
}
