package usecase

import (
	"fmt"
	"io"
	"time"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/jwt"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/pkg/s3"
	"github.com/PritamDhobale/CreatorHub/services/auth/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately vague so a caller cannot tell a
// wrong password from an unknown email.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

type AuthUseCase interface {
	Register(email, username, fullName, password string, role entity.UserRole) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	ListByRole(role entity.UserRole) ([]*entity.User, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error)
	SetActive(userID string, active bool) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, username, fullName, password string, role entity.UserRole) (*entity.User, string, error) {
	if !entity.ValidRole(role) {
		return nil, "", apperr.Validation("invalid role: %s", role)
	}
	if len(password) < 8 {
		return nil, "", apperr.Validation("password must be at least 8 characters")
	}

	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", apperr.Validation("user with this email already exists")
	}

	_, err = uc.userRepo.GetByUsername(username)
	if err == nil {
		return nil, "", apperr.Validation("username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		FullName: fullName,
		Password: string(hashedPassword),
		Role:     role,
		IsActive: true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("account is deactivated")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := uc.userRepo.Update(user); err != nil {
		// login still succeeds when the timestamp write fails
		uc.logger.Warn("Failed to record last login for %s: %v", user.ID, err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) ListByRole(role entity.UserRole) ([]*entity.User, error) {
	if !entity.ValidRole(role) {
		return nil, apperr.Validation("invalid role: %s", role)
	}

	users, err := uc.userRepo.ListByRole(role)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error) {
	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, apperr.ExternalAdapter(err, "failed to upload avatar")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) SetActive(userID string, active bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperr.PathResolution("user %s not found", userID)
	}

	user.IsActive = active
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}
