package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/user/dto"
	"anphu.vn/residencehub/internal/modules/user/repository"
	"anphu.vn/residencehub/pkg/apperror"
	commonDto "anphu.vn/residencehub/pkg/dto"
	"anphu.vn/residencehub/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const userPageSize = 10

type UserService interface {
	GetCurrentUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateCurrentUser(ctx context.Context, userID string, input dto.UpdateCurrentUserInput, avatar *commonDto.ImageFile) (*entity.User, error)
	GetAllUsers(ctx context.Context, page commonDto.PageQuery) (*dto.UserListResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type userService struct {
	repo         repository.UserRepository
	imageStorage storage.ImageStorage
}

func NewUserService(repo repository.UserRepository, imageStorage storage.ImageStorage) UserService {
	return &userService{
		repo:         repo,
		imageStorage: imageStorage,
	}
}

func (s *userService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateCurrentUser applies the allow-listed profile fields one by one. A
// generic key/value patch is never accepted; anything outside this list is
// ignored by binding.
func (s *userService) UpdateCurrentUser(ctx context.Context, userID string, input dto.UpdateCurrentUserInput, avatar *commonDto.ImageFile) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	}

	if input.Username != nil && *input.Username != "" && *input.Username != user.Username {
		sanitizedUsername := strings.ReplaceAll(*input.Username, " ", "_")
		if len(sanitizedUsername) < 3 {
			return nil, fmt.Errorf("username must be at least 3 characters: %w", apperror.ErrInvalidInput)
		}
		if len(sanitizedUsername) > 50 {
			return nil, fmt.Errorf("username must be at most 50 characters: %w", apperror.ErrInvalidInput)
		}
		if _, err := s.repo.FindByUsername(ctx, sanitizedUsername); err == nil {
			return nil, fmt.Errorf("username already taken: %w", apperror.ErrInvalidInput)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = sanitizedUsername
	}

	if input.Email != nil && *input.Email != "" && *input.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *input.Email); err == nil {
			return nil, fmt.Errorf("email already registered: %w", apperror.ErrInvalidInput)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}

	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if avatar != nil && avatar.Reader != nil && s.imageStorage != nil {
		url, err := s.imageStorage.UploadImage(ctx, avatar.Reader, "avatars", avatar.FileName)
		if err != nil {
			return nil, err
		}
		user.AvatarURL = &url
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context, page commonDto.PageQuery) (*dto.UserListResponse, error) {
	users, total, err := s.repo.FindAll(ctx, page.Offset(userPageSize), userPageSize)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		u.PasswordHash = ""
	}

	return &dto.UserListResponse{
		Data: users,
		Meta: commonDto.NewPaginationMeta(page.Page, userPageSize, total),
	}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id.String()); err != nil {
		return fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	}

	return s.repo.Delete(ctx, id)
}

// SetActive flips the activation flag of the user.
func (s *userService) SetActive(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	}

	user.Active = !user.Active
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
