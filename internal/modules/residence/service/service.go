package service

import (
	"context"
	"errors"
	"fmt"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/residence/dto"
	"anphu.vn/residencehub/internal/modules/residence/repository"
	userRepo "anphu.vn/residencehub/internal/modules/user/repository"
	"anphu.vn/residencehub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResidenceService interface {
	GetApartments(ctx context.Context, userID uuid.UUID) ([]entity.Apartment, error)
	CreateApartment(ctx context.Context, input dto.CreateApartmentInput) (*entity.Apartment, error)
	GetContracts(ctx context.Context, userID uuid.UUID) ([]entity.Contract, error)
	CreateContract(ctx context.Context, input dto.CreateContractInput) (*entity.Contract, error)
}

type residenceService struct {
	repo  repository.ResidenceRepository
	users userRepo.UserRepository
}

func NewResidenceService(repo repository.ResidenceRepository, users userRepo.UserRepository) ResidenceService {
	return &residenceService{
		repo:  repo,
		users: users,
	}
}

// GetApartments returns the caller's apartments. Building admins see every
// apartment.
func (s *residenceService) GetApartments(ctx context.Context, userID uuid.UUID) ([]entity.Apartment, error) {
	user, err := s.users.FindByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	}

	if user.IsSuperuser {
		return s.repo.FindApartments(ctx)
	}
	return s.repo.FindApartmentsByUserID(ctx, userID)
}

func (s *residenceService) CreateApartment(ctx context.Context, input dto.CreateApartmentInput) (*entity.Apartment, error) {
	apartment := &entity.Apartment{
		Floor:      input.Floor,
		UnitNumber: input.UnitNumber,
		Type:       entity.ApartmentType(input.Type),
		Active:     true,
	}

	if input.UserID != nil {
		userID, err := uuid.Parse(*input.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %w", apperror.ErrInvalidInput)
		}
		apartment.UserID = &userID
	}

	if err := s.repo.CreateApartment(ctx, apartment); err != nil {
		return nil, err
	}

	return apartment, nil
}

func (s *residenceService) GetContracts(ctx context.Context, userID uuid.UUID) ([]entity.Contract, error) {
	user, err := s.users.FindByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	}

	if user.IsSuperuser {
		return s.repo.FindContracts(ctx)
	}
	return s.repo.FindContractsByUserID(ctx, userID)
}

func (s *residenceService) CreateContract(ctx context.Context, input dto.CreateContractInput) (*entity.Contract, error) {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", apperror.ErrInvalidInput)
	}

	if _, err := s.repo.FindApartmentByID(ctx, input.ApartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("apartment not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	contract := &entity.Contract{
		Name:        input.Name,
		Body:        input.Body,
		ApartmentID: input.ApartmentID,
		UserID:      userID,
		Deposit:     input.Deposit,
		Active:      true,
	}

	if err := s.repo.CreateContract(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}
