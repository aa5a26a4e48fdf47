package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/family/dto"
	"anphu.vn/residencehub/internal/modules/family/repository"
	notifService "anphu.vn/residencehub/internal/modules/notification/service"
	"anphu.vn/residencehub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyService interface {
	RegisterFamilyMember(ctx context.Context, userID uuid.UUID, input dto.RegisterFamilyInput) (*entity.ResidentFamily, error)
	GetFamilyMembers(ctx context.Context, userID uuid.UUID) ([]entity.ResidentFamily, error)
	ApproveFamilyMember(ctx context.Context, id uint) (*entity.ResidentFamily, error)
	IssueAccessCard(ctx context.Context, familyID uint) (*entity.AccessCard, error)
}

type familyService struct {
	repo         repository.FamilyRepository
	notification notifService.NotificationService
}

func NewFamilyService(repo repository.FamilyRepository, notification notifService.NotificationService) FamilyService {
	return &familyService{
		repo:         repo,
		notification: notification,
	}
}

// RegisterFamilyMember files a new family/visitor record under the resident.
// The record starts out pending until the building office approves it.
func (s *familyService) RegisterFamilyMember(ctx context.Context, userID uuid.UUID, input dto.RegisterFamilyInput) (*entity.ResidentFamily, error) {
	if _, err := s.repo.FindByNationalID(ctx, input.NationalID); err == nil {
		return nil, fmt.Errorf("national id already registered: %w", apperror.ErrInvalidInput)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	family := &entity.ResidentFamily{
		UserID:     userID,
		Name:       input.Name,
		NationalID: input.NationalID,
		Phone:      input.Phone,
		Status:     entity.FamilyPending,
		Active:     true,
	}

	if err := s.repo.Create(ctx, family); err != nil {
		return nil, err
	}

	return family, nil
}

func (s *familyService) GetFamilyMembers(ctx context.Context, userID uuid.UUID) ([]entity.ResidentFamily, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// ApproveFamilyMember moves a pending record to pass. No other transition
// exists; approved records stay approved.
func (s *familyService) ApproveFamilyMember(ctx context.Context, id uint) (*entity.ResidentFamily, error) {
	family, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resident family record not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if family.Status != entity.FamilyPending {
		return nil, fmt.Errorf("only pending records can be approved: %w", apperror.ErrInvalidInput)
	}

	family.Status = entity.FamilyPassed
	if err := s.repo.Update(ctx, family); err != nil {
		return nil, err
	}

	if s.notification != nil {
		message := fmt.Sprintf("Registration for %s has been approved", family.Name)
		if err := s.notification.Notify(ctx, family.UserID, "resident_family", family.ID, "family_approved", message); err != nil {
			log.Printf("failed to send family approval notification: %v", err)
		}
	}

	return family, nil
}

// IssueAccessCard creates the one-to-one card for an approved family record.
func (s *familyService) IssueAccessCard(ctx context.Context, familyID uint) (*entity.AccessCard, error) {
	family, err := s.repo.FindByID(ctx, familyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resident family record not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if family.Status != entity.FamilyPassed {
		return nil, fmt.Errorf("resident family record is not approved: %w", apperror.ErrInvalidInput)
	}

	if family.AccessCard != nil {
		return nil, fmt.Errorf("access card already issued: %w", apperror.ErrInvalidInput)
	}

	card := &entity.AccessCard{
		ResidentFamilyID: family.ID,
		Active:           true,
	}

	if err := s.repo.CreateAccessCard(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}
