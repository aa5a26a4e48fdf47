package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/locker/dto"
	"anphu.vn/residencehub/internal/modules/locker/repository"
	notifService "anphu.vn/residencehub/internal/modules/notification/service"
	searchService "anphu.vn/residencehub/internal/modules/search/service"
	"anphu.vn/residencehub/pkg/apperror"
	commonDto "anphu.vn/residencehub/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const lockerPageSize = 10

type LockerService interface {
	GetLockers(ctx context.Context, page commonDto.PageQuery) (*dto.LockerListResponse, error)
	CreateLocker(ctx context.Context, input dto.CreateLockerInput) (*entity.Locker, error)
	GetLockerPackages(ctx context.Context, lockerID uint, status string) ([]entity.Package, error)
	CreatePackage(ctx context.Context, lockerID uint, input dto.CreatePackageInput) (*entity.Package, error)
	UpdatePackageStatus(ctx context.Context, lockerID, packageID uint, input dto.UpdatePackageStatusInput) (*entity.Package, error)
	DeletePackage(ctx context.Context, lockerID, packageID uint) error
	SearchPackages(ctx context.Context, query dto.PackageSearchQuery) (*dto.PackageListResponse, error)
}

type lockerService struct {
	repo         repository.LockerRepository
	notification notifService.NotificationService
	search       searchService.SearchService
}

func NewLockerService(repo repository.LockerRepository, notification notifService.NotificationService, search searchService.SearchService) LockerService {
	return &lockerService{
		repo:         repo,
		notification: notification,
		search:       search,
	}
}

func (s *lockerService) GetLockers(ctx context.Context, page commonDto.PageQuery) (*dto.LockerListResponse, error) {
	lockers, total, err := s.repo.FindLockers(ctx, page.Offset(lockerPageSize), lockerPageSize)
	if err != nil {
		return nil, err
	}

	return &dto.LockerListResponse{
		Data: lockers,
		Meta: commonDto.NewPaginationMeta(page.Page, lockerPageSize, total),
	}, nil
}

func (s *lockerService) CreateLocker(ctx context.Context, input dto.CreateLockerInput) (*entity.Locker, error) {
	locker := &entity.Locker{
		Name:   input.Name,
		Active: true,
	}

	if err := s.repo.CreateLocker(ctx, locker); err != nil {
		return nil, err
	}

	if input.UserID != nil {
		userID, err := uuid.Parse(*input.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %w", apperror.ErrInvalidInput)
		}
		if err := s.repo.AssignOwner(ctx, locker.ID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("owner user not found: %w", apperror.ErrNotFound)
			}
			return nil, err
		}
	}

	return locker, nil
}

func (s *lockerService) GetLockerPackages(ctx context.Context, lockerID uint, status string) ([]entity.Package, error) {
	if _, err := s.repo.FindLockerByID(ctx, lockerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("locker not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	// The pickup screen shows collected packages unless asked otherwise.
	if status == "" {
		status = string(entity.PackageReceived)
	}

	return s.repo.FindPackagesByLockerID(ctx, lockerID, status)
}

// CreatePackage logs a delivery into the locker. New packages always start
// out waiting; the locker's owner is notified that something arrived.
func (s *lockerService) CreatePackage(ctx context.Context, lockerID uint, input dto.CreatePackageInput) (*entity.Package, error) {
	locker, err := s.repo.FindLockerByID(ctx, lockerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("locker not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	pkg := &entity.Package{
		Name:     input.Name,
		LockerID: locker.ID,
		Status:   entity.PackageWaiting,
		Active:   true,
	}

	if err := s.repo.CreatePackage(ctx, pkg); err != nil {
		return nil, err
	}

	if s.notification != nil {
		if owner, err := s.repo.FindOwner(ctx, locker.ID); err == nil {
			message := fmt.Sprintf("Package %q is waiting in locker %s", pkg.Name, locker.Name)
			if err := s.notification.Notify(ctx, owner.ID, "package", pkg.ID, "package_arrived", message); err != nil {
				log.Printf("failed to send package notification: %v", err)
			}
		}
	}

	if s.search != nil {
		if err := s.search.IndexPackage(pkg); err != nil {
			log.Printf("failed to index package %d: %v", pkg.ID, err)
		}
	}

	return pkg, nil
}

// UpdatePackageStatus changes nothing but the status field. The package must
// exist and belong to the locker in the path.
func (s *lockerService) UpdatePackageStatus(ctx context.Context, lockerID, packageID uint, input dto.UpdatePackageStatusInput) (*entity.Package, error) {
	pkg, err := s.repo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("package not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if pkg.LockerID != lockerID {
		return nil, fmt.Errorf("package does not belong to this locker: %w", apperror.ErrInvalidInput)
	}

	status := entity.PackageStatus(input.Status)
	if !entity.ValidPackageStatus(status) {
		return nil, fmt.Errorf("status must be waiting or received: %w", apperror.ErrInvalidInput)
	}

	if err := s.repo.UpdatePackageStatus(ctx, lockerID, packageID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("package not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	pkg.Status = status

	if s.search != nil {
		if err := s.search.IndexPackage(pkg); err != nil {
			log.Printf("failed to reindex package %d: %v", pkg.ID, err)
		}
	}

	return pkg, nil
}

func (s *lockerService) DeletePackage(ctx context.Context, lockerID, packageID uint) error {
	pkg, err := s.repo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("package not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	if pkg.LockerID != lockerID {
		return fmt.Errorf("package does not belong to this locker: %w", apperror.ErrInvalidInput)
	}

	if err := s.repo.DeletePackage(ctx, lockerID, packageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("package not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	if s.search != nil {
		if err := s.search.DeletePackage(packageID); err != nil {
			log.Printf("failed to remove package %d from index: %v", packageID, err)
		}
	}

	return nil
}

func (s *lockerService) SearchPackages(ctx context.Context, query dto.PackageSearchQuery) (*dto.PackageListResponse, error) {
	page := commonDto.PageQuery{Page: query.Page}
	packages, total, err := s.repo.SearchPackages(ctx, query.Q, query.LockerID, query.Status, page.Offset(commonDto.WorkflowPageSize), commonDto.WorkflowPageSize)
	if err != nil {
		return nil, err
	}

	return &dto.PackageListResponse{
		Data: packages,
		Meta: commonDto.NewPaginationMeta(page.Page, commonDto.WorkflowPageSize, total),
	}, nil
}
