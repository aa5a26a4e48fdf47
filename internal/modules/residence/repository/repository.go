package repository

import (
	"context"

	"anphu.vn/residencehub/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResidenceRepository interface {
	CreateApartment(ctx context.Context, apartment *entity.Apartment) error
	FindApartmentByID(ctx context.Context, id uint) (*entity.Apartment, error)
	FindApartments(ctx context.Context) ([]entity.Apartment, error)
	FindApartmentsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Apartment, error)
	CreateContract(ctx context.Context, contract *entity.Contract) error
	FindContracts(ctx context.Context) ([]entity.Contract, error)
	FindContractsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Contract, error)
}

type residenceRepository struct {
	db *gorm.DB
}

func NewResidenceRepository(db *gorm.DB) ResidenceRepository {
	return &residenceRepository{db: db}
}

func (r *residenceRepository) CreateApartment(ctx context.Context, apartment *entity.Apartment) error {
	return r.db.WithContext(ctx).Create(apartment).Error
}

func (r *residenceRepository) FindApartmentByID(ctx context.Context, id uint) (*entity.Apartment, error) {
	var apartment entity.Apartment
	if err := r.db.WithContext(ctx).First(&apartment, id).Error; err != nil {
		return nil, err
	}
	return &apartment, nil
}

func (r *residenceRepository) FindApartments(ctx context.Context) ([]entity.Apartment, error) {
	var apartments []entity.Apartment
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("unit_number ASC").
		Find(&apartments).Error; err != nil {
		return nil, err
	}
	return apartments, nil
}

func (r *residenceRepository) FindApartmentsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Apartment, error) {
	var apartments []entity.Apartment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("unit_number ASC").
		Find(&apartments).Error; err != nil {
		return nil, err
	}
	return apartments, nil
}

func (r *residenceRepository) CreateContract(ctx context.Context, contract *entity.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *residenceRepository) FindContracts(ctx context.Context) ([]entity.Contract, error) {
	var contracts []entity.Contract
	if err := r.db.WithContext(ctx).
		Preload("Apartment").
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *residenceRepository) FindContractsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Contract, error) {
	var contracts []entity.Contract
	if err := r.db.WithContext(ctx).
		Preload("Apartment").
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}
