package repository

import (
	"context"

	"anphu.vn/residencehub/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyRepository interface {
	Create(ctx context.Context, family *entity.ResidentFamily) error
	FindByID(ctx context.Context, id uint) (*entity.ResidentFamily, error)
	FindByNationalID(ctx context.Context, nationalID string) (*entity.ResidentFamily, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.ResidentFamily, error)
	Update(ctx context.Context, family *entity.ResidentFamily) error
	CreateAccessCard(ctx context.Context, card *entity.AccessCard) error
}

type familyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) Create(ctx context.Context, family *entity.ResidentFamily) error {
	return r.db.WithContext(ctx).Create(family).Error
}

func (r *familyRepository) FindByID(ctx context.Context, id uint) (*entity.ResidentFamily, error) {
	var family entity.ResidentFamily
	if err := r.db.WithContext(ctx).
		Preload("AccessCard").
		First(&family, id).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.ResidentFamily, error) {
	var family entity.ResidentFamily
	if err := r.db.WithContext(ctx).Where("national_id = ?", nationalID).First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.ResidentFamily, error) {
	var families []entity.ResidentFamily
	if err := r.db.WithContext(ctx).
		Preload("AccessCard").
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *familyRepository) Update(ctx context.Context, family *entity.ResidentFamily) error {
	return r.db.WithContext(ctx).Save(family).Error
}

func (r *familyRepository) CreateAccessCard(ctx context.Context, card *entity.AccessCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}
