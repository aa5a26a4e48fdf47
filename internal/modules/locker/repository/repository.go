package repository

import (
	"context"

	"anphu.vn/residencehub/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LockerRepository interface {
	CreateLocker(ctx context.Context, locker *entity.Locker) error
	FindLockerByID(ctx context.Context, id uint) (*entity.Locker, error)
	FindLockers(ctx context.Context, offset, limit int) ([]entity.Locker, int64, error)
	AssignOwner(ctx context.Context, lockerID uint, userID uuid.UUID) error
	FindOwner(ctx context.Context, lockerID uint) (*entity.User, error)
	CreatePackage(ctx context.Context, pkg *entity.Package) error
	FindPackageByID(ctx context.Context, id uint) (*entity.Package, error)
	FindPackagesByLockerID(ctx context.Context, lockerID uint, status string) ([]entity.Package, error)
	UpdatePackageStatus(ctx context.Context, lockerID, packageID uint, status entity.PackageStatus) error
	DeletePackage(ctx context.Context, lockerID, packageID uint) error
	SearchPackages(ctx context.Context, q string, lockerID uint, status string, offset, limit int) ([]entity.Package, int64, error)
}

type lockerRepository struct {
	db *gorm.DB
}

func NewLockerRepository(db *gorm.DB) LockerRepository {
	return &lockerRepository{db: db}
}

func (r *lockerRepository) CreateLocker(ctx context.Context, locker *entity.Locker) error {
	return r.db.WithContext(ctx).Create(locker).Error
}

func (r *lockerRepository) FindLockerByID(ctx context.Context, id uint) (*entity.Locker, error) {
	var locker entity.Locker
	if err := r.db.WithContext(ctx).First(&locker, id).Error; err != nil {
		return nil, err
	}
	return &locker, nil
}

func (r *lockerRepository) FindLockers(ctx context.Context, offset, limit int) ([]entity.Locker, int64, error) {
	var lockers []entity.Locker
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Locker{}).
		Where("active = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&lockers).Error; err != nil {
		return nil, 0, err
	}

	return lockers, total, nil
}

func (r *lockerRepository) AssignOwner(ctx context.Context, lockerID uint, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("id = ?", userID).
		Update("locker_id", lockerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *lockerRepository) FindOwner(ctx context.Context, lockerID uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("locker_id = ?", lockerID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *lockerRepository) CreatePackage(ctx context.Context, pkg *entity.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *lockerRepository) FindPackageByID(ctx context.Context, id uint) (*entity.Package, error) {
	var pkg entity.Package
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *lockerRepository) FindPackagesByLockerID(ctx context.Context, lockerID uint, status string) ([]entity.Package, error) {
	var packages []entity.Package
	query := r.db.WithContext(ctx).
		Where("locker_id = ? AND active = ?", lockerID, true)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// UpdatePackageStatus updates the package only while it still belongs to the
// locker. The locker_id condition and the update run as one statement, so a
// concurrent reassignment cannot slip between check and write.
func (r *lockerRepository) UpdatePackageStatus(ctx context.Context, lockerID, packageID uint, status entity.PackageStatus) error {
	result := r.db.WithContext(ctx).Model(&entity.Package{}).
		Where("id = ? AND locker_id = ?", packageID, lockerID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *lockerRepository) DeletePackage(ctx context.Context, lockerID, packageID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND locker_id = ?", packageID, lockerID).
		Delete(&entity.Package{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *lockerRepository) SearchPackages(ctx context.Context, q string, lockerID uint, status string, offset, limit int) ([]entity.Package, int64, error) {
	var packages []entity.Package
	var total int64

	countQuery := r.db.WithContext(ctx).Model(&entity.Package{}).Where("active = ?", true)
	listQuery := r.db.WithContext(ctx).Where("active = ?", true)

	if q != "" {
		countQuery = countQuery.Where("name ILIKE ?", "%"+q+"%")
		listQuery = listQuery.Where("name ILIKE ?", "%"+q+"%")
	}
	if lockerID != 0 {
		countQuery = countQuery.Where("locker_id = ?", lockerID)
		listQuery = listQuery.Where("locker_id = ?", lockerID)
	}
	if status != "" {
		countQuery = countQuery.Where("status = ?", status)
		listQuery = listQuery.Where("status = ?", status)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := listQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&packages).Error; err != nil {
		return nil, 0, err
	}

	return packages, total, nil
}
