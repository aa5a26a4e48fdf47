package bootstrap

import (
	"log"

	"anphu.vn/residencehub/internal/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Locker{},
		&entity.User{},
		&entity.Service{},
		&entity.Bill{},
		&entity.Payment{},
		&entity.Package{},
		&entity.ResidentFamily{},
		&entity.AccessCard{},
		&entity.Apartment{},
		&entity.Contract{},
		&entity.Feedback{},
		&entity.SurveyForm{},
		&entity.SurveyQuestion{},
		&entity.SurveyResponse{},
		&entity.Notification{},
	)
}

func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", "admin@anphu.vn").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := entity.User{
		Username:     "admin",
		Email:        "admin@anphu.vn",
		PasswordHash: string(hashedPasswordBytes),
		IsSuperuser:  true,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	log.Println("   Email: admin@anphu.vn")
	log.Println("   Password: admin123")

	return nil
}

// SeedBaseServices inserts the building's standard billable services once.
func SeedBaseServices(db *gorm.DB) error {
	defaultServices := []entity.Service{
		{Name: "management_fee", Description: "Monthly building management fee", Price: 500000},
		{Name: "parking", Description: "Monthly parking slot", Price: 1200000},
		{Name: "water", Description: "Water usage base charge", Price: 100000},
	}

	for _, svc := range defaultServices {
		var count int64
		if err := db.Model(&entity.Service{}).
			Where("name = ?", svc.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&svc).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
