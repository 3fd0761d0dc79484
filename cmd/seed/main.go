package main

import (
	"fmt"

	"mld-backend/internal/entity"
	"mld-backend/internal/model"
	"mld-backend/pkg/config"
	"mld-backend/pkg/database"
	"mld-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	if err := seedAdmin(db, log); err != nil {
		return err
	}
	return seedProducts(db, log)
}

func seedAdmin(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&model.UserModel{}).Where("role = ?", string(entity.RoleAdmin)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Admin user already exists, skipping")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &model.UserModel{
		Username:  "admin",
		Email:     "admin@mld.local",
		Password:  string(hashedPassword),
		FirstName: "Site",
		LastName:  "Admin",
		Role:      string(entity.RoleAdmin),
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("Created admin user: %s", admin.Username)
	return nil
}

func seedProducts(db *gorm.DB, log *logger.Logger) error {
	products := []model.ProductModel{
		{
			Kind:        string(entity.KindCCTV),
			Title:       "Dome Camera 4MP",
			Description: "Indoor dome camera with night vision",
			Price:       89.90,
			TypeDetail:  "camera",
			Features:    []string{"4MP", "IR night vision", "PoE"},
			Specifications: map[string]string{
				"resolution": "2560x1440",
				"lens":       "2.8mm",
			},
			IsActive: true,
		},
		{
			Kind:        string(entity.KindCCTV),
			Title:       "8-Channel NVR",
			Description: "Network video recorder for up to 8 cameras",
			Price:       199.00,
			TypeDetail:  "nvr",
			Features:    []string{"8 channels", "2TB storage"},
			IsActive:    true,
		},
		{
			Kind:        string(entity.KindNanoBeam),
			Title:       "NanoBeam 5AC Gen2",
			Description: "5 GHz airMAX ac CPE for point-to-point links",
			Price:       129.00,
			TypeDetail:  "nanobeam",
			Features:    []string{"450+ Mbps", "19 dBi antenna"},
			IsActive:    true,
		},
		{
			Kind:        string(entity.KindInternet),
			Title:       "Home WiFi 50",
			Description: "50 Mbps wireless internet package",
			Price:       25.00,
			TypeDetail:  "wifi",
			Features:    []string{"50 Mbps down", "unlimited data"},
			IsActive:    true,
		},
		{
			Kind:        string(entity.KindInternet),
			Title:       "VDSL 100",
			Description: "100 Mbps VDSL package for home offices",
			Price:       40.00,
			TypeDetail:  "vdsl",
			Features:    []string{"100 Mbps down", "10 Mbps up"},
			IsActive:    true,
		},
	}

	for i := range products {
		product := &products[i]

		var existing model.ProductModel
		result := db.Where("kind = ? AND title = ?", product.Kind, product.Title).First(&existing)
		if result.Error == nil {
			log.Info("Product %s already exists, skipping", product.Title)
			continue
		}

		if err := db.Create(product).Error; err != nil {
			log.Error("Failed to create product %s: %v", product.Title, err)
			continue
		}
		log.Info("Created %s product: %s", product.Kind, product.Title)
	}

	return nil
}
