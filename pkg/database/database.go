package database

import (
	"fmt"

	"mld-backend/internal/model"
	"mld-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Schema is owned by cmd/migrate; automigrate keeps dev databases in sync.
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.NewsModel{},
		&model.CommentModel{},
		&model.ReplyModel{},
		&model.NewsLikeModel{},
		&model.ProductModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
