package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func BootDB(cfg *AppConfig) (*gorm.DB, error) {
	// Setup logger level (debug mode vs production)
	var gormLogger logger.Interface
	if cfg.IsDevelopment() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedAdmin(context.Background(), db, cfg.Admin); err != nil {
		return nil, err
	}

	log.Info().Msg("Connected to " + utils.ColorText("Database", utils.Green) + " successfully")
	return db, nil
}

// Migrate creates or updates every table. The brief projections share
// tables with the full models, so all of them must go through one call.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("auto-migrate database schemas: %w", err)
	}
	return nil
}

// SeedAdmin inserts the first admin account when none exists yet.
func SeedAdmin(ctx context.Context, db *gorm.DB, seed AdminSeed) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if seed.Email == "" || seed.Password == "" {
		log.Warn().Msg("Skipping admin seeding, missing ADMIN_EMAIL or ADMIN_PASSWORD in env")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		Name:        seed.Name,
		Email:       strings.ToLower(seed.Email),
		PhoneNumber: seed.Phone,
		Password:    string(hashed),
		Role:        domain.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("seed admin: email %s already belongs to a non-admin user", seed.Email)
		}
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("Seeded admin user")
	return nil
}
