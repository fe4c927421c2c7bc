// Package database owns the MySQL pool lifecycle: open and migrate at
// startup, close on shutdown. The returned *gorm.DB is injected into the
// store; there is no package-level handle.
package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fintrack/config"
	"fintrack/models"
)

// Open connects to MySQL and configures the connection pool.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	logMode := gormlogger.Warn
	if cfg.Server.Mode == "debug" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
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

	return db, nil
}

// systemCategories are seeded once, when the table is empty. The first row
// is the default category new incomes fall back to.
var systemCategories = []string{
	"Salary",
	"Freelance",
	"Investments",
	"Business",
	"Gifts",
	"Other",
}

// Migrate creates/updates the schema and seeds the system categories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.IncomeCategory{},
		&models.Income{},
	); err != nil {
		return err
	}

	var catCount int64
	if err := db.Model(&models.IncomeCategory{}).Count(&catCount).Error; err != nil {
		return err
	}
	if catCount == 0 {
		cats := make([]models.IncomeCategory, 0, len(systemCategories))
		for i, name := range systemCategories {
			cats = append(cats, models.IncomeCategory{
				ID:       uint(i + 1),
				Name:     name,
				IsCustom: false,
			})
		}
		if err := db.Create(&cats).Error; err != nil {
			return err
		}
		log.Info().Int("count", len(cats)).Msg("seeded system categories")
	}

	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
