package config

import (
	"log"

	"newshub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg DatabaseConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Tag{},
		&models.Comment{},
		&models.Category{},
		&models.Notification{},
		&models.Subscriber{},
		&models.Contact{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}
