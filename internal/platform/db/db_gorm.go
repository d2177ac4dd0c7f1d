// Package db opens the shared GORM connection used by all repositories.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blog_backend/internal/config"
	postentity "blog_backend/internal/feature/post/domain/entity"
	userentity "blog_backend/internal/feature/user/domain/entity"
)

// OpenDB connects to Postgres with a retry window and runs migrations.
// The returned handle is a single long-lived client shared by all requests.
func OpenDB(cfg *config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// マイグレーション（User, Post）
	if err := db.AutoMigrate(
		&userentity.User{},
		&postentity.Post{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
