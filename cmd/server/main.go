package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"blog_backend/internal/app/router"
	"blog_backend/internal/config"
	postadapters "blog_backend/internal/feature/post/adapters"
	posthandler "blog_backend/internal/feature/post/transport/handler"
	postusecase "blog_backend/internal/feature/post/usecase"
	useradapters "blog_backend/internal/feature/user/adapters"
	userhandler "blog_backend/internal/feature/user/transport/handler"
	userusecase "blog_backend/internal/feature/user/usecase"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/platform/mail"
	"blog_backend/internal/platform/ratelimit"
	platformredis "blog_backend/internal/platform/redis"
	"blog_backend/internal/platform/token"
	"blog_backend/internal/platform/upload"
)

const (
	// 画像サイズ上限（プロフィール画像は1MiB、投稿画像は2MiB）
	maxProfileImageSize = 1 << 20
	maxPostImageSize    = 2 << 20
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	gormDB := db.OpenDB(cfg)

	// Redis（レートリミッタ用、未設定でも起動可能）
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		log.Println("[WARN] REDIS_ADDR not set. Running without rate limiting.")
	} else if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without rate limiting.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 用途ごとのトークン署名器（秘密鍵と有効期限は共有しない）
	sessionSigner := token.NewSigner(cfg.SessionSecret, cfg.SessionTTL)
	issuer := token.NewIssuer(
		token.NewSigner(cfg.ActivationSecret, cfg.ActivationTTL),
		sessionSigner,
		token.NewSigner(cfg.ResetSecret, cfg.ResetTTL),
	)

	// Repository
	userRepo := useradapters.NewUserGorm(gormDB)
	postRepo := postadapters.NewPostGorm(gormDB)

	// Mail / Upload
	mailer := mail.NewSender(cfg)
	profileImages, err := upload.NewSaver(cfg.UploadDir, maxProfileImageSize)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}
	postImages, err := upload.NewSaver(cfg.UploadDir, maxPostImageSize)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	// Usecase
	authUC := userusecase.NewAuthUsecase(userRepo, issuer, mailer, cfg.ClientURL)
	postUC := postusecase.NewPostUsecase(postRepo)

	// Handler
	userH := userhandler.NewUserHandler(authUC, profileImages)
	postH := posthandler.NewPostHandler(postUC, postImages)

	// アクセスガードとレートリミッタ
	guard := token.AuthRequired(sessionSigner, userRepo)
	limiter := ratelimit.NewLimiter(rdb, 30, time.Minute, "auth").Middleware()

	// ルータ生成
	r := router.NewRouter(userH, postH, guard, limiter)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
