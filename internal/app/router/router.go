// Package router wires the HTTP routes onto a Gin engine.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	posthandler "blog_backend/internal/feature/post/transport/handler"
	userhandler "blog_backend/internal/feature/user/transport/handler"
	"blog_backend/internal/platform/http/handler"
)

// NewRouter builds the Gin engine with all application routes.
// guard is the access guard middleware for protected routes; limiter is the
// rate limiter applied to the credential-handling auth endpoints.
func NewRouter(userH *userhandler.UserHandler, postH *posthandler.PostHandler,
	guard, limiter gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// CORS追加（オリジンは制限しない）。ルート登録より先に適用する
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	// アップロードされた画像の静的配信
	r.Static("/public", "./public")

	users := r.Group("/api/users")
	{
		// 新規ユーザー登録（アクティベーションメール送信）
		users.POST("", limiter, userH.Register)
		// アクティベーショントークンの引き換え
		users.POST("/activate", userH.Activate)
		// ログイン（セッショントークン発行）
		users.POST("/login", limiter, userH.Login)
		users.POST("/logout", guard, userH.Logout)
		// パスワードリセット
		users.POST("/forget-password", limiter, userH.ForgetPassword)
		users.POST("/reset-password", userH.ResetPassword)
		// 認証必須
		users.GET("/profile", guard, userH.Profile)
	}

	blogs := r.Group("/api/blogs")
	{
		blogs.GET("", postH.List)
		// 認証必須のルート
		blogs.POST("", guard, postH.Create)
		blogs.PUT("/:id", guard, postH.Update)
		blogs.DELETE("/:id", guard, postH.Delete)
	}

	// デモデータ投入
	r.GET("/api/seed", userH.Seed)

	// 未定義ルートは404エンベロープを返す
	r.NoRoute(func(c *gin.Context) {
		api.Fail(c, api.NewError(http.StatusNotFound, "route not found, try /api/blogs to see all posts"))
	})

	return r
}
