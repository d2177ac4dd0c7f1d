// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/user/domain/entity"
	"blog_backend/internal/feature/user/transport/http/dto"
	"blog_backend/internal/feature/user/usecase"
	"blog_backend/internal/platform/token"
	"blog_backend/internal/platform/upload"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は登録内容を検証し、アクティベーショントークンをメールで送信します。
	Register(ctx context.Context, name, email, password, profileImage string) (string, error)
	// Activate はアクティベーショントークンを引き換えてユーザーを作成します。
	Activate(ctx context.Context, tokenStr string) (*entity.User, string, error)
	// Login はユーザーを認証し、成功時にユーザーとセッショントークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// ForgetPassword はリセットトークンをメールで送信します。
	ForgetPassword(ctx context.Context, email, newPassword string) (string, error)
	// ResetPassword はリセットトークンを引き換えてパスワードを上書きします。
	ResetPassword(ctx context.Context, tokenStr string) error
	// SeedDemoUsers はデモユーザーを再作成します。
	SeedDemoUsers(ctx context.Context) ([]*entity.User, error)
}

// ImageSaver はアップロードされた画像の保存を抽象化します。
type ImageSaver interface {
	Save(c *gin.Context, field string) (string, error)
}

// UserHandler は認証操作のHTTPリクエストを処理します。
type UserHandler struct {
	auth   AuthUsecase
	images ImageSaver
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(auth AuthUsecase, images ImageSaver) *UserHandler {
	return &UserHandler{auth: auth, images: images}
}

// classify はユースケースのセンチネルエラーをHTTPステータス付きエラーに変換します。
// 変換できないエラーはそのまま返し、api.Fail側で500として処理されます。
func classify(err error) error {
	switch {
	case errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrPasswordTooShort),
		errors.Is(err, upload.ErrFileTooLarge):
		return api.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return api.NewError(http.StatusConflict, "user already exists with this email")
	case errors.Is(err, usecase.ErrUserNotFound):
		return api.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrInvalidCredentials):
		return api.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrUserBanned):
		return api.NewError(http.StatusForbidden, "you are banned, please contact the authority")
	}
	return err
}

// Register はユーザー登録APIエンドポイントを処理します。
// ユーザーレコードはまだ作成せず、アクティベーションリンクをメールで送信します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は200とアクティベーショントークンを返却
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, api.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	image, err := h.images.Save(c, "profilePicture")
	if err != nil {
		slog.Warn("register image upload failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, classify(err))
		return
	}

	activation, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, image)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.Fail(c, classify(err))
		return
	}

	slog.Info("activation mail sent", "email", req.Email, "remote_addr", c.ClientIP())
	api.Success(c, http.StatusOK,
		fmt.Sprintf("a verification link has been sent to your email: %s", req.Email),
		gin.H{"token": activation})
}

// Activate はアカウントアクティベーションAPIエンドポイントを処理します。
// - トークン検証失敗時は401を返却
// - メールアドレスが既に登録済みの場合は409を返却
// - 成功時は201と作成されたユーザー・セッショントークンを返却
func (h *UserHandler) Activate(c *gin.Context) {
	var req dto.ActivateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, api.NewError(http.StatusBadRequest, "token is missing"))
		return
	}

	user, session, err := h.auth.Activate(c.Request.Context(), req.Token)
	if err != nil {
		slog.Warn("activation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, classify(err))
		return
	}

	slog.Info("account activated", "email", user.Email)
	api.Success(c, http.StatusCreated, "account activated successfully",
		gin.H{"user": user, "token": session})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401、BANされたユーザーは403を返却
// - 成功時はユーザーとセッショントークン付きで200を返却
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, api.NewError(http.StatusBadRequest, "email or password is missing"))
		return
	}

	user, session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.Fail(c, classify(err))
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	api.Success(c, http.StatusOK, "user signed in", gin.H{"user": user, "token": session})
}

// Logout はログアウトAPIエンドポイントを処理します。
// セッショントークンはステートレスなため、サーバー側の失効処理はありません。
func (h *UserHandler) Logout(c *gin.Context) {
	api.Success(c, http.StatusOK, "user was logged out", nil)
}

// Profile はアクセスガードが添付した認証済みユーザーを返します。
func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := token.CurrentUser(c)
	if !ok {
		api.Fail(c, api.NewError(http.StatusUnauthorized, "not authorised"))
		return
	}
	api.Success(c, http.StatusOK, "user details", user)
}

// ForgetPassword はパスワードリセットトークンの発行エンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザーが存在しない場合は404を返却
// - 成功時は200とリセットトークンを返却（パスワードはまだ変更されない）
func (h *UserHandler) ForgetPassword(c *gin.Context) {
	var req dto.ForgetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, api.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	reset, err := h.auth.ForgetPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("forget-password failed", "error", err, "email", req.Email)
		api.Fail(c, classify(err))
		return
	}

	api.Success(c, http.StatusOK,
		fmt.Sprintf("a reset password link has been sent to your email: %s", req.Email),
		gin.H{"token": reset})
}

// ResetPassword はリセットトークンの引き換えエンドポイントを処理します。
// - トークン検証失敗時は401を返却
// - ユーザーが存在しない場合は404を返却
// - 成功時は201を返却
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, api.NewError(http.StatusBadRequest, "token is missing"))
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Token); err != nil {
		slog.Warn("reset-password failed", "error", err)
		api.Fail(c, classify(err))
		return
	}

	api.Success(c, http.StatusCreated, "password reset successful, ready to login", nil)
}

// Seed はデモユーザー再作成エンドポイントを処理します。デモ環境専用です。
func (h *UserHandler) Seed(c *gin.Context) {
	users, err := h.auth.SeedDemoUsers(c.Request.Context())
	if err != nil {
		slog.Error("seed failed", "error", err)
		api.Fail(c, err)
		return
	}
	api.Success(c, http.StatusCreated, "demo users created successfully", users)
}
