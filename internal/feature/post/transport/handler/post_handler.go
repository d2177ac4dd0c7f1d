// Package handler はpostフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/post/domain/entity"
	"blog_backend/internal/feature/post/transport/http/dto"
	"blog_backend/internal/feature/post/usecase"
	"blog_backend/internal/platform/token"
	"blog_backend/internal/platform/upload"
)

// PostUsecase は投稿操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PostUsecase interface {
	List(ctx context.Context) ([]entity.Post, error)
	Create(ctx context.Context, title, body, image string, ownerID uint) (*entity.Post, error)
	Update(ctx context.Context, id uint, updates usecase.PostUpdates) (*entity.Post, error)
	Delete(ctx context.Context, id uint) error
}

// ImageSaver はアップロードされた画像の保存を抽象化します。
type ImageSaver interface {
	Save(c *gin.Context, field string) (string, error)
}

// PostHandler は投稿操作のHTTPリクエストを処理します。
type PostHandler struct {
	posts  PostUsecase
	images ImageSaver
}

// NewPostHandler はPostHandlerの新しいインスタンスを生成します。
func NewPostHandler(posts PostUsecase, images ImageSaver) *PostHandler {
	return &PostHandler{posts: posts, images: images}
}

// classify はユースケースのセンチネルエラーをHTTPステータス付きエラーに変換します。
func classify(err error) error {
	switch {
	case errors.Is(err, usecase.ErrTitleTooShort),
		errors.Is(err, usecase.ErrBodyTooShort),
		errors.Is(err, upload.ErrFileTooLarge):
		return api.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrPostNotFound):
		return api.NewError(http.StatusNotFound, err.Error())
	}
	return err
}

// postID はURLパラメータから投稿IDを解析します。
// 不正な形式のIDは404ではなく400として区別されます。
func postID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, api.NewError(http.StatusBadRequest, "invalid post id")
	}
	return uint(id), nil
}

// List は全投稿を取得するAPIエンドポイントを処理します。
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		api.Fail(c, err)
		return
	}
	api.Success(c, http.StatusOK, "returns all blogs", posts)
}

// Create は投稿作成APIエンドポイントを処理します。
// 投稿者はアクセスガードが添付した認証済みユーザーです。
// - バリデーションエラー・画像サイズ超過時は400を返却
// - 成功時は201と作成された投稿を返却
func (h *PostHandler) Create(c *gin.Context) {
	user, ok := token.CurrentUser(c)
	if !ok {
		api.Fail(c, api.NewError(http.StatusUnauthorized, "not authorised"))
		return
	}

	var req dto.CreatePostReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("create post validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, api.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	image, err := h.images.Save(c, "postImage")
	if err != nil {
		api.Fail(c, classify(err))
		return
	}

	post, err := h.posts.Create(c.Request.Context(), req.Title, req.Body, image, user.ID)
	if err != nil {
		api.Fail(c, classify(err))
		return
	}

	slog.Info("post created", "post_id", post.ID, "user_id", user.ID)
	api.Success(c, http.StatusCreated, "post created successfully", post)
}

// Update は投稿の部分更新APIエンドポイントを処理します。
// - 不正な形式のIDは400を返却
// - 存在しない投稿は404を返却
// - 成功時は200と更新後の投稿を返却
func (h *PostHandler) Update(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		api.Fail(c, err)
		return
	}

	var req dto.UpdatePostReq
	if err := c.ShouldBind(&req); err != nil {
		api.Fail(c, api.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	updates := usecase.PostUpdates{Title: req.Title, Body: req.Body}
	image, err := h.images.Save(c, "postImage")
	if err != nil {
		api.Fail(c, classify(err))
		return
	}
	if image != "" {
		updates.Image = &image
	}

	post, err := h.posts.Update(c.Request.Context(), id, updates)
	if err != nil {
		api.Fail(c, classify(err))
		return
	}

	slog.Info("post updated", "post_id", post.ID)
	api.Success(c, http.StatusOK, "post updated successfully", post)
}

// Delete は投稿削除APIエンドポイントを処理します。
// - 不正な形式のIDは400を返却
// - 存在しない投稿は404を返却
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		api.Fail(c, err)
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		api.Fail(c, classify(err))
		return
	}

	slog.Info("post deleted", "post_id", id)
	api.Success(c, http.StatusOK, "post was deleted successfully", gin.H{"id": id})
}
