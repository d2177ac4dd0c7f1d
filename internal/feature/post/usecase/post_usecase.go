// Package usecase はpostフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"blog_backend/internal/feature/post/domain/entity"
)

const (
	// minTitleLength / minBodyLength は投稿フィールドの最低文字数を定義します。
	minTitleLength = 3
	minBodyLength  = 3
)

// PostUpdates describes a partial update. Nil fields are left unchanged.
type PostUpdates struct {
	Title *string
	Body  *string
	Image *string
}

// PostRepository は投稿エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PostRepository interface {
	// FindAll は全投稿を取得します。
	FindAll(ctx context.Context) ([]entity.Post, error)

	// Create は新しい投稿をストレージに永続化します。
	Create(ctx context.Context, post *entity.Post) error

	// Update は指定されたフィールドのみを部分更新し、更新後の投稿を返します。
	// 投稿が存在しない場合、ErrPostNotFoundを返します。
	Update(ctx context.Context, id uint, updates map[string]any) (*entity.Post, error)

	// Delete はIDで投稿を削除します。
	// 投稿が存在しない場合、ErrPostNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// postUsecase は投稿ビジネスロジックを実装します。
type postUsecase struct {
	posts PostRepository
}

// NewPostUsecase はpostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts}
}

// List は全投稿を返します。ページネーションはありません。
func (u *postUsecase) List(ctx context.Context) ([]entity.Post, error) {
	return u.posts.FindAll(ctx)
}

// Create はタイトル・本文を検証して投稿を作成します。
// 投稿者は認証済みユーザーのIDです。
func (u *postUsecase) Create(ctx context.Context, title, body, image string, ownerID uint) (*entity.Post, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if len(title) < minTitleLength {
		return nil, ErrTitleTooShort
	}
	if len(body) < minBodyLength {
		return nil, ErrBodyTooShort
	}

	post := &entity.Post{
		Title:  title,
		Body:   body,
		Image:  image,
		UserID: ownerID,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update は指定されたフィールドのみを部分更新します。
// 省略されたフィールドは変更されません。
func (u *postUsecase) Update(ctx context.Context, id uint, updates PostUpdates) (*entity.Post, error) {
	fields := map[string]any{}
	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if len(title) < minTitleLength {
			return nil, ErrTitleTooShort
		}
		fields["title"] = title
	}
	if updates.Body != nil {
		body := strings.TrimSpace(*updates.Body)
		if len(body) < minBodyLength {
			return nil, ErrBodyTooShort
		}
		fields["body"] = body
	}
	if updates.Image != nil {
		fields["image"] = *updates.Image
	}

	return u.posts.Update(ctx, id, fields)
}

// Delete はIDで投稿を削除します。
func (u *postUsecase) Delete(ctx context.Context, id uint) error {
	return u.posts.Delete(ctx, id)
}
