// Package adapters はpostフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/post/domain/entity"
	"blog_backend/internal/feature/post/usecase"
)

// postGorm はPostRepositoryインターフェースのGORM実装です。
type postGorm struct {
	db *gorm.DB
}

// postGormがPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostGorm は指定されたgorm.DB接続でpostGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// FindAll は全投稿を作成日時の降順で取得します。
func (r *postGorm) FindAll(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create は投稿をデータベースに追加します。
func (r *postGorm) Create(ctx context.Context, p *entity.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update は指定されたフィールドのみを部分更新し、更新後の投稿を返します。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postGorm) Update(ctx context.Context, id uint, updates map[string]any) (*entity.Post, error) {
	var post entity.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&post).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &post, nil
}

// Delete はIDで投稿を削除します。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}
