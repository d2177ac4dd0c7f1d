package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/user/domain/entity"
)

// demoUsers はシードルートで投入されるデモアカウントです。
var demoUsers = []struct {
	name  string
	email string
}{
	{"test 1", "test@gmail.com"},
	{"test 2", "test2@gmail.com"},
	{"test 3", "test3@gmail.com"},
}

// SeedDemoUsers は全ユーザーを削除し、デモユーザーを再作成します。
// デモ・開発環境専用の破壊的な操作です。
func (u *authUsecase) SeedDemoUsers(ctx context.Context) ([]*entity.User, error) {
	if err := u.users.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear users: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	created := make([]*entity.User, 0, len(demoUsers))
	for _, d := range demoUsers {
		user := &entity.User{
			Name:     d.name,
			Email:    d.email,
			Password: string(hashed),
		}
		if err := u.users.Create(ctx, user); err != nil {
			return nil, err
		}
		created = append(created, user)
	}
	return created, nil
}
