// Package usecase はuserフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/user/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、エラーを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdatePassword は指定されたメールアドレスのユーザーのパスワードハッシュを上書きします。
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	// DeleteAll は全ユーザーを削除します。シードルート専用です。
	DeleteAll(ctx context.Context) error
}

// TokenIssuer はトークンの署名と検証を抽象化します。
// 用途ごと（アクティベーション・セッション・リセット）に別の秘密鍵と有効期限が使われます。
type TokenIssuer interface {
	// SignActivation は未作成ユーザーのフィールドを埋め込んだアクティベーショントークンを署名します。
	SignActivation(pending *entity.User) (string, error)
	// VerifyActivation はアクティベーショントークンを検証し、埋め込まれたユーザーを復元します。
	VerifyActivation(tokenStr string) (*entity.User, error)
	// SignSession は既存ユーザーのセッショントークンを署名します。
	SignSession(userID uint) (string, error)
	// SignReset はメールアドレスと新パスワードハッシュを埋め込んだリセットトークンを署名します。
	SignReset(email, passwordHash string) (string, error)
	// VerifyReset はリセットトークンを検証し、メールアドレスとパスワードハッシュを返します。
	VerifyReset(tokenStr string) (string, string, error)
}

// Mailer はトランザクションメールの送信を抽象化します。
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users     UserRepository
	tokens    TokenIssuer
	mailer    Mailer
	clientURL string
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, mailer Mailer, clientURL string) *authUsecase {
	return &authUsecase{
		users:     users,
		tokens:    tokens,
		mailer:    mailer,
		clientURL: clientURL,
	}
}

// normalizeEmail はメールアドレスを小文字・トリム済みの正規形に揃えます。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Register は登録内容を検証し、未作成ユーザーのフィールドを埋め込んだ
// アクティベーショントークンを署名してメールで送信します。
// ユーザーレコードはこの時点では作成されません（Activateで作成されます）。
// メール送信失敗はリクエストエラーとして呼び出し元へ伝播します。
func (u *authUsecase) Register(ctx context.Context, name, email, password, profileImage string) (string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return "", ErrMissingFields
	}
	if err := validatePassword(password); err != nil {
		return "", err
	}

	// 既存ユーザーの確認
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	pending := &entity.User{
		Name:         name,
		Email:        email,
		Password:     string(hashed),
		ProfileImage: profileImage,
	}
	token, err := u.tokens.SignActivation(pending)
	if err != nil {
		return "", fmt.Errorf("failed to sign activation token: %w", err)
	}

	link := fmt.Sprintf("%s/activate/%s", u.clientURL, token)
	html := fmt.Sprintf(`<h2>Hello %s</h2>
<p>Please click <a href=%q target="_blank">here</a> to activate your account.</p>`, name, link)
	if err := u.mailer.Send(email, "Account Activation", html); err != nil {
		return "", err
	}

	return token, nil
}

// Activate はアクティベーショントークンを検証し、埋め込まれたフィールドから
// ユーザーを作成します。成功時は作成されたユーザーとセッショントークンを返します。
func (u *authUsecase) Activate(ctx context.Context, tokenStr string) (*entity.User, string, error) {
	pending, err := u.tokens.VerifyActivation(tokenStr)
	if err != nil {
		return nil, "", ErrInvalidToken
	}

	// 既にアクティベート済みのメールアドレスは拒否
	if _, err := u.users.FindByEmail(ctx, pending.Email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	}

	if err := u.users.Create(ctx, pending); err != nil {
		return nil, "", err
	}

	session, err := u.tokens.SignSession(pending.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return pending, session, nil
}

// Login はユーザーを認証し、成功時にユーザーとセッショントークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	// BANされたユーザーは正しいパスワードでもログイン不可
	if user.IsBanned {
		return nil, "", ErrUserBanned
	}

	token, err := u.tokens.SignSession(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// ForgetPassword は新パスワードを事前にハッシュ化し、メールアドレスとハッシュを
// 埋め込んだ短命のリセットトークンを署名してメールで送信します。
// この時点ではパスワードは変更されません（ResetPasswordで適用されます）。
func (u *authUsecase) ForgetPassword(ctx context.Context, email, newPassword string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || newPassword == "" {
		return "", ErrMissingFields
	}
	if err := validatePassword(newPassword); err != nil {
		return "", err
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := u.tokens.SignReset(email, string(hashed))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password/%s", u.clientURL, token)
	html := fmt.Sprintf(`<h2>Hello %s</h2>
<p>Please click <a href=%q target="_blank">here</a> to reset your password.</p>`, user.Name, link)
	if err := u.mailer.Send(email, "Reset Password", html); err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword はリセットトークンを検証し、埋め込まれたハッシュで
// 保存済みパスワードを上書きします。
func (u *authUsecase) ResetPassword(ctx context.Context, tokenStr string) error {
	email, passwordHash, err := u.tokens.VerifyReset(tokenStr)
	if err != nil {
		return ErrInvalidToken
	}

	if _, err := u.users.FindByEmail(ctx, email); err != nil {
		return ErrUserNotFound
	}

	return u.users.UpdatePassword(ctx, email, passwordHash)
}
