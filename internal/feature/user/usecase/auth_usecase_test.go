package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/user/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.User, error)
	UpdatePasswordFunc func(ctx context.Context, email, passwordHash string) error
	DeleteAllFunc      func(ctx context.Context) error

	created []*entity.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.created = append(m.created, user)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = uint(len(m.created))
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound // Default: no such user
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}

// mockTokenIssuer is a mock implementation of the TokenIssuer interface.
type mockTokenIssuer struct {
	SignActivationFunc   func(pending *entity.User) (string, error)
	VerifyActivationFunc func(tokenStr string) (*entity.User, error)
	SignSessionFunc      func(userID uint) (string, error)
	SignResetFunc        func(email, passwordHash string) (string, error)
	VerifyResetFunc      func(tokenStr string) (string, string, error)
}

func (m *mockTokenIssuer) SignActivation(pending *entity.User) (string, error) {
	if m.SignActivationFunc != nil {
		return m.SignActivationFunc(pending)
	}
	return "mock-activation-token", nil
}

func (m *mockTokenIssuer) VerifyActivation(tokenStr string) (*entity.User, error) {
	if m.VerifyActivationFunc != nil {
		return m.VerifyActivationFunc(tokenStr)
	}
	return nil, errors.New("invalid token")
}

func (m *mockTokenIssuer) SignSession(userID uint) (string, error) {
	if m.SignSessionFunc != nil {
		return m.SignSessionFunc(userID)
	}
	return "mock-session-token", nil
}

func (m *mockTokenIssuer) SignReset(email, passwordHash string) (string, error) {
	if m.SignResetFunc != nil {
		return m.SignResetFunc(email, passwordHash)
	}
	return "mock-reset-token", nil
}

func (m *mockTokenIssuer) VerifyReset(tokenStr string) (string, string, error) {
	if m.VerifyResetFunc != nil {
		return m.VerifyResetFunc(tokenStr)
	}
	return "", "", errors.New("invalid token")
}

// mockMailer records sent mail instead of hitting SMTP.
type mockMailer struct {
	SendFunc func(to, subject, htmlBody string) error

	sent []string // subjects, in order
}

func (m *mockMailer) Send(to, subject, htmlBody string) error {
	m.sent = append(m.sent, subject)
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, htmlBody)
	}
	return nil
}

func newTestUsecase(repo *mockUserRepository, issuer *mockTokenIssuer, mailer *mockMailer) *authUsecase {
	return NewAuthUsecase(repo, issuer, mailer, "http://localhost:3000")
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration sends activation mail, creates no user", func(t *testing.T) {
		repo := &mockUserRepository{}
		var signedPending *entity.User
		issuer := &mockTokenIssuer{
			SignActivationFunc: func(pending *entity.User) (string, error) {
				signedPending = pending
				return "activation-token", nil
			},
		}
		mailer := &mockMailer{}

		uc := newTestUsecase(repo, issuer, mailer)
		token, err := uc.Register(ctx, "Ann", "Ann@X.com", "secret1", "")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "activation-token" {
			t.Errorf("expected activation token, got %q", token)
		}
		if len(repo.created) != 0 {
			t.Error("user must not be persisted at registration time")
		}
		if len(mailer.sent) != 1 || mailer.sent[0] != "Account Activation" {
			t.Errorf("expected one activation mail, got %v", mailer.sent)
		}
		if signedPending == nil {
			t.Fatal("activation token was not signed")
		}
		if signedPending.Email != "ann@x.com" {
			t.Errorf("email not normalized: %q", signedPending.Email)
		}
		// Verify the embedded password is a bcrypt hash, never plaintext
		if signedPending.Password == "secret1" {
			t.Error("password embedded in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(signedPending.Password), []byte("secret1")); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
	})

	t.Run("password under 6 characters is rejected before anything happens", func(t *testing.T) {
		repo := &mockUserRepository{}
		mailer := &mockMailer{}

		uc := newTestUsecase(repo, &mockTokenIssuer{}, mailer)
		_, err := uc.Register(ctx, "Ann", "ann@x.com", "12345", "")

		if !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("expected ErrPasswordTooShort, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Error("no user record may be created")
		}
		if len(mailer.sent) != 0 {
			t.Error("no mail may be sent")
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})
		_, err := uc.Register(ctx, "", "ann@x.com", "secret1", "")

		if !errors.Is(err, ErrMissingFields) {
			t.Errorf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("duplicate email is rejected with a conflict", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
		}
		mailer := &mockMailer{}

		uc := newTestUsecase(repo, &mockTokenIssuer{}, mailer)
		_, err := uc.Register(ctx, "Ann", "ann@x.com", "secret1", "")

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
		if len(mailer.sent) != 0 {
			t.Error("no mail may be sent for a duplicate email")
		}
	})

	t.Run("mail failure propagates as a request error", func(t *testing.T) {
		sendErr := errors.New("smtp unreachable")
		mailer := &mockMailer{
			SendFunc: func(to, subject, htmlBody string) error { return sendErr },
		}

		uc := newTestUsecase(&mockUserRepository{}, &mockTokenIssuer{}, mailer)
		_, err := uc.Register(ctx, "Ann", "ann@x.com", "secret1", "")

		if !errors.Is(err, sendErr) {
			t.Errorf("expected mail error to propagate, got %v", err)
		}
	})
}

func TestAuthUsecase_Activate(t *testing.T) {
	ctx := context.Background()
	pending := &entity.User{Name: "Ann", Email: "ann@x.com", Password: "$2a$10$hash"}

	t.Run("successful activation persists the user and issues a session", func(t *testing.T) {
		repo := &mockUserRepository{}
		issuer := &mockTokenIssuer{
			VerifyActivationFunc: func(tokenStr string) (*entity.User, error) {
				return &entity.User{Name: pending.Name, Email: pending.Email, Password: pending.Password}, nil
			},
		}

		uc := newTestUsecase(repo, issuer, &mockMailer{})
		user, session, err := uc.Activate(ctx, "valid-token")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected one persisted user, got %d", len(repo.created))
		}
		if user.Email != "ann@x.com" {
			t.Errorf("unexpected email: %q", user.Email)
		}
		if session != "mock-session-token" {
			t.Errorf("expected session token, got %q", session)
		}
	})

	t.Run("expired or tampered token never creates a user", func(t *testing.T) {
		repo := &mockUserRepository{}
		issuer := &mockTokenIssuer{
			VerifyActivationFunc: func(tokenStr string) (*entity.User, error) {
				return nil, errors.New("token is expired")
			},
		}

		uc := newTestUsecase(repo, issuer, &mockMailer{})
		_, _, err := uc.Activate(ctx, "expired-token")

		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Error("no user record may be created")
		}
	})

	t.Run("second activation for the same email fails with a conflict", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
		}
		issuer := &mockTokenIssuer{
			VerifyActivationFunc: func(tokenStr string) (*entity.User, error) {
				return &entity.User{Name: pending.Name, Email: pending.Email}, nil
			},
		}

		uc := newTestUsecase(repo, issuer, &mockMailer{})
		_, _, err := uc.Activate(ctx, "valid-token")

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Error("no second user record may be created")
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	password := "secret1"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: string(hashedPassword),
	}

	t.Run("successful login", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email == testUser.Email {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}

		uc := newTestUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		user, token, err := uc.Login(ctx, "ann@x.com", password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != testUser.ID {
			t.Errorf("unexpected user: %+v", user)
		}
		if token != "mock-session-token" {
			t.Errorf("expected session token, got %q", token)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})
		_, _, err := uc.Login(ctx, "wrong@x.com", password)

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("incorrect password", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}

		uc := newTestUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		_, _, err := uc.Login(ctx, "ann@x.com", "wrong-password")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("banned user is rejected even with the correct password", func(t *testing.T) {
		banned := *testUser
		banned.IsBanned = true
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &banned, nil
			},
		}

		uc := newTestUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
		_, token, err := uc.Login(ctx, "ann@x.com", password)

		if !errors.Is(err, ErrUserBanned) {
			t.Errorf("expected ErrUserBanned, got %v", err)
		}
		if token != "" {
			t.Error("a banned user must never receive a session token")
		}
	})
}

func TestAuthUsecase_ForgetPassword(t *testing.T) {
	ctx := context.Background()
	testUser := &entity.User{ID: 1, Name: "Ann", Email: "ann@x.com", Password: "$2a$10$old"}

	t.Run("successful request signs a reset token and sends mail, password unchanged", func(t *testing.T) {
		var updateCalled bool
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
			UpdatePasswordFunc: func(ctx context.Context, email, passwordHash string) error {
				updateCalled = true
				return nil
			},
		}
		var signedHash string
		issuer := &mockTokenIssuer{
			SignResetFunc: func(email, passwordHash string) (string, error) {
				signedHash = passwordHash
				return "reset-token", nil
			},
		}
		mailer := &mockMailer{}

		uc := newTestUsecase(repo, issuer, mailer)
		token, err := uc.ForgetPassword(ctx, "ann@x.com", "newsecret")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "reset-token" {
			t.Errorf("expected reset token, got %q", token)
		}
		if updateCalled {
			t.Error("password must not be applied before the token is redeemed")
		}
		if len(mailer.sent) != 1 || mailer.sent[0] != "Reset Password" {
			t.Errorf("expected one reset mail, got %v", mailer.sent)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(signedHash), []byte("newsecret")); err != nil {
			t.Errorf("embedded hash does not match the new password: %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})
		_, err := uc.ForgetPassword(ctx, "ghost@x.com", "newsecret")

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("short replacement password", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})
		_, err := uc.ForgetPassword(ctx, "ann@x.com", "123")

		if !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("expected ErrPasswordTooShort, got %v", err)
		}
	})
}

func TestAuthUsecase_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("successful reset overwrites the stored hash", func(t *testing.T) {
		var gotEmail, gotHash string
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
			UpdatePasswordFunc: func(ctx context.Context, email, passwordHash string) error {
				gotEmail, gotHash = email, passwordHash
				return nil
			},
		}
		issuer := &mockTokenIssuer{
			VerifyResetFunc: func(tokenStr string) (string, string, error) {
				return "ann@x.com", "$2a$10$new", nil
			},
		}

		uc := newTestUsecase(repo, issuer, &mockMailer{})
		if err := uc.ResetPassword(ctx, "valid-token"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotEmail != "ann@x.com" || gotHash != "$2a$10$new" {
			t.Errorf("unexpected update: email=%q hash=%q", gotEmail, gotHash)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockTokenIssuer{}, &mockMailer{})
		err := uc.ResetPassword(ctx, "garbage")

		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("user deleted after token was issued", func(t *testing.T) {
		issuer := &mockTokenIssuer{
			VerifyResetFunc: func(tokenStr string) (string, string, error) {
				return "gone@x.com", "$2a$10$new", nil
			},
		}

		uc := newTestUsecase(&mockUserRepository{}, issuer, &mockMailer{})
		err := uc.ResetPassword(ctx, "valid-token")

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestAuthUsecase_SeedDemoUsers(t *testing.T) {
	ctx := context.Background()

	var deleted bool
	repo := &mockUserRepository{
		DeleteAllFunc: func(ctx context.Context) error {
			deleted = true
			return nil
		},
	}

	uc := newTestUsecase(repo, &mockTokenIssuer{}, &mockMailer{})
	users, err := uc.SeedDemoUsers(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("existing users must be wiped before seeding")
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 demo users, got %d", len(users))
	}
	if users[0].Email != "test@gmail.com" {
		t.Errorf("unexpected demo email: %q", users[0].Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("123456")); err != nil {
		t.Errorf("demo password is not hashed correctly: %v", err)
	}
}
