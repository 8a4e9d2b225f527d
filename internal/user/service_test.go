package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"methakadai-be/internal/auth"
	"methakadai-be/internal/otp"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u User) (User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdateByUsername(ctx context.Context, username string, params UpdateProfileParams) (User, error) {
	args := m.Called(ctx, username, params)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

type sentMail struct {
	to      string
	subject string
}

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject})
	return f.err
}

func newTestService(t *testing.T, repo Repository, mail MailSender) (Service, *otp.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	store := otp.NewStore(otp.DefaultTTL)
	return NewService(repo, store, mail), store
}

func TestSendSignupOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := &fakeMailer{}
		svc, store := newTestService(t, repo, mailer)

		repo.On("FindByEmail", mock.Anything, "new@example.com").Return(User{}, ErrUserNotFound)

		err := svc.SendSignupOTP(context.Background(), "new@example.com")
		require.NoError(t, err)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "new@example.com", mailer.sent[0].to)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("EmailAlreadyRegistered", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := &fakeMailer{}
		svc, _ := newTestService(t, repo, mailer)

		repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(User{Email: "taken@example.com"}, nil)

		err := svc.SendSignupOTP(context.Background(), "taken@example.com")
		assert.ErrorIs(t, err, ErrEmailExists)
		assert.Empty(t, mailer.sent)
	})

	t.Run("MailFailureIsNotFatal", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := &fakeMailer{err: errors.New("relay down")}
		svc, store := newTestService(t, repo, mailer)

		repo.On("FindByEmail", mock.Anything, "new@example.com").Return(User{}, ErrUserNotFound)

		err := svc.SendSignupOTP(context.Background(), "new@example.com")
		require.NoError(t, err)
		// The code is still issued so a resend reuses the store.
		assert.Equal(t, 1, store.Len())
	})
}

func TestSendResetOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := &fakeMailer{}
		svc, _ := newTestService(t, repo, mailer)

		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(User{Email: "user@example.com"}, nil)

		err := svc.SendResetOTP(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.Len(t, mailer.sent, 1)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := &fakeMailer{}
		svc, _ := newTestService(t, repo, mailer)

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(User{}, ErrUserNotFound)

		err := svc.SendResetOTP(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Empty(t, mailer.sent)
	})
}

func TestSignup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc, store := newTestService(t, repo, &fakeMailer{})
		code := store.Issue("new@example.com")

		repo.On("Create", mock.Anything, mock.MatchedBy(func(u User) bool {
			ok := u.Username == "priya" && u.Email == "new@example.com" && u.Role == RoleUser
			return ok && auth.CheckPasswordHash("secret123", u.Password)
		})).Return(User{ID: "u1", Username: "priya", Email: "new@example.com", Role: RoleUser}, nil)

		token, u, err := svc.Signup(context.Background(), "priya", "new@example.com", "secret123", code)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "priya", u.Username)
	})

	t.Run("WrongCode", func(t *testing.T) {
		repo := new(MockRepository)
		svc, store := newTestService(t, repo, &fakeMailer{})
		store.Issue("new@example.com")

		_, _, err := svc.Signup(context.Background(), "priya", "new@example.com", "secret123", "000000")
		assert.ErrorIs(t, err, ErrInvalidOTP)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("CodeIsSingleUse", func(t *testing.T) {
		repo := new(MockRepository)
		svc, store := newTestService(t, repo, &fakeMailer{})
		code := store.Issue("new@example.com")

		repo.On("Create", mock.Anything, mock.Anything).Return(User{ID: "u1", Role: RoleUser}, nil)

		_, _, err := svc.Signup(context.Background(), "priya", "new@example.com", "secret123", code)
		require.NoError(t, err)

		_, _, err = svc.Signup(context.Background(), "priya2", "new@example.com", "secret123", code)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("MissingFields", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		_, _, err := svc.Signup(context.Background(), "", "new@example.com", "secret123", "123456")
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		repo.On("FindByEmail", mock.Anything, "user@example.com").
			Return(User{ID: "u1", Username: "priya", Email: "user@example.com", Password: hashed, Role: RoleUser}, nil)

		token, u, err := svc.Login(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		repo.On("FindByEmail", mock.Anything, "user@example.com").
			Return(User{Password: hashed}, nil)

		_, _, err := svc.Login(context.Background(), "user@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(User{}, ErrUserNotFound)

		_, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc, store := newTestService(t, repo, &fakeMailer{})
		code := store.Issue("user@example.com")

		repo.On("UpdatePasswordByEmail", mock.Anything, "user@example.com", mock.MatchedBy(func(hash string) bool {
			return auth.CheckPasswordHash("newpass456", hash)
		})).Return(nil)

		err := svc.ResetPassword(context.Background(), "user@example.com", "newpass456", code)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("WrongCode", func(t *testing.T) {
		repo := new(MockRepository)
		svc, store := newTestService(t, repo, &fakeMailer{})
		store.Issue("user@example.com")

		err := svc.ResetPassword(context.Background(), "user@example.com", "newpass456", "000000")
		assert.ErrorIs(t, err, ErrInvalidOTP)
		repo.AssertNotCalled(t, "UpdatePasswordByEmail", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		err := svc.ResetPassword(context.Background(), "user@example.com", "", "123456")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("SeedsWhenMissing", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		repo.On("FindByUsername", mock.Anything, AdminUsername).Return(User{}, ErrUserNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u User) bool {
			return u.Username == AdminUsername && u.Role == RoleAdmin &&
				auth.CheckPasswordHash("supersecret", u.Password)
		})).Return(User{ID: "a1"}, nil)

		err := svc.EnsureAdmin(context.Background(), "supersecret")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("SkipsWhenPresent", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		repo.On("FindByUsername", mock.Anything, AdminUsername).Return(User{ID: "a1"}, nil)

		err := svc.EnsureAdmin(context.Background(), "")
		require.NoError(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DefaultPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		repo.On("FindByUsername", mock.Anything, AdminUsername).Return(User{}, ErrUserNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u User) bool {
			return auth.CheckPasswordHash("admin123", u.Password)
		})).Return(User{ID: "a1"}, nil)

		err := svc.EnsureAdmin(context.Background(), "")
		require.NoError(t, err)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("RejectsEmptyUsername", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		empty := "  "
		_, err := svc.UpdateProfile(context.Background(), "priya", UpdateProfileParams{Username: &empty})
		assert.ErrorIs(t, err, ErrEmptyUsername)
		repo.AssertNotCalled(t, "UpdateByUsername", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DelegatesToRepository", func(t *testing.T) {
		repo := new(MockRepository)
		svc, _ := newTestService(t, repo, &fakeMailer{})

		phone := "9999999999"
		repo.On("UpdateByUsername", mock.Anything, "priya", UpdateProfileParams{Phone: &phone}).
			Return(User{Username: "priya", Phone: phone}, nil)

		u, err := svc.UpdateProfile(context.Background(), "priya", UpdateProfileParams{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, phone, u.Phone)
	})
}
