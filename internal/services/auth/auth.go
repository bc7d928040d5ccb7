package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"dearly/internal/domain/models"
	"dearly/internal/lib/logger/sl"
	"dearly/internal/lib/throttle"
	"dearly/internal/metrics"
	"dearly/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Messages the auth collaborator reports to callers as is.
const (
	MsgUserExists         = "User already registered"
	MsgInvalidCredentials = "Invalid login credentials"
)

// Auth owns credentials: password hashing, sign-up, password sign-in and
// account removal.
type Auth struct {
	log         *slog.Logger
	usrSaver    UserSaver
	usrProvider UserProvider
	usrRemover  UserRemover
	limiter     *throttle.Limiter
}

type UserSaver interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
}

type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type UserRemover interface {
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

func New(
	log *slog.Logger,
	userSaver UserSaver,
	userProvider UserProvider,
	userRemover UserRemover,
	limiter *throttle.Limiter,
) *Auth {
	return &Auth{
		log:         log,
		usrSaver:    userSaver,
		usrProvider: userProvider,
		usrRemover:  userRemover,
		limiter:     limiter,
	}
}

func (a *Auth) SignUp(ctx context.Context, email, password, firstName, lastName string) (models.User, error) {
	const op = "auth.SignUp"

	email = strings.TrimSpace(email)

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("register user")

	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%s: %w: email and password are required", op, models.ErrValidation)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: passHash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	id, err := a.usrSaver.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exists", sl.Err(err))

			return models.User{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, MsgUserExists, err))
		}

		log.Error("failed to save user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	user.ID = id

	log.Info("user registered", slog.String("user_id", id.String()))

	return user, nil
}

// SignInWithPassword checks the credentials. Repeated failures for one email
// are throttled with models.ErrTooManyAttempts.
func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (models.User, error) {
	const op = "auth.SignInWithPassword"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to sign in user")

	if !a.limiter.Allow(email) {
		log.Warn("sign in throttled")

		return models.User{}, fmt.Errorf("%s: %w", op, models.ErrTooManyAttempts)
	}

	user, err := a.usrProvider.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))

			return models.User{}, a.rejected(op, email, err)
		}
		log.Error("failed to get user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.User{}, a.rejected(op, email, err)
	}

	a.limiter.Reset(email)

	log.Info("user signed in successfully")

	return user, nil
}

func (a *Auth) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "auth.GetUser"

	user, err := a.usrProvider.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// AdminDeleteUser removes an account regardless of who asks. It is used to
// roll back a half-finished sign-up.
func (a *Auth) AdminDeleteUser(ctx context.Context, userID uuid.UUID) error {
	const op = "auth.AdminDeleteUser"

	if err := a.usrRemover.DeleteUser(ctx, userID); err != nil {
		a.log.Error("failed to delete user",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			sl.Err(err),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *Auth) rejected(op, email string, cause error) error {
	a.limiter.Fail(email)
	metrics.SignInFailures.Inc()

	return fmt.Errorf("%s: %w", op, models.NewStoreError(op, MsgInvalidCredentials, cause))
}
