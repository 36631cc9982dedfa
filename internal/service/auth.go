package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pixiplay/platform/internal/auth"
	"github.com/pixiplay/platform/internal/domain"
	"github.com/pixiplay/platform/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

// registerConflictMsg is intentionally generic: the registration endpoint
// must not confirm whether an email address already has an account.
const registerConflictMsg = "registration could not be completed with the provided details"

// loginDummyHash is a cost-12 hash of no credential anyone holds. The
// unknown-email branch compares against it so login takes a bcrypt
// comparison either way and response timing does not reveal whether the
// address is registered.
var loginDummyHash = []byte("$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW")

// AuthService handles registration, login and session resolution.
type AuthService struct {
	pool       *pgxpool.Pool
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService creates a new AuthService. cost is the bcrypt cost factor;
// production configs keep it at 12 or above.
func NewAuthService(pool *pgxpool.Pool, users repository.UserRepository, tokens *auth.TokenManager, cost int) *AuthService {
	return &AuthService{pool: pool, users: users, tokens: tokens, bcryptCost: cost}
}

// RegisterInput holds the registration request fields.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// Register creates a new account and issues a session token. Emails are
// stored lowercased; the uniqueness constraint on the users table is the
// final arbiter of duplicates.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := domain.ValidateName(input.Name); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateRegistrationRole(input.Role); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if input.Role == "" {
		input.Role = domain.RoleParent
	}

	existing, err := s.users.FindByEmail(ctx, s.pool, input.Email)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict(registerConflictMsg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, domain.ErrInternal("hash password", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := s.users.Create(ctx, s.pool, user); err != nil {
		// The pre-check races with concurrent registrations; the unique
		// index catches what it misses.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrConflict(registerConflictMsg)
		}
		return nil, domain.ErrInternal("create user", err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// LoginInput holds the login request fields.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and issues a session token. An unknown email
// and a wrong password produce identical errors so callers cannot probe for
// registered addresses.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.FindByEmail(ctx, s.pool, email)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if user == nil {
		bcrypt.CompareHashAndPassword(loginDummyHash, []byte(input.Password))
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}
