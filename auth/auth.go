package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/juho05/wavedial/repos"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown emails, wrong passwords and
// invalid session tokens alike so callers cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenBytes = 32

// Principal is the authenticated user a session token resolves to.
type Principal struct {
	UserID   string
	Username string
	Email    string
}

// Session is the result of a successful authentication: an opaque token
// to hand to the client and the principal it is bound to.
type Session struct {
	Token   string
	Expires time.Time
	User    Principal
}

// Service registers users, verifies login attempts and manages sessions.
type Service struct {
	db              repos.DB
	sessionLifetime time.Duration
	bcryptCost      int
}

func NewService(db repos.DB, sessionLifetime time.Duration) *Service {
	return &Service{
		db:              db,
		sessionLifetime: sessionLifetime,
		bcryptCost:      bcrypt.DefaultCost,
	}
}

// Register creates a new user with a bcrypt hash of password.
// Returns repos.ErrExists if the email is already taken and
// repos.ErrInvalidParams if a field is empty.
func (s *Service) Register(ctx context.Context, username, email, password string) (*repos.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, repos.NewError("register", repos.ErrInvalidParams, errors.New("username, email and password must not be empty"))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}
	user, err := s.db.User().Create(ctx, repos.CreateUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Authenticate verifies email and password and creates a new session on success.
// Unknown emails and wrong passwords both fail with ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.db.User().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	err = bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	expires := time.Now().Add(s.sessionLifetime)
	err = s.db.Session().Create(ctx, token, user.ID, expires)
	if err != nil {
		return nil, fmt.Errorf("authenticate: create session: %w", err)
	}
	return &Session{
		Token:   token,
		Expires: expires,
		User: Principal{
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

// Logout invalidates the session with the given token.
// Unknown and already invalidated tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := s.db.Session().Delete(ctx, token)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Verify resolves a session token to its principal.
// Unknown and expired tokens fail with ErrInvalidCredentials.
func (s *Service) Verify(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrInvalidCredentials
	}
	session, err := s.db.Session().FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify session: %w", err)
	}
	return &Principal{
		UserID:   session.UserID,
		Username: session.Username,
		Email:    session.Email,
	}, nil
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
