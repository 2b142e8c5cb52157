package services

import (
	"context"
	"log"
	"time"

	"repairdesk/internal/adapters/persistence/models"
	"repairdesk/internal/adapters/persistence/repositories"
	"repairdesk/internal/config"
	"repairdesk/internal/core/domain"
	"repairdesk/internal/pkg/jwt"
	"repairdesk/internal/pkg/password"

	"errors"
)

// AuthService handles admin registration, login and token issuance
type AuthService struct {
	adminRepo repositories.AdminRepository
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repositories.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Register creates a new admin and returns a freshly issued token.
// Username uniqueness is check-then-insert; the unique index on username
// backstops the race so a concurrent duplicate fails the insert.
func (s *AuthService) Register(ctx context.Context, username, plaintext string) (string, error) {
	exists, err := s.adminRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrAdminAlreadyExists
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		return "", err
	}

	admin := &models.Admin{
		Username: username,
		Password: hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return "", err
	}

	log.Printf("Admin registered: %s", admin.Username)
	return s.issueToken(admin.ID)
}

// Login authenticates an admin and returns a freshly issued token.
// Unknown username and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(plaintext, admin.Password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.issueToken(admin.ID)
}

func (s *AuthService) issueToken(adminID string) (string, error) {
	lifetime := time.Duration(s.cfg.JWT.LifetimeHours) * time.Hour
	return jwt.GenerateToken(adminID, s.cfg.JWT.Secret, lifetime)
}
