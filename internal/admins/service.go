package admins

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/middleware"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrAdminExists        = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("admin not found")
)

type Service struct {
	repo    Repository
	manager *auth.Manager
}

func NewService(repo Repository, manager *auth.Manager) *Service {
	return &Service{
		repo:    repo,
		manager: manager,
	}
}

// Signup creates the single admin account. The unique index on the constant
// role field backs the existence check, so a racing second signup fails at
// insert rather than producing two admins.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (Admin, string, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return Admin{}, "", err
	}
	if count > 0 {
		return Admin{}, "", ErrAdminExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return Admin{}, "", err
	}

	now := time.Now().UTC()
	admin := Admin{
		ID:           primitive.NewObjectID().Hex(),
		Name:         strings.TrimSpace(req.Name),
		Email:        NormalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Admin{}, "", ErrAdminExists
		}
		return Admin{}, "", err
	}

	token, err := s.manager.NewAccessToken(admin.ID)
	if err != nil {
		return Admin{}, "", err
	}
	return admin, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (Admin, string, error) {
	email := NormalizeEmail(req.Email)

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Admin{}, "", ErrInvalidCredentials
		}
		return Admin{}, "", err
	}
	if !admin.IsActive {
		return Admin{}, "", ErrInvalidCredentials
	}
	if err := auth.ComparePassword(admin.PasswordHash, req.Password); err != nil {
		return Admin{}, "", ErrInvalidCredentials
	}

	token, err := s.manager.NewAccessToken(admin.ID)
	if err != nil {
		return Admin{}, "", err
	}
	return admin, token, nil
}

func (s *Service) Exists(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ResolveAdmin implements middleware.AdminResolver. Inactive or missing
// accounts resolve to an error so the gate rejects their tokens.
func (s *Service) ResolveAdmin(ctx context.Context, id string) (middleware.Identity, error) {
	admin, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return middleware.Identity{}, ErrNotFound
		}
		return middleware.Identity{}, err
	}
	if !admin.IsActive {
		return middleware.Identity{}, ErrNotFound
	}
	return middleware.Identity{ID: admin.ID, Name: admin.Name, Email: admin.Email}, nil
}
