package user

import (
	"context"
	"fmt"
	"strings"

	"pasarku-be/internal/logger"

	"go.uber.org/zap"
)

// TokenIssuer mints the bearer token returned on login. Consumers define the
// interface; the auth package implements it.
type TokenIssuer interface {
	Issue(u User) (string, error)
}

type Service interface {
	Register(ctx context.Context, params RegisterParams) (User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id uint) (User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	tokens TokenIssuer
}

func NewService(repo Repository, tokens TokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (User, error) {
	log := logger.FromCtx(ctx)

	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	if name == "" || email == "" || params.Password == "" {
		return User{}, ErrMissingFields
	}

	role, err := ParseRole(params.Role)
	if err != nil {
		return User{}, err
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, name, email, hashed, role)
	if err != nil {
		log.Warn("failed to create user", zap.String("email", email), zap.Error(err))
		return User{}, err
	}

	log.Info("user registered",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("role", string(u.Role)),
	)

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Error("failed to look up user", zap.Error(err))
		return "", User{}, err
	}
	if u == nil || !CheckPasswordHash(password, u.PasswordHash) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*u)
	if err != nil {
		log.Error("failed to issue token", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	return token, *u, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if u == nil {
		return User{}, ErrUserNotFound
	}
	return *u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("user deleted", zap.String("user_id", fmt.Sprint(id)))
	return nil
}
