package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobs-api/internal/domain"
	"jobs-api/internal/repository"
)

// UserService coordina el CRUD de usuarios. Toda respuesta sale sanitizada:
// ni el hash de contraseña ni el de refresh token cruzan este límite.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher *PasswordHasher
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, hasher *PasswordHasher) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

type CreateUserInput struct {
	Email       string
	Password    string
	DisplayName string
}

type UpdateUserInput struct {
	Email       *string
	Password    *string
	DisplayName *string
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (domain.User, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, domain.Internal(err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(input.Email),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return domain.User{}, domain.Conflictf("user with email %s already exists", user.Email)
		}
		s.logger.Error("create user failed", zap.Error(err))
		return domain.User{}, domain.Unavailablef(err, "user creation on database failed")
	}

	return user.Sanitized(), nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, domain.Unavailablef(err, "fetching users from database failed")
	}

	sanitized := make([]domain.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NotFoundf("user with id %s not found", id)
		}
		s.logger.Error("get user failed", zap.Error(err), zap.String("user_id", id))
		return domain.User{}, domain.Unavailablef(err, "fetching user from database failed")
	}
	return user.Sanitized(), nil
}

func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (domain.User, error) {
	patch := repository.UserPatch{
		Email:       input.Email,
		DisplayName: input.DisplayName,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return domain.User{}, domain.Internal(err)
		}
		patch.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NotFoundf("user with id %s not found", id)
		}
		if repository.IsUniqueViolation(err) {
			email := ""
			if input.Email != nil {
				email = *input.Email
			}
			return domain.User{}, domain.Conflictf("user with email %s already exists", email)
		}
		s.logger.Error("update user failed", zap.Error(err), zap.String("user_id", id))
		return domain.User{}, domain.Unavailablef(err, "updating user on database failed")
	}
	return user.Sanitized(), nil
}

func (s *UserService) Remove(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NotFoundf("user with id %s not found", id)
		}
		s.logger.Error("remove user failed", zap.Error(err), zap.String("user_id", id))
		return domain.User{}, domain.Unavailablef(err, "removing user on database failed")
	}
	return user.Sanitized(), nil
}
