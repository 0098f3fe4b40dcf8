package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobs-api/internal/domain"
	"jobs-api/internal/repository"
)

// AuthService orquesta sign-in, sign-out y rotación de refresh tokens. Solo
// la mitad refresh del par se persiste, y siempre como hash en la fila del
// usuario; rotar el hash invalida de inmediato cualquier token anterior.
type AuthService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{
		logger: logger,
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// SignIn verifica credenciales y emite un par de tokens nuevo. Un email
// desconocido devuelve NotFound; una contraseña incorrecta devuelve
// Unauthorized con el mensaje genérico. El refresh anterior queda inservible.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (TokenPair, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TokenPair{}, domain.NotFoundf("user with email %s not found", email)
		}
		s.logger.Error("sign in lookup failed", zap.Error(err))
		return TokenPair{}, domain.Internal(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return TokenPair{}, domain.Unauthorized()
	}

	return s.issueAndRotate(ctx, user.ID, user.DisplayName)
}

// SignOut limpia el hash del refresh token almacenado, invalidando cualquier
// sesión pendiente. Es idempotente: repetirlo deja el mismo estado final.
func (s *AuthService) SignOut(ctx context.Context, userID string) error {
	err := s.users.UpdateRefreshTokenHash(ctx, userID, nil)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("sign out failed", zap.Error(err), zap.String("user_id", userID))
		return domain.Internal(err)
	}
	return nil
}

// RefreshTokens rota la sesión: compara el token presentado contra el hash
// almacenado y, si coincide, emite y persiste un par nuevo. Sin hash
// almacenado o con token ya rotado falla con el mismo Unauthorized, sin
// revelar cuál de las dos verificaciones falló. Cada refresh token sirve
// una sola vez.
func (s *AuthService) RefreshTokens(ctx context.Context, userID, refreshToken string) (TokenPair, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TokenPair{}, domain.Unauthorized()
		}
		s.logger.Error("refresh lookup failed", zap.Error(err), zap.String("user_id", userID))
		return TokenPair{}, domain.Internal(err)
	}

	if !user.HasSession() {
		return TokenPair{}, domain.Unauthorized()
	}
	if !s.hasher.VerifyToken(refreshToken, *user.RefreshTokenHash) {
		return TokenPair{}, domain.Unauthorized()
	}

	return s.issueAndRotate(ctx, user.ID, user.DisplayName)
}

func (s *AuthService) issueAndRotate(ctx context.Context, userID, displayName string) (TokenPair, error) {
	pair, err := s.tokens.GeneratePair(userID, displayName)
	if err != nil {
		s.logger.Error("token issue failed", zap.Error(err), zap.String("user_id", userID))
		return TokenPair{}, domain.Internal(err)
	}

	hash, err := s.hasher.HashToken(pair.RefreshToken)
	if err != nil {
		return TokenPair{}, domain.Internal(err)
	}
	if err := s.users.UpdateRefreshTokenHash(ctx, userID, &hash); err != nil {
		s.logger.Error("refresh rotation failed", zap.Error(err), zap.String("user_id", userID))
		return TokenPair{}, domain.Internal(err)
	}
	return pair, nil
}
