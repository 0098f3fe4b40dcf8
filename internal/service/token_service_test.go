package service

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService_GenerateAndParse(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	pair, err := svc.GeneratePair("u1", "Alice")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatalf("access and refresh tokens must differ")
	}

	claims, err := svc.ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != "u1" || claims.Subject != "u1" || claims.DisplayName != "Alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := svc.ParseRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
}

// Los secretos por clase de token no se cruzan: un access token nunca pasa
// por donde se espera un refresh token, ni al revés.
func TestTokenService_SecretsDoNotCrossValidate(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	pair, err := svc.GeneratePair("u1", "")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := svc.ParseRefresh(pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access token must not verify under the refresh secret, got %v", err)
	}
	if _, err := svc.ParseAccess(pair.RefreshToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh token must not verify under the access secret, got %v", err)
	}
}

func TestTokenService_ExpiredAccessToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Minute, time.Hour)

	now := time.Now().UTC().Add(-2 * time.Minute)
	token, err := svc.signToken("u1", "", now, time.Minute, svc.accessSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := svc.ParseAccess(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_RejectsGarbageAndEmpty(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Minute, time.Hour)

	if _, err := svc.ParseAccess(""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for empty token, got %v", err)
	}
	if _, err := svc.ParseAccess("not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for garbage, got %v", err)
	}
}

func TestTokenService_ForeignIssuerRejected(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Minute, time.Hour)
	other := NewTokenService("access-secret", "refresh-secret", time.Minute, time.Hour)
	other.issuer = "someone-else"

	token, err := other.signToken("u1", "", time.Now().UTC(), time.Minute, other.accessSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := svc.ParseAccess(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected foreign issuer to be rejected, got %v", err)
	}
}

// Cada par es único aunque se emita en el mismo segundo: sin jti los claims
// serían deterministas y rotar devolvería el mismo refresh token.
func TestTokenService_SameSecondPairsAreDistinct(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	first, err := svc.GeneratePair("u1", "Alice")
	if err != nil {
		t.Fatalf("generate first pair: %v", err)
	}
	second, err := svc.GeneratePair("u1", "Alice")
	if err != nil {
		t.Fatalf("generate second pair: %v", err)
	}

	if first.AccessToken == second.AccessToken {
		t.Fatalf("back-to-back access tokens must differ")
	}
	if first.RefreshToken == second.RefreshToken {
		t.Fatalf("back-to-back refresh tokens must differ")
	}

	claims, err := svc.ParseRefresh(second.RefreshToken)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti on the refresh token")
	}
}

func TestTokenService_DefaultTTLs(t *testing.T) {
	svc := NewTokenService("a", "r", 0, 0)
	if svc.accessTTL != 15*time.Minute {
		t.Fatalf("expected 15m access TTL, got %v", svc.accessTTL)
	}
	if svc.refreshTTL != 7*24*time.Hour {
		t.Fatalf("expected 7d refresh TTL, got %v", svc.refreshTTL)
	}
}
