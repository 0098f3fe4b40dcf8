package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"jobs-api/internal/domain"
)

func newUserFixture() (*UserService, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewUserService(zap.NewNop(), repo, NewPasswordHasher(bcrypt.MinCost)), repo
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc, repo := newUserFixture()

	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "alice@test.com",
		Password: "@Alice123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.PasswordHash != "" || user.RefreshTokenHash != nil {
		t.Fatalf("returned user must be sanitized")
	}

	stored := repo.usersByID[user.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "@Alice123" {
		t.Fatalf("stored password must be hashed")
	}
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateUserInput{Email: "alice@test.com", Password: "@Alice123"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, CreateUserInput{Email: "alice@test.com", Password: "@Other123"})
	if domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("expected Conflict for duplicate email, got %v", err)
	}
}

func TestUserService_GetNotFound(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Get(context.Background(), "missing")
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "user with id missing not found") {
		t.Fatalf("message must name entity and id, got %q", err.Error())
	}
}

func TestUserService_StoreFaultMapsToUnavailable(t *testing.T) {
	svc, repo := newUserFixture()
	repo.failWith = errors.New("connection refused")

	_, err := svc.List(context.Background())
	if domain.KindOf(err) != domain.KindUnavailable {
		t.Fatalf("expected Unavailable on store fault, got %v", err)
	}
}

// Ninguna operación que devuelve usuarios puede filtrar los campos secretos,
// ni siquiera serializados a JSON.
func TestUserService_ResponsesNeverExposeSecrets(t *testing.T) {
	svc, repo := newUserFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{Email: "alice@test.com", Password: "@Alice123", DisplayName: "Alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	hash := "some-refresh-hash"
	if err := repo.UpdateRefreshTokenHash(ctx, created.ID, &hash); err != nil {
		t.Fatalf("seed refresh hash: %v", err)
	}

	newName := "Alice B"
	fromUpdate, err := svc.Update(ctx, created.ID, UpdateUserInput{DisplayName: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	fromGet, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	fromList, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	fromRemove, err := svc.Remove(ctx, created.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}

	responses := append([]domain.User{created, fromUpdate, fromGet, fromRemove}, fromList...)
	for i, u := range responses {
		if u.PasswordHash != "" || u.RefreshTokenHash != nil {
			t.Fatalf("response %d leaks secret fields: %+v", i, u)
		}
		raw, err := json.Marshal(u)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body := string(raw)
		if strings.Contains(body, "password") || strings.Contains(body, "refresh") {
			t.Fatalf("serialized response %d mentions secret fields: %s", i, body)
		}
	}
}

func TestUserService_UpdateThenRemoveNotFound(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{Email: "bob@test.com", Password: "@Bob12345"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Remove(ctx, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Tras el soft delete la fila deja de ser visible para el CRUD.
	if _, err := svc.Get(ctx, created.ID); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected NotFound after removal, got %v", err)
	}
	name := "Bob"
	if _, err := svc.Update(ctx, created.ID, UpdateUserInput{DisplayName: &name}); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected NotFound updating a removed user, got %v", err)
	}
	if _, err := svc.Remove(ctx, created.ID); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected NotFound removing twice, got %v", err)
	}
}
