package http

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"jobs-api/internal/domain"
	"jobs-api/internal/repository"
	"jobs-api/internal/service"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	if _, exists := m.usersByEmail[user.Email]; exists {
		return &pgconn.PgError{Code: "23505"}
	}
	m.usersByID[user.ID] = user
	m.usersByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok || user.DeletedAt != nil {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, u := range m.usersByID {
		if u.DeletedAt == nil {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id string, patch repository.UserPatch) (domain.User, error) {
	user, err := m.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if patch.Email != nil {
		delete(m.usersByEmail, user.Email)
		user.Email = *patch.Email
		m.usersByEmail[user.Email] = id
	}
	if patch.DisplayName != nil {
		user.DisplayName = *patch.DisplayName
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	m.usersByID[id] = user
	return user, nil
}

func (m *mockUserRepo) SoftDelete(ctx context.Context, id string) (domain.User, error) {
	user, err := m.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	now := time.Now().UTC()
	user.DeletedAt = &now
	m.usersByID[id] = user
	return user, nil
}

func (m *mockUserRepo) UpdateRefreshTokenHash(ctx context.Context, id string, hash *string) error {
	user, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.RefreshTokenHash = hash
	m.usersByID[id] = user
	return nil
}

type mockJobRepo struct {
	jobsByID map[string]domain.Job
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobsByID: make(map[string]domain.Job)}
}

func (m *mockJobRepo) Create(_ context.Context, job domain.Job) error {
	m.jobsByID[job.ID] = job
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id string) (domain.Job, error) {
	job, ok := m.jobsByID[id]
	if !ok || job.DeletedAt != nil {
		return domain.Job{}, pgx.ErrNoRows
	}
	return job, nil
}

func (m *mockJobRepo) List(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	var jobs []domain.Job
	for _, j := range m.jobsByID {
		if j.DeletedAt != nil {
			continue
		}
		if filter.Title != "" && !strings.Contains(j.Title, filter.Title) {
			continue
		}
		if filter.LocationType != "" && j.LocationType != filter.LocationType {
			continue
		}
		if filter.Seniority != "" && j.Seniority != filter.Seniority {
			continue
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func (m *mockJobRepo) Update(ctx context.Context, id string, patch repository.JobPatch) (domain.Job, error) {
	job, err := m.GetByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	m.jobsByID[id] = job
	return job, nil
}

func (m *mockJobRepo) SoftDelete(ctx context.Context, id string) (domain.Job, error) {
	job, err := m.GetByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	now := time.Now().UTC()
	job.DeletedAt = &now
	m.jobsByID[id] = job
	return job, nil
}

type testEnv struct {
	router   *gin.Engine
	userRepo *mockUserRepo
	jobRepo  *mockJobRepo
	tokens   *service.TokenService
	hasher   *service.PasswordHasher
	auth     *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	userRepo := newMockUserRepo()
	jobRepo := newMockJobRepo()
	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	tokens := service.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	authSvc := service.NewAuthService(logger, userRepo, hasher, tokens)
	userSvc := service.NewUserService(logger, userRepo, hasher)
	jobSvc := service.NewJobService(logger, jobRepo)

	router := NewRouter(logger, RouterConfig{Tokens: tokens}, NewAuthHandler(logger, authSvc), NewUserHandler(logger, userSvc), NewJobHandler(logger, jobSvc))

	return &testEnv{
		router:   router,
		userRepo: userRepo,
		jobRepo:  jobRepo,
		tokens:   tokens,
		hasher:   hasher,
		auth:     authSvc,
	}
}

// seedUser registra un usuario directamente en el repo mock.
func (e *testEnv) seedUser(t *testing.T, id, email, password string) domain.User {
	t.Helper()
	hash, err := e.hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := e.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
