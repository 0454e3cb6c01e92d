package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	adapterHTTP "github.com/awa-app/awa-backend/internal/adapters/handler/http"
	"github.com/awa-app/awa-backend/internal/content"
	"github.com/awa-app/awa-backend/internal/core/domain"
	"github.com/awa-app/awa-backend/internal/core/services"
	"github.com/awa-app/awa-backend/internal/core/workers"
)

type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }

type stubLikeRepo struct{}

func (stubLikeRepo) Create(ctx context.Context, like *domain.Like) error { return nil }
func (stubLikeRepo) Delete(ctx context.Context, prayerID, ownerID string) error {
	return domain.ErrLikeNotFound
}
func (stubLikeRepo) GetByPrayerAndOwner(ctx context.Context, prayerID, ownerID string) (*domain.Like, error) {
	return nil, nil
}
func (stubLikeRepo) CountByPrayer(ctx context.Context, prayerID string) (int, error) {
	return 0, nil
}

type stubLocalStore struct{ m map[string]string }

func (s *stubLocalStore) GetItem(ctx context.Context, key string) (string, error) {
	return s.m[key], nil
}
func (s *stubLocalStore) SetItem(ctx context.Context, key, value string) error {
	s.m[key] = value
	return nil
}

// newFullRouter wires the complete router over in-memory fakes, with a
// pingable throwaway database so /health reflects only the Redis wiring
// under test.
func newFullRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := stubUserRepo{}
	tokens := services.NewTokenService("health-secret", "health-issuer", time.Hour, users)
	resolver := services.NewIdentityResolver(tokens, &stubLocalStore{m: make(map[string]string)})

	streakSvc := services.NewStreakService(newMemStreakRepo(), newMemSessionRepo())
	prayerSvc := services.NewPrayerService(newMemPrayerRepo())
	worker := workers.NewAnalyticsWorker(newMemPrayerRepo(), stubLikeRepo{})
	likeSvc := services.NewLikeService(stubLikeRepo{}, newMemPrayerRepo(), worker)
	contentSvc := services.NewContentService(content.NewStaticProvider())
	userSvc := services.NewUserService(users, nil)
	authSvc := services.NewAuthService(users, streakSvc)

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:    adapterHTTP.NewAuthHandler(authSvc, tokens),
		StreakHandler:  adapterHTTP.NewStreakHandler(streakSvc),
		PrayerHandler:  adapterHTTP.NewPrayerHandler(prayerSvc),
		LikeHandler:    adapterHTTP.NewLikeHandler(likeSvc),
		ContentHandler: adapterHTTP.NewContentHandler(contentSvc),
		UserHandler:    adapterHTTP.NewUserHandler(userSvc),
		Identity:       resolver,
		DB:             db,
		Redis:          nil,
		StartTime:      time.Now(),
	})
}

func TestRouter_HealthWithoutRedis(t *testing.T) {
	router := newFullRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "an instance booted without Redis is healthy")
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
}

func TestRouter_ContentServedWithoutIdentity(t *testing.T) {
	router := newFullRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/content/formulas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Allahumma")
}
