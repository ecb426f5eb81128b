package handler

import (
	"Folio/config"
	"Folio/dao"
	"Folio/middleware"
	"Folio/models"
	"Folio/pkg/jwt"
	"Folio/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	db     *gorm.DB
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	conf, err := config.Parse([]byte("jwt:\n  secret: handler-test\n"))
	require.NoError(t, err)
	manager := jwt.ProvideManager(conf)

	users := dao.NewUserDAO(db)
	books := dao.NewBookDAO(db)
	reviews := dao.NewReviewDAO(db)
	likes := dao.NewLikeDAO(db)
	favorites := dao.NewFavoriteDAO(db)
	comments := dao.NewCommentDAO(db)
	logs := dao.NewSystemLogDAO(db)
	counter := &service.CounterService{CounterDAO: dao.NewCounterDAO(db)}
	authenticator := middleware.NewAuthenticator(manager, users)
	reviewService := &service.ReviewService{
		BookDAO: books, ReviewDAO: reviews, UserDAO: users, LikeDAO: likes,
		FavoriteDAO: favorites, LogDAO: logs, Counter: counter,
	}

	r := gin.New()
	api := r.Group("/api")
	(&Auth{Authenticator: authenticator, AuthService: &service.AuthService{UserDAO: users, LogDAO: logs, Issuer: manager}}).RegisterRouter(api)
	(&Book{
		Authenticator: authenticator,
		BookService:   &service.BookService{BookDAO: books, TagDAO: dao.NewTagDAO(db), ReviewDAO: reviews, LogDAO: logs, Counter: counter},
		TagService:    &service.TagService{TagDAO: dao.NewTagDAO(db)},
	}).RegisterRouter(api)
	(&Review{
		Authenticator: authenticator,
		ReviewService: reviewService,
		ViewService:   &service.ViewService{Config: conf, ReviewDAO: reviews, LogDAO: logs},
	}).RegisterRouter(api)
	(&Like{Authenticator: authenticator, LikeService: &service.LikeService{ReviewDAO: reviews, LikeDAO: likes, Counter: counter}}).RegisterRouter(api)
	(&Comment{
		Authenticator:  authenticator,
		CommentService: &service.CommentService{ReviewDAO: reviews, CommentDAO: comments, UserDAO: users, LogDAO: logs, Counter: counter},
	}).RegisterRouter(api)
	(&Admin{Authenticator: authenticator, ReviewService: reviewService, AdminService: &service.AdminService{UserDAO: users, LogDAO: logs}}).RegisterRouter(api)
	(&Health{DB: db}).RegisterRouter(r)

	return &testServer{db: db, engine: r}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, gjson.Result) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w.Code, gjson.Parse(w.Body.String())
}

// register 注册并返回 token 和用户 id
func (s *testServer) register(t *testing.T, username string) (string, uint64) {
	t.Helper()
	code, body := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    username + "@Example.com",
		"username": username,
		"password": "passw0rd!",
	})
	require.Equal(t, http.StatusCreated, code, body.Raw)
	return body.Get("data.token").String(), body.Get("data.user.id").Uint()
}

func (s *testServer) promote(t *testing.T, userID uint64) {
	t.Helper()
	require.NoError(t, s.db.Model(&models.User{}).Where("id = ?", userID).Update("role", models.RoleAdmin).Error)
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)
	token, id := s.register(t, "alice")
	assert.NotEmpty(t, token)

	code, body := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "ALICE@example.com", "username": "alice2", "password": "passw0rd!",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "USER_EXISTS", body.Get("code").String())

	code, body = s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "bob@example.com", "username": "bob", "password": "password",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", body.Get("code").String())

	code, body = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"identifier": "Alice@Example.COM", "password": "passw0rd!",
	})
	require.Equal(t, http.StatusOK, code, body.Raw)
	assert.Equal(t, id, body.Get("data.user.id").Uint())

	code, body = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"identifier": "alice", "password": "wrong-pass1",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Get("code").String())

	code, body = s.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", body.Get("data.username").String())
	assert.Equal(t, "alice@example.com", body.Get("data.email").String())
	assert.True(t, body.Get("data.privacy.stats").Bool())
	assert.False(t, body.Get("data.privacy.history").Bool())

	code, body = s.do(t, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "NOT_AUTHENTICATED", body.Get("code").String())

	code, body = s.do(t, http.MethodGet, "/api/auth/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_TOKEN", body.Get("code").String())
}

func TestReviewAndLikeFlow(t *testing.T) {
	s := newTestServer(t)
	alice, _ := s.register(t, "alice")
	bob, _ := s.register(t, "bob")

	code, body := s.do(t, http.MethodPost, "/api/books", alice, gin.H{
		"title": "Dune", "author": "Frank Herbert", "tags": []string{"SciFi"},
	})
	require.Equal(t, http.StatusCreated, code, body.Raw)
	bookID := body.Get("data.id").Uint()
	assert.Equal(t, "scifi", body.Get("data.tags.0.name").String())

	code, body = s.do(t, http.MethodPost, "/api/reviews", alice, gin.H{
		"book_id": bookID, "title": "Spice", "content": "Must read.", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, code, body.Raw)
	reviewID := body.Get("data.id").Uint()

	code, body = s.do(t, http.MethodPost, "/api/reviews", alice, gin.H{
		"book_id": bookID, "title": "Again", "content": "Again.", "rating": 4,
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "REVIEW_EXISTS", body.Get("code").String())

	likePath := fmt.Sprintf("/api/likes/reviews/%d", reviewID)
	code, body = s.do(t, http.MethodPost, likePath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = s.do(t, http.MethodPost, likePath, alice, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "SELF_LIKE_FORBIDDEN", body.Get("code").String())

	code, body = s.do(t, http.MethodPost, likePath, bob, nil)
	require.Equal(t, http.StatusOK, code, body.Raw)
	assert.EqualValues(t, 1, body.Get("data.likes_count").Int())
	assert.True(t, body.Get("data.is_liked").Bool())

	// optional 鉴权下无效 token 按匿名处理
	code, body = s.do(t, http.MethodGet, likePath, "garbage", nil)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, body.Get("data.is_liked").Bool())

	code, body = s.do(t, http.MethodPost, "/api/likes/reviews/batch", bob, gin.H{
		"review_ids": []uint64{reviewID, 999},
	})
	require.Equal(t, http.StatusOK, code, body.Raw)
	assert.True(t, body.Get(fmt.Sprintf("data.%d.is_liked", reviewID)).Bool())
	assert.EqualValues(t, 0, body.Get("data.999.likes_count").Int())

	code, body = s.do(t, http.MethodGet, fmt.Sprintf("/api/reviews/%d", reviewID), bob, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Get("data.is_liked").Bool())
	assert.Equal(t, "alice", body.Get("data.author.username").String())

	code, body = s.do(t, http.MethodPost, fmt.Sprintf("/api/reviews/%d/view", reviewID), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Get("data.counted").Bool())

	code, body = s.do(t, http.MethodGet, fmt.Sprintf("/api/books/%d", bookID), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body.Get("data.total_reviews").Int())
	assert.InDelta(t, 5.0, body.Get("data.average_rating").Float(), 0.001)
}

func TestCommentHasReplies(t *testing.T) {
	s := newTestServer(t)
	alice, _ := s.register(t, "alice")
	bob, _ := s.register(t, "bob")

	_, body := s.do(t, http.MethodPost, "/api/books", alice, gin.H{"title": "Emma", "author": "Jane Austen"})
	bookID := body.Get("data.id").Uint()
	_, body = s.do(t, http.MethodPost, "/api/reviews", alice, gin.H{
		"book_id": bookID, "title": "Witty", "content": "Lovely.", "rating": 4,
	})
	reviewID := body.Get("data.id").Uint()

	code, body := s.do(t, http.MethodPost, fmt.Sprintf("/api/comments/reviews/%d", reviewID), bob, gin.H{"content": "Agree"})
	require.Equal(t, http.StatusCreated, code, body.Raw)
	commentID := body.Get("data.id").Uint()

	code, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/comments/%d/reply", commentID), alice, gin.H{"content": "Thanks"})
	require.Equal(t, http.StatusCreated, code)

	code, body = s.do(t, http.MethodDelete, fmt.Sprintf("/api/comments/%d", commentID), bob, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "HAS_REPLIES", body.Get("code").String())
	assert.EqualValues(t, 1, body.Get("data.replies_count").Int())

	code, body = s.do(t, http.MethodGet, fmt.Sprintf("/api/comments/reviews/%d", reviewID), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body.Get("data.pagination.total").Int())
	assert.Len(t, body.Get("data.items.0.replies").Array(), 1)
}

func TestAdminAndBannedAccount(t *testing.T) {
	s := newTestServer(t)
	adminToken, adminID := s.register(t, "admin")
	s.promote(t, adminID)
	alice, aliceID := s.register(t, "alice")

	_, body := s.do(t, http.MethodPost, "/api/books", alice, gin.H{"title": "Dune", "author": "Frank Herbert"})
	bookID := body.Get("data.id").Uint()

	code, body := s.do(t, http.MethodDelete, fmt.Sprintf("/api/books/%d", bookID), alice, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "INSUFFICIENT_PERMISSIONS", body.Get("code").String())

	code, body = s.do(t, http.MethodGet, "/api/admin/logs", alice, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = s.do(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/status", adminID), adminToken, gin.H{"status": "banned"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = s.do(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/status", aliceID), adminToken, gin.H{"status": "banned"})
	require.Equal(t, http.StatusOK, code, body.Raw)
	assert.Equal(t, "banned", body.Get("data.status").String())

	// 已签发的 token 在封禁后立即失效
	code, body = s.do(t, http.MethodGet, "/api/auth/profile", alice, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "ACCOUNT_BANNED", body.Get("code").String())

	code, body = s.do(t, http.MethodGet, "/api/reviews", alice, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "ACCOUNT_BANNED", body.Get("code").String())

	code, body = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"identifier": "alice", "password": "passw0rd!"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "ACCOUNT_BANNED", body.Get("code").String())

	code, body = s.do(t, http.MethodGet, "/api/admin/logs?action=user_status", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body.Get("data.pagination.total").Int())

	code, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/books/%d", bookID), adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Get("data.status").String())
}
