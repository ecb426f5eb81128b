package service

import (
	"Folio/config"
	"Folio/dao"
	"Folio/models"
	"Folio/pkg/encrypt"
	"Folio/pkg/response"
	"Folio/types"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv 一套基于内存 sqlite 的服务实例
type testEnv struct {
	db  *gorm.DB
	now time.Time

	users    *dao.UserDAO
	books    *dao.BookDAO
	reviews  *dao.ReviewDAO
	comments *dao.CommentDAO
	logs     *dao.SystemLogDAO

	Review   *ReviewService
	Book     *BookService
	Like     *LikeService
	Favorite *FavoriteService
	Comment  *CommentService
	View     *ViewService
	Profile  *ProfileService
	Admin    *AdminService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// 每个测试一个独立的内存库
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
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	env := &testEnv{
		db:       db,
		now:      time.Now().UTC(),
		users:    dao.NewUserDAO(db),
		books:    dao.NewBookDAO(db),
		reviews:  dao.NewReviewDAO(db),
		comments: dao.NewCommentDAO(db),
		logs:     dao.NewSystemLogDAO(db),
	}
	clock := func() time.Time { return env.now }
	counter := &CounterService{CounterDAO: dao.NewCounterDAO(db)}
	likes := dao.NewLikeDAO(db)
	favorites := dao.NewFavoriteDAO(db)

	env.Review = &ReviewService{
		BookDAO:     env.books,
		ReviewDAO:   env.reviews,
		UserDAO:     env.users,
		LikeDAO:     likes,
		FavoriteDAO: favorites,
		LogDAO:      env.logs,
		Counter:     counter,
	}
	env.Book = &BookService{
		BookDAO:   env.books,
		TagDAO:    dao.NewTagDAO(db),
		ReviewDAO: env.reviews,
		LogDAO:    env.logs,
		Counter:   counter,
	}
	env.Like = &LikeService{ReviewDAO: env.reviews, LikeDAO: likes, Counter: counter}
	env.Favorite = &FavoriteService{ReviewDAO: env.reviews, FavoriteDAO: favorites}
	env.Comment = &CommentService{
		ReviewDAO:  env.reviews,
		CommentDAO: env.comments,
		UserDAO:    env.users,
		LogDAO:     env.logs,
		Counter:    counter,
		Clock:      clock,
	}
	conf, err := config.Parse([]byte("engagement:\n  view_window: 30m\n"))
	require.NoError(t, err)
	env.View = &ViewService{Config: conf, ReviewDAO: env.reviews, LogDAO: env.logs, Clock: clock}
	env.Profile = &ProfileService{UserDAO: env.users, ReviewDAO: env.reviews, FavoriteDAO: favorites, CommentDAO: env.comments}
	env.Admin = &AdminService{UserDAO: env.users, LogDAO: env.logs}
	return env
}

func (e *testEnv) createUser(t *testing.T, username, role string) *types.Actor {
	t.Helper()
	hash, err := encrypt.HashPassword("secret123")
	require.NoError(t, err)
	u := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusActive,
		Privacy:      datatypes.NewJSONType(models.DefaultPrivacy()),
	}
	require.NoError(t, e.db.Create(u).Error)
	return types.ActorFromUser(u)
}

func (e *testEnv) createBook(t *testing.T, actor *types.Actor, title string, tags ...string) *models.Book {
	t.Helper()
	book, err := e.Book.Create(context.Background(), actor, &types.CreateBookRequest{
		Title:  title,
		Author: "Some Author",
		Tags:   tags,
	})
	require.NoError(t, err)
	return book
}

func (e *testEnv) createReview(t *testing.T, actor *types.Actor, bookID uint64, rating int) *models.Review {
	t.Helper()
	review, err := e.Review.Create(context.Background(), actor, &types.CreateReviewRequest{
		BookID:  bookID,
		Title:   "A review",
		Content: "Worth reading.",
		Rating:  rating,
	})
	require.NoError(t, err)
	return review
}

func (e *testEnv) reloadUser(t *testing.T, id uint64) *models.User {
	t.Helper()
	u, err := e.users.FindById(context.Background(), id)
	require.NoError(t, err)
	return u
}

func (e *testEnv) reloadBook(t *testing.T, id uint64) *models.Book {
	t.Helper()
	b, err := e.books.FindById(context.Background(), id)
	require.NoError(t, err)
	return b
}

func (e *testEnv) reloadReview(t *testing.T, id uint64) *models.Review {
	t.Helper()
	r, err := e.reviews.FindById(context.Background(), id)
	require.NoError(t, err)
	return r
}

// requireCode 断言返回的是指定错误码的业务错误
func requireCode(t *testing.T, err error, status int, code string) *response.BizError {
	t.Helper()
	require.Error(t, err)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	require.Equal(t, status, be.Status)
	require.Equal(t, code, be.Code)
	return be
}
