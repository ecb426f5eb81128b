package server

import (
	"Folio/config"
	"Folio/middleware"
	"Folio/pkg/log"
	"Folio/pkg/ratelimit"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
}

func NewGinEngine(conf *config.Config, h *Handlers, limiter ratelimit.Limiter) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(CORSMiddleware())
	r.Use(middleware.RequestID(), middleware.GinZap(), gin.Recovery())
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/metrics", middleware.MetricsHandler())
	h.Health.RegisterRouter(r)

	api := r.Group("/api")
	if conf.Limiter.Enabled && limiter != nil {
		api.Use(middleware.RateLimit(limiter))
	}
	h.Auth.RegisterRouter(api)
	h.User.RegisterRouter(api)
	h.Book.RegisterRouter(api)
	h.Review.RegisterRouter(api)
	h.Like.RegisterRouter(api)
	h.Favorite.RegisterRouter(api)
	h.Comment.RegisterRouter(api)
	h.Admin.RegisterRouter(api)
	return r
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Content-Length, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		// 预检请求直接返回 204
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func Run(ctx *cli.Context, app *AppProvider) error {
	eg, groupCtx := errgroup.WithContext(ctx.Context)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

	log.L.Info("server starting",
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
	)

	return run(c, eg, groupCtx, app)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx context.Context, app *AppProvider) error {
	serv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Server.Http),
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("server stopping", zap.String("addr", serv.Addr))

			// 最多等 5 秒让在途请求结束
			timeCtx, timeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Warn("server shutdown", zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.L.Error("server exited", zap.Error(err))
		return err
	}

	log.L.Info("server stopped")
	return nil
}
