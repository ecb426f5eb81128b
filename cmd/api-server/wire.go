//go:build wireinject
// +build wireinject

package main

import (
	"Folio/config"
	"Folio/dao"
	"Folio/handler"
	"Folio/middleware"
	"Folio/pkg/client"
	"Folio/pkg/database"
	"Folio/pkg/jwt"
	"Folio/pkg/ratelimit"
	"Folio/pkg/server"
	"Folio/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		ratelimit.New,
		jwt.ProvideManager,
		wire.Bind(new(jwt.Issuer), new(*jwt.Manager)),
		wire.Bind(new(jwt.Verifier), new(*jwt.Manager)),
		middleware.NewAuthenticator,

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
