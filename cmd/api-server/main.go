package main

import (
	"Folio/config"
	"Folio/pkg/context"
	"Folio/pkg/database"
	"Folio/pkg/log"
	"Folio/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())
	context.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "folio book review service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("database", cfg.MySQL.Database))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to run api-server", zap.Error(err))
	}
}
