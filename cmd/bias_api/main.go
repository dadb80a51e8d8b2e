// Package main News Lens API
// @title News Lens API
// @version 1.0
// @description Bias analysis of news articles with neutral rewrites and cross-outlet comparison
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@newslens.com
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/news-lens/docs"
	"github.com/DjordjeVuckovic/news-lens/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/news-lens/internal/api/server"
	"github.com/DjordjeVuckovic/news-lens/internal/app"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := app.LoadConfig("cmd/bias_api/.env")
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	s := apiserver.New(sCfg, a.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/api/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Lens API is running")
	})

	articleRouter := router.NewArticleRouter(s.Echo, a.Pipeline, router.WithAnalyzeTimeout(sCfg.RequestTimeout))
	articleRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()

	if closeErr := a.Close(context.Background()); closeErr != nil {
		slog.Error("Failed to close storage", "error", closeErr)
	}
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
