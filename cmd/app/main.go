package main

import (
	"mld-backend/internal/app"
	"mld-backend/pkg/config"

	_ "mld-backend/docs" // Swagger docs
)

// @title           MLD Backend API
// @version         1.0
// @description     REST API for the MLD business site: accounts, product catalogs and news.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
