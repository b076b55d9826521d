package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handler2 "mnsreestr/cmd/internal/http/handler"
	middleware2 "mnsreestr/cmd/internal/http/middleware"
	"mnsreestr/cmd/internal/service"
	"mnsreestr/cmd/internal/utils/uid"
)

func newServer(registryService *service.RegistryService) *echo.Echo {
	searchRoutes := handler2.NewSearchRoute(registryService)
	orgRoutes := handler2.NewOrganizationRoute(registryService)
	ipRoutes := handler2.NewEntrepreneurRoute(registryService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uid.Generate}))
	e.Use(middleware2.NewRequestLogger())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Unified search
	e.GET("/api/search/:query", searchRoutes.SearchByPath)
	e.POST("/api/search", searchRoutes.Search)

	// Organizations
	e.GET("/api/organization/inn/:inn", orgRoutes.GetOrganization)
	e.GET("/api/organizations/name", orgRoutes.FindOrganizations)
	e.POST("/api/organizations/search", orgRoutes.SearchOrganizations)

	// Entrepreneurs
	e.GET("/api/entrepreneur/inn/:inn", ipRoutes.GetEntrepreneur)
	e.GET("/api/entrepreneurs/name", ipRoutes.FindEntrepreneurs)
	e.POST("/api/entrepreneurs/search", ipRoutes.SearchEntrepreneurs)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	return e
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
