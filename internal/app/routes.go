package app

import (
	"github.com/copperstate/realty-core/internal/middleware"
	"github.com/copperstate/realty-core/internal/modules/auth"
	"github.com/copperstate/realty-core/internal/modules/backup"
	"github.com/copperstate/realty-core/internal/modules/blog"
	"github.com/copperstate/realty-core/internal/modules/calculator"
	"github.com/copperstate/realty-core/internal/modules/content"
	"github.com/copperstate/realty-core/internal/modules/health"
	"github.com/copperstate/realty-core/internal/modules/neighborhood"
	"github.com/copperstate/realty-core/internal/modules/resource"
)

// registerRoutes mounts every module under /api plus a root health probe.
func (a *App) registerRoutes() {
	authMW := middleware.Auth(a.cfg)

	healthH := health.NewHandler(a.db)
	healthH.RegisterRoutes(a.router.Group(""))

	api := a.router.Group("/api")
	healthH.RegisterRoutes(api)

	auth.NewHandler(a.cfg).RegisterRoutes(api)
	content.NewHandler(content.NewService(a.db)).RegisterRoutes(api, authMW)
	neighborhood.NewHandler(neighborhood.NewService(a.db)).RegisterRoutes(api, authMW)
	blog.NewHandler(blog.NewService(a.db)).RegisterRoutes(api, authMW)
	resource.NewHandler(resource.NewService(a.db)).RegisterRoutes(api, authMW)
	calculator.NewHandler(calculator.NewService(a.db)).RegisterRoutes(api, authMW)
	backup.NewHandler(backup.NewService(a.db, a.cfg.Backup, a.logger)).RegisterRoutes(api, authMW)
}
