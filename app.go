package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type app struct {
	cfg    Config
	logger *zap.Logger
	db     *gorm.DB
	theme  *Theme
	dash   *Dashboard
	hub    *progressHub
}

// newApp wires the dashboard from cfg. db may be nil, in which case load
// history is neither recorded nor served.
func newApp(cfg Config, logger *zap.Logger, db *gorm.DB) *app {
	theme := newTheme()
	dash := newDashboard(newStatsClient(cfg), theme, buildSections(cfg, theme), cfg.Dashboard.HiddenTargets, logger)
	if db != nil {
		dash.history = &historyStore{db: db}
	}

	hub := newProgressHub(logger)
	hub.load = dash.LoadAll
	dash.Observe(hub)

	return &app{cfg: cfg, logger: logger, db: db, theme: theme, dash: dash, hub: hub}
}

func newRouter(a *app) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(a.logger), gin.Recovery())

	r.GET("/", a.serveDashboard)
	r.GET("/sections/:name", a.serveSectionFragment)
	r.GET("/charts/:name", a.serveSectionPNG)
	r.GET("/api/dashboard", a.serveDashboardJSON)
	r.GET("/ws/progress", gin.WrapF(a.hub.handleWebSocket))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":       true,
			"sections": a.dash.SectionNames(),
			"watchers": a.hub.ClientCount(),
			"history":  a.db != nil,
		})
	})

	history := r.Group("/api")
	if a.db != nil {
		history.GET("/loads/summary", handleLoadSummary(a.db))
		history.GET("/loads/recent", handleRecentLoads(a.db))
		history.GET("/sections/health", handleSectionHealth(a.db))
		history.GET("/sections/errors", handleTopErrors(a.db))
	} else {
		disabled := func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, errResponse{OK: false, Error: "HISTORY_DISABLED", Message: "load history storage is disabled"})
		}
		history.GET("/loads/summary", disabled)
		history.GET("/loads/recent", disabled)
		history.GET("/sections/health", disabled)
		history.GET("/sections/errors", disabled)
	}

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
