package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	intconfig "goods/internal/config"
	h "goods/internal/http/handlers"
	"goods/internal/http/middleware"
	"goods/internal/repositories"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	goods := h.GoodsHandler{Repo: repositories.GoodsRepository{DB: db}}
	system := h.SystemHandler{DB: db, Router: r}

	r.GET("/health", system.Health)
	r.GET("/db-check", system.DBCheck)
	r.GET("/routes", system.Routes)

	r.GET("/goods", goods.List)
	r.GET("/goods/report", goods.Report)
	r.POST("/lock", goods.Lock)

	return r
}
