package http_init

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	groups []*gin.RouterGroup
	engine *gin.Engine
}

// NewControllerPool serves every controller under /api/v1 and, for older
// clients, at the root as well.
func NewControllerPool() *ControllerPool {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	return &ControllerPool{
		pool:   make([]Controller, 0, 4),
		groups: []*gin.RouterGroup{engine.Group(apiPrefix), &engine.RouterGroup},
		engine: engine,
	}
}

func (pool *ControllerPool) Register() {
	for _, g := range pool.groups {
		for _, c := range pool.pool {
			c.RegisterRoutes(g)
		}
	}
}

// Handler exposes the engine, mostly for httptest.
func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// RunAll blocks until ctx is done, then drains in-flight requests.
func (pool *ControllerPool) RunAll(ctx context.Context, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           pool.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("failed to shutdown HTTP server: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}
