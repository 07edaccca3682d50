package handler

import (
	"net/http"
	"time"

	"github.com/craftkart/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SystemHandler serves health and readiness probes.
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	redis     *redis.Client
	startedAt time.Time
}

func NewSystemHandler(db *persistence.Database, redisClient *redis.Client) *SystemHandler {
	return &SystemHandler{
		db:        db,
		redis:     redisClient,
		startedAt: time.Now(),
	}
}

// RegisterRoutes wires the probe endpoints
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ready", h.Ready)
}

// Health is the liveness probe. It answers as long as the process
// can serve requests.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Ready is the readiness probe. It checks the database and, when
// configured, Redis. Redis is optional so a cache outage degrades
// performance rather than availability.
func (h *SystemHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["database"] = "unreachable"
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			checks["redis"] = "unreachable"
		} else {
			checks["redis"] = "ok"
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": checks})
}
