package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/health"
	"github.com/Nessyi/pumpkin-management/internal/service/activity"
	"github.com/Nessyi/pumpkin-management/internal/service/system"
)

// CacheProbe: 캐시 연결 상태 확인
type CacheProbe interface {
	IsConnected(ctx context.Context) bool
}

// ActivityReader: 길드 활동 로그 조회
type ActivityReader interface {
	GetRecentLogs(limit int) ([]activity.LogEntry, error)
}

// RouterOptions: 헬스 라우터 구성 옵션 (nil 항목의 엔드포인트는 등록하지 않는다)
type RouterOptions struct {
	CORSOrigins []string
	System      *system.Collector
	Cache       CacheProbe
	Activity    ActivityReader
}

// NewRouter: 헬스 체크 엔드포인트를 서빙하는 Gin 라우터를 생성한다.
func NewRouter(ctx context.Context, logger *slog.Logger, opts RouterOptions) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(ctx, logger, "/health"))
	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(newCORSConfig(opts.CORSOrigins)))
	}
	router.Use(SecurityHeadersMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/health", func(c *gin.Context) {
		resp := health.Get()
		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, resp)
	})

	if opts.System != nil {
		collector := opts.System
		router.GET("/health/system", func(c *gin.Context) {
			reqCtx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.SystemStats)
			defer cancel()

			stats, err := collector.GetCurrentStats(reqCtx)
			if err != nil {
				logger.Warn("Failed to collect system stats", slog.Any("error", err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect system stats"})
				return
			}
			c.JSON(http.StatusOK, stats)
		})
	}

	if opts.Cache != nil {
		probe := opts.Cache
		router.GET("/health/cache", func(c *gin.Context) {
			reqCtx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.CachePing)
			defer cancel()

			if !probe.IsConnected(reqCtx) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"cache": "disconnected"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"cache": "connected"})
		})
	}

	if opts.Activity != nil {
		reader := opts.Activity
		router.GET("/health/activity", func(c *gin.Context) {
			limit := constants.ActivityTail.DefaultLimit
			if raw := c.Query("limit"); raw != "" {
				n, err := strconv.Atoi(raw)
				if err != nil || n <= 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
					return
				}
				limit = min(n, constants.ActivityTail.MaxLimit)
			}

			entries, err := reader.GetRecentLogs(limit)
			if err != nil {
				logger.Warn("Failed to read activity log", slog.Any("error", err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read activity log"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"entries": entries})
		})
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

func newCORSConfig(origins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowMethods = constants.CORSConfig.AllowMethods
	corsConfig.AllowHeaders = constants.CORSConfig.AllowHeaders
	return corsConfig
}
