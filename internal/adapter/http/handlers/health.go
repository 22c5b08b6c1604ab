package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"taskdesk/internal/adapter/http/middleware"
)

const StatusHealthy = "healthy"

type HealthBasic struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Uptime      int64  `json:"uptime"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthMemory struct {
	AllocMB      uint64 `json:"allocMb"`
	TotalAllocMB uint64 `json:"totalAllocMb"`
	SysMB        uint64 `json:"sysMb"`
}

type HealthRequests struct {
	Total     int64 `json:"total"`
	Success   int64 `json:"success"`
	Errors    int64 `json:"errors"`
	ErrorRate int64 `json:"errorRate"`
}

type HealthSystem struct {
	Platform  string       `json:"platform"`
	Arch      string       `json:"arch"`
	GoVersion string       `json:"goVersion"`
	CPUs      int          `json:"cpus"`
	Memory    HealthMemory `json:"memory"`
}

type HealthApplication struct {
	PID       int            `json:"pid"`
	StartTime string         `json:"startTime"`
	Requests  HealthRequests `json:"requests"`
}

type HealthReport struct {
	HealthBasic
	System      HealthSystem      `json:"system"`
	Application HealthApplication `json:"application"`
}

type HealthHandler struct {
	metrics     *middleware.RequestMetrics
	version     string
	environment string
	startTime   time.Time
}

func NewHealthHandler(metrics *middleware.RequestMetrics, version, environment string) *HealthHandler {
	return &HealthHandler{
		metrics:     metrics,
		version:     version,
		environment: environment,
		startTime:   time.Now(),
	}
}

// Basic serves GET /api/health.
func (h *HealthHandler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, h.basic())
}

// Report serves GET /health with system and request details.
func (h *HealthHandler) Report(c *gin.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	total, success, errs := h.metrics.Snapshot()
	var errorRate int64
	if total > 0 {
		errorRate = errs * 100 / total
	}

	c.JSON(http.StatusOK, HealthReport{
		HealthBasic: h.basic(),
		System: HealthSystem{
			Platform:  runtime.GOOS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
			CPUs:      runtime.NumCPU(),
			Memory: HealthMemory{
				AllocMB:      memStats.Alloc / 1024 / 1024,
				TotalAllocMB: memStats.TotalAlloc / 1024 / 1024,
				SysMB:        memStats.Sys / 1024 / 1024,
			},
		},
		Application: HealthApplication{
			PID:       os.Getpid(),
			StartTime: h.startTime.UTC().Format(time.RFC3339),
			Requests: HealthRequests{
				Total:     total,
				Success:   success,
				Errors:    errs,
				ErrorRate: errorRate,
			},
		},
	})
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Readiness has nothing external to probe: the collections are in-process.
func (h *HealthHandler) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) basic() HealthBasic {
	return HealthBasic{
		Status:      StatusHealthy,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      int64(time.Since(h.startTime).Seconds()),
		Version:     h.version,
		Environment: h.environment,
	}
}
