package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"medisched/models"
	"medisched/services/schedule"
	"medisched/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SpecialistHandler serves the read-only specialist calendars. Their
// schedules are generated once at startup and never mutate, so range reports
// are cached in Redis.
type SpecialistHandler struct {
	Stores   map[string]schedule.ScheduleStore
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func NewSpecialistHandler(stores map[string]schedule.ScheduleStore, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *SpecialistHandler {
	return &SpecialistHandler{Stores: stores, Cache: cache, CacheTTL: cacheTTL, Logger: logger}
}

// ListSpecialistsHandler handles GET /api/specialists.
func (h *SpecialistHandler) ListSpecialistsHandler(c *gin.Context) {
	names := make([]string, 0, len(h.Stores))
	for name := range h.Stores {
		names = append(names, name)
	}
	sort.Strings(names)
	c.JSON(http.StatusOK, gin.H{"specialists": names})
}

// CheckAvailabilityRangeHandler handles
// GET /api/specialists/:specialist/availability?start=YYYY-MM-DD&end=YYYY-MM-DD.
// A single-day query may pass the same date for both parameters.
func (h *SpecialistHandler) CheckAvailabilityRangeHandler(c *gin.Context) {
	name := c.Param("specialist")
	store, ok := h.Stores[name]
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Unknown specialist: %s.", name), "UNKNOWN_SPECIALIST")
		return
	}

	startDate := c.Query("start")
	endDate := c.Query("end")
	if startDate == "" || endDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "Query parameters 'start' and 'end' are required.", schedule.CodeInvalidDateFormat)
		return
	}

	cacheKey := fmt.Sprintf("availability:%s:%s:%s", name, startDate, endDate)
	ctx := context.Background()
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var days []models.DayAvailability
			if err := json.Unmarshal([]byte(cached), &days); err == nil {
				c.JSON(http.StatusOK, gin.H{"specialist": name, "days": days})
				return
			}
		}
	}

	days, err := store.CheckAvailabilityRange(startDate, endDate)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	if h.Cache != nil {
		data, err := json.Marshal(days)
		if err == nil {
			if err := h.Cache.Set(ctx, cacheKey, data, h.CacheTTL).Err(); err != nil {
				h.Logger.Warn("failed to cache availability report",
					zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"specialist": name, "days": days})
}
