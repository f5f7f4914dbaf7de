package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/mdSHash/SleekSell/internal/persist"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Health returns a JSON health check response.
// Checks persistence and Redis connectivity; never exposes credentials or
// internals.
func Health(st persist.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		persistStatus := "connected"
		if st.Ping(ctx) != nil {
			persistStatus = "error"
		}

		redisStatus := "connected"
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if persistStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":          status == http.StatusOK,
			"persistence": persistStatus,
			"redis":       redisStatus,
		})
	}
}
