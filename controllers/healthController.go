package controller

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthController struct {
	base
	db Pinger
}

func NewHealthController(db Pinger, timeout time.Duration, log logger.ILogger) *HealthController {
	return &HealthController{base: newBase(timeout, log, helper.SuccessEnvelope), db: db}
}

func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	if err := c.db.Ping(ctx, readpref.Primary()); err != nil {
		c.log.Warning("health check failed", logger.Error(err))
		helper.WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"success":  false,
			"message":  "Database unavailable",
			"database": "down",
		})
		return
	}
	helper.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "OK",
		"database": "up",
	})
}
