package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	middleware "github.com/02priyeshraj/Restaurant_Management_Backend/middlewares"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

// base carries what every handler needs: the per-request deadline, the
// logger and the response envelope of its resource.
type base struct {
	timeout  time.Duration
	log      logger.ILogger
	envelope helper.Envelope
}

func newBase(timeout time.Duration, log logger.ILogger, envelope helper.Envelope) base {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return base{timeout: timeout, log: log, envelope: envelope}
}

func (b base) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), b.timeout)
}

// fail writes the error envelope and logs anything that maps to a 5xx.
func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	if status := b.envelope.Error(w, err); status >= http.StatusInternalServerError {
		b.log.Error("request failed",
			logger.String("request_id", middleware.RequestIDFromContext(r.Context())),
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Error(err),
		)
	}
}

// actor returns the authenticated caller. Routes that reach a handler using
// it are always behind Authentication.
func actor(r *http.Request) models.Actor {
	a, _ := middleware.ActorFromContext(r.Context())
	return a
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation("query", "%s must be an integer", name)
	}
	return v, nil
}
