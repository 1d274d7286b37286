package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	helper "github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (s stubRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], s.err
}

func issue(t *testing.T, tokens *helper.TokenManager, role models.Role) (string, *helper.SignedDetails) {
	t.Helper()
	user := &models.User{ID: primitive.NewObjectID(), Email: "a@b.c", Role: role}
	access, _, err := tokens.GenerateAllTokens(user)
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(access)
	require.NoError(t, err)
	return access, claims
}

func failureMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	msg, _ := body["message"].(string)
	return msg
}

func TestAuthentication(t *testing.T) {
	tokens := helper.NewTokenManager("secret", time.Hour, time.Hour)
	token, claims := issue(t, tokens, models.RoleStaff)

	var seen models.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ActorFromContext(r.Context())
		if got, ok := GetUserFromContext(r); assert.True(t, ok) {
			assert.Equal(t, claims.ID, got.ID)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name        string
		header      string
		revocations RevocationChecker
		status      int
		message     string
	}{
		{name: "missing_header", header: "", status: http.StatusUnauthorized, message: "No Authorization header provided"},
		{name: "wrong_scheme", header: "Basic abc", status: http.StatusUnauthorized, message: "Invalid Authorization format"},
		{name: "garbage_token", header: "Bearer abc", status: http.StatusUnauthorized},
		{
			name:        "revoked_token",
			header:      "Bearer " + token,
			revocations: stubRevocations{revoked: map[string]bool{claims.ID: true}},
			status:      http.StatusUnauthorized,
			message:     "token has been revoked",
		},
		{
			name:        "revocation_store_down",
			header:      "Bearer " + token,
			revocations: stubRevocations{err: errors.New("redis down")},
			status:      http.StatusInternalServerError,
			message:     "Internal server error",
		},
		{name: "valid_token", header: "Bearer " + token, status: http.StatusNoContent},
		{name: "lowercase_scheme", header: "bearer " + token, status: http.StatusNoContent},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			handler := Authentication(tokens, testCase.revocations, logger.NewNop())(next)
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, testCase.status, rec.Code)
			if testCase.message != "" {
				assert.Equal(t, testCase.message, failureMessage(t, rec))
			}
		})
	}

	assert.Equal(t, models.RoleStaff, seen.Role)
}

func TestRequireRoles(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	guard := RequireRoles(models.RoleStaff, models.RoleAdmin)(ok)

	serve := func(ctx context.Context) int {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(context.Background()))
	assert.Equal(t, http.StatusForbidden, serve(context.WithValue(context.Background(), ActorKey, models.Actor{Role: models.RoleCustomer})))
	assert.Equal(t, http.StatusOK, serve(context.WithValue(context.Background(), ActorKey, models.Actor{Role: models.RoleAdmin})))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	var requestID string
	handler := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, rec.Header().Get(RequestIDHeader))
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(http.StatusCreated), fields["status"])
	assert.Equal(t, "/orders", fields["path"])

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", rec.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := Recovery(logger.FromZap(zap.New(core)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", failureMessage(t, rec))
	assert.Equal(t, 1, logs.Len())
}
