package attendance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"JainPathshala/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(e *echo.Echo, method, path string, claims *auth.JWTClaims) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if claims != nil {
		ctx.Set("user", claims)
	}
	return ctx, rec
}

func TestMarkTodayHandler(t *testing.T) {
	e := echo.New()
	svc, _, _ := setup()
	h := NewHandler(svc)
	claims := &auth.JWTClaims{UserID: "s1", Role: "student"}

	ctx, rec := newContext(e, http.MethodPost, "/api/attendance", claims)
	assert.NoError(t, h.MarkToday(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var record Record
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, StatusUnderReview, record.Status)

	// Same calendar day again: conflict, no second record.
	ctx, rec = newContext(e, http.MethodPost, "/api/attendance", claims)
	assert.NoError(t, h.MarkToday(ctx))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMarkTodayHandlerMissingClaims(t *testing.T) {
	e := echo.New()
	svc, _, _ := setup()
	h := NewHandler(svc)

	ctx, rec := newContext(e, http.MethodPost, "/api/attendance", nil)
	assert.NoError(t, h.MarkToday(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResolveHandlerRejectsNonAdmin(t *testing.T) {
	e := echo.New()
	svc, store, _ := setup()
	h := NewHandler(svc)
	record := pendingRecord(store, "s1", time.Now())

	ctx, rec := newContext(e, http.MethodPost, "/", &auth.JWTClaims{UserID: "s2", Role: "student"})
	ctx.SetPath("/api/attendance/requests/:id/approve")
	ctx.SetParamNames("id")
	ctx.SetParamValues(record.ID.Hex())

	assert.NoError(t, h.Approve(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, StatusUnderReview, record.Status)
}

func TestResolveHandlerApproves(t *testing.T) {
	e := echo.New()
	svc, store, _ := setup()
	h := NewHandler(svc)
	record := pendingRecord(store, "s1", time.Now())

	ctx, rec := newContext(e, http.MethodPost, "/", &auth.JWTClaims{UserID: "a1", Role: "admin"})
	ctx.SetPath("/api/attendance/requests/:id/approve")
	ctx.SetParamNames("id")
	ctx.SetParamValues(record.ID.Hex())

	assert.NoError(t, h.Approve(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusPresent, record.Status)
	assert.Equal(t, ReviewApproved, record.ReviewRequest.Status)
}

func TestResolveHandlerBadID(t *testing.T) {
	e := echo.New()
	svc, _, _ := setup()
	h := NewHandler(svc)

	ctx, rec := newContext(e, http.MethodPost, "/", &auth.JWTClaims{UserID: "a1", Role: "admin"})
	ctx.SetPath("/api/attendance/requests/:id/reject")
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-hex")

	assert.NoError(t, h.Reject(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
