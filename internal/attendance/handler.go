package attendance

import (
	"errors"
	"net/http"

	"JainPathshala/internal/auth"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type overviewResponse struct {
	Records []Record `json:"records"`
	Stats   Stats    `json:"stats"`
}

// Overview returns the caller's attendance history and stats.
func (h *Handler) Overview(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}

	records, stats, err := h.service.Overview(c.Request().Context(), claims.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch attendance"})
	}
	return c.JSON(http.StatusOK, overviewResponse{Records: records, Stats: stats})
}

// MarkToday creates today's under_review record for the caller.
func (h *Handler) MarkToday(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}

	record, err := h.service.MarkToday(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrAlreadyMarked) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to mark attendance"})
	}
	return c.JSON(http.StatusCreated, record)
}

func (h *Handler) PendingReviews(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}

	records, err := h.service.PendingReviews(c.Request().Context(), claims.Role)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch review requests"})
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) Approve(c echo.Context) error {
	return h.resolve(c, true)
}

func (h *Handler) Reject(c echo.Context) error {
	return h.resolve(c, false)
}

func (h *Handler) resolve(c echo.Context, approved bool) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid record id"})
	}

	if approved {
		err = h.service.Approve(c.Request().Context(), claims.Role, id)
	} else {
		err = h.service.Reject(c.Request().Context(), claims.Role, id)
	}
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		if errors.Is(err, ErrNotPending) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to process request"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Review request processed"})
}

// StudentOverview is the admin view of one student's attendance.
func (h *Handler) StudentOverview(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}

	records, stats, err := h.service.StudentOverview(c.Request().Context(), claims.Role, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch attendance"})
	}
	return c.JSON(http.StatusOK, overviewResponse{Records: records, Stats: stats})
}
