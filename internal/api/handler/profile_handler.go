package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/car-rental-api/internal/api/metrics"
	"github.com/99minutos/car-rental-api/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /api/profile.
//
// @Summary      Current profile (demo: first stored account)
// @Tags         profile
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	p, err := h.profiles.GetProfile(c.Request().Context())
	metrics.ProfileRequestsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Success: true,
		User: profileUserResponse{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			Avatar:      p.Avatar,
			MemberSince: p.MemberSince,
		},
	})
}
