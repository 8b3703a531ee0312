package handler

import (
	"net/http"

	"github.com/Eursukkul/humorshub/internal/dto"
	"github.com/Eursukkul/humorshub/internal/service"
	"github.com/labstack/echo/v4"
)

type ComedianHandler struct {
	svc service.ComedianService
}

func NewComedianHandler(svc service.ComedianService) *ComedianHandler {
	return &ComedianHandler{svc: svc}
}

func (h *ComedianHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
}

// Register ignores the email and status in the body: the application is filed
// under the signed-in user and always starts pending.
func (h *ComedianHandler) Register(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req dto.RegisterComedianRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p := req.ComedianProfile
	user, err := h.svc.Register(c.Request().Context(), id, service.RegisterComedianInput{
		Username:     req.Username,
		Phone:        req.Phone,
		ComedianType: p.ComedianType,
		Speciality:   p.Speciality,
		Experience:   p.Experience,
		Bio:          p.Bio,
		VideoURL:     p.VideoURL,
	})
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.UserEnvelope{User: dto.ToUserResponse(user)})
}
