package handler

import (
	"net/http"

	"github.com/Eursukkul/humorshub/internal/dto"
	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	bookings  service.BookingService
	comedians service.ComedianService
	admin     service.AdminService
}

func NewAdminHandler(bookings service.BookingService, comedians service.ComedianService, admin service.AdminService) *AdminHandler {
	return &AdminHandler{bookings: bookings, comedians: comedians, admin: admin}
}

// RegisterRoutes expects g to already carry the auth and admin middleware.
func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/bookings", h.ListBookings)
	g.PUT("/bookings", h.UpdateBookingStatus)

	g.GET("/comedians", h.ListComedians)
	g.PUT("/comedians/:id", h.UpdateComedianStatus)

	g.GET("/users", h.ListUsers)
	g.PUT("/users/:id", h.UpdateUserRole)
	g.DELETE("/users/:id", h.DeleteUser)
	g.PUT("/users/:id/password", h.ResetPassword)
}

func (h *AdminHandler) ListBookings(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	bookings, err := h.admin.ListBookings(c.Request().Context(), id, statusFilter(c))
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingList(bookings))
}

func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBookingStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), id, req.BookingID, models.Status(req.Status))
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *AdminHandler) ListComedians(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	users, err := h.admin.ListComedians(c.Request().Context(), id, statusFilter(c))
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ComedianListResponse{Comedians: dto.ToUserList(users)})
}

func (h *AdminHandler) UpdateComedianStatus(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "user")
	if err != nil {
		return err
	}
	var req dto.UpdateComedianStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.comedians.UpdateStatus(c.Request().Context(), id, userID, models.Status(req.Status))
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserEnvelope{User: dto.ToUserResponse(user)})
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	users, err := h.admin.ListUsers(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserListResponse{Users: dto.ToUserList(users)})
}

func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "user")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.admin.SetUserRole(c.Request().Context(), id, userID, models.Role(req.Role)); err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "user role updated"})
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "user")
	if err != nil {
		return err
	}

	if err := h.admin.DeleteUser(c.Request().Context(), id, userID); err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted"})
}

func (h *AdminHandler) ResetPassword(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "user")
	if err != nil {
		return err
	}
	var req dto.ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.admin.ResetPassword(c.Request().Context(), id, userID, req.NewPassword); err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}
