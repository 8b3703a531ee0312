package handler

import (
	"net/http"

	"github.com/Eursukkul/humorshub/internal/dto"
	"github.com/Eursukkul/humorshub/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// RegisterRoutes mounts the booking routes on g. Only venue-status is public.
func (h *BookingHandler) RegisterRoutes(g *echo.Group, authMw echo.MiddlewareFunc) {
	g.GET("/venue-status", h.VenueStatus)
	g.POST("", h.CreateBooking, authMw)
	g.GET("/user", h.ListUserBookings, authMw)
	g.DELETE("/:id", h.CancelBooking, authMw)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), id, service.CreateBookingInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		NumberOfTickets: req.NumberOfTickets,
	})
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) VenueStatus(c echo.Context) error {
	status, err := h.svc.VenueStatus(c.Request().Context())
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListForUser(c.Request().Context(), id, c.QueryParam("email"))
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingList(bookings))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	bookingID, err := parseID(c, "booking")
	if err != nil {
		return err
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), id, bookingID)
	if err != nil {
		return toHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
