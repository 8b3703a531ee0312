package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Eursukkul/humorshub/internal/dto"
	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, id service.Identity, in service.CreateBookingInput) (*models.Booking, error) {
			assert.Equal(t, alice, id)
			assert.Equal(t, "Alice Smith", in.FullName)
			assert.Nil(t, in.NumberOfTickets)
			one := 1
			return &models.Booking{
				ID:              1,
				UserEmail:       in.Email,
				FullName:        in.FullName,
				Phone:           in.Phone,
				NumberOfTickets: &one,
				Status:          models.StatusPending,
				CreatedAt:       time.Now(),
			}, nil
		},
	}

	body := `{"fullName":"Alice Smith","email":"alice@example.com","phone":"0812345678"}`
	c, rec := newContext(http.MethodPost, "/api/v1/bookings", body, &alice)

	err := NewBookingHandler(svc).CreateBooking(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, 1, resp.NumberOfTickets)
}

func TestCreateBooking_Handler_ValidationError(t *testing.T) {
	body := `{"fullName":"","email":"not-an-email","phone":"0812345678"}`
	c, _ := newContext(http.MethodPost, "/api/v1/bookings", body, &alice)

	err := NewBookingHandler(nil).CreateBooking(c)

	assert.Equal(t, http.StatusBadRequest, httpCode(err))
	assert.Contains(t, err.Error(), "fullName is required")
}

func TestCreateBooking_Handler_Unauthenticated(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/v1/bookings", `{}`, nil)

	err := NewBookingHandler(nil).CreateBooking(c)

	assert.Equal(t, http.StatusUnauthorized, httpCode(err))
}

func TestCreateBooking_Handler_IdentityMismatch(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, id service.Identity, in service.CreateBookingInput) (*models.Booking, error) {
			return nil, service.ErrIdentityMismatch
		},
	}
	body := `{"fullName":"Bob","email":"bob@example.com","phone":"0812345678"}`
	c, _ := newContext(http.MethodPost, "/api/v1/bookings", body, &alice)

	err := NewBookingHandler(svc).CreateBooking(c)

	assert.Equal(t, http.StatusForbidden, httpCode(err))
}

func TestVenueStatus_Handler(t *testing.T) {
	svc := &mockBookingService{
		statusFn: func(ctx context.Context) (models.VenueStatus, error) {
			return models.NewVenueStatus(50, 50), nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/v1/bookings/venue-status", "", nil)

	err := NewBookingHandler(svc).VenueStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalApproved":50,"capacity":50,"seatsAvailable":0,"isFull":true}`, rec.Body.String())
}

func TestVenueStatus_Handler_StoreError(t *testing.T) {
	svc := &mockBookingService{
		statusFn: func(ctx context.Context) (models.VenueStatus, error) {
			return models.VenueStatus{}, service.ErrStoreUnavailable
		},
	}
	c, _ := newContext(http.MethodGet, "/api/v1/bookings/venue-status", "", nil)

	err := NewBookingHandler(svc).VenueStatus(c)

	assert.Equal(t, http.StatusInternalServerError, httpCode(err))
}

func TestListUserBookings_Handler(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context, id service.Identity, email string) ([]models.Booking, error) {
			assert.Equal(t, "alice@example.com", email)
			return []models.Booking{{ID: 2, UserEmail: email, Status: models.StatusApproved}}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/v1/bookings/user?email=alice@example.com", "", &alice)

	err := NewBookingHandler(svc).ListUserBookings(c)

	require.NoError(t, err)
	var resp dto.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 1, resp.Bookings[0].NumberOfTickets)
}

func TestCancelBooking_Handler(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		err      error
		wantCode int
	}{
		{name: "success", param: "5", wantCode: http.StatusOK},
		{name: "invalid id", param: "abc", wantCode: http.StatusBadRequest},
		{name: "not found", param: "5", err: service.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{name: "not owner", param: "5", err: service.ErrNotOwner, wantCode: http.StatusForbidden},
		{name: "not pending", param: "5", err: service.ErrBookingNotPending, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				cancelFn: func(ctx context.Context, id service.Identity, bookingID uint) (*models.Booking, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &models.Booking{ID: bookingID, Status: models.StatusPending}, nil
				},
			}
			c, rec := newContext(http.MethodDelete, "/api/v1/bookings/"+tt.param, "", &alice)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			err := NewBookingHandler(svc).CancelBooking(c)

			if tt.wantCode == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			assert.Equal(t, tt.wantCode, httpCode(err))
		})
	}
}
