package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Eursukkul/humorshub/internal/middleware"
	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/service"
	"github.com/labstack/echo/v4"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, id service.Identity, in service.CreateBookingInput) (*models.Booking, error)
	statusFn func(ctx context.Context) (models.VenueStatus, error)
	updateFn func(ctx context.Context, id service.Identity, bookingID uint, status models.Status) (*models.Booking, error)
	cancelFn func(ctx context.Context, id service.Identity, bookingID uint) (*models.Booking, error)
	listFn   func(ctx context.Context, id service.Identity, email string) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, id service.Identity, in service.CreateBookingInput) (*models.Booking, error) {
	return m.createFn(ctx, id, in)
}
func (m *mockBookingService) VenueStatus(ctx context.Context) (models.VenueStatus, error) {
	return m.statusFn(ctx)
}
func (m *mockBookingService) UpdateStatus(ctx context.Context, id service.Identity, bookingID uint, status models.Status) (*models.Booking, error) {
	return m.updateFn(ctx, id, bookingID, status)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, id service.Identity, bookingID uint) (*models.Booking, error) {
	return m.cancelFn(ctx, id, bookingID)
}
func (m *mockBookingService) ListForUser(ctx context.Context, id service.Identity, email string) ([]models.Booking, error) {
	return m.listFn(ctx, id, email)
}

// --- Mock ComedianService ---

type mockComedianService struct {
	registerFn func(ctx context.Context, id service.Identity, in service.RegisterComedianInput) (*models.User, error)
	updateFn   func(ctx context.Context, id service.Identity, userID uint, status models.Status) (*models.User, error)
}

func (m *mockComedianService) Register(ctx context.Context, id service.Identity, in service.RegisterComedianInput) (*models.User, error) {
	return m.registerFn(ctx, id, in)
}
func (m *mockComedianService) UpdateStatus(ctx context.Context, id service.Identity, userID uint, status models.Status) (*models.User, error) {
	return m.updateFn(ctx, id, userID, status)
}

// --- Mock AdminService ---

type mockAdminService struct {
	listBookingsFn  func(ctx context.Context, id service.Identity, status *models.Status) ([]models.Booking, error)
	listUsersFn     func(ctx context.Context, id service.Identity) ([]models.User, error)
	listComediansFn func(ctx context.Context, id service.Identity, status *models.Status) ([]models.User, error)
	deleteFn        func(ctx context.Context, id service.Identity, userID uint) error
	roleFn          func(ctx context.Context, id service.Identity, userID uint, role models.Role) error
	passwordFn      func(ctx context.Context, id service.Identity, userID uint, password string) error
}

func (m *mockAdminService) ListBookings(ctx context.Context, id service.Identity, status *models.Status) ([]models.Booking, error) {
	return m.listBookingsFn(ctx, id, status)
}
func (m *mockAdminService) ListUsers(ctx context.Context, id service.Identity) ([]models.User, error) {
	return m.listUsersFn(ctx, id)
}
func (m *mockAdminService) ListComedians(ctx context.Context, id service.Identity, status *models.Status) ([]models.User, error) {
	return m.listComediansFn(ctx, id, status)
}
func (m *mockAdminService) DeleteUser(ctx context.Context, id service.Identity, userID uint) error {
	return m.deleteFn(ctx, id, userID)
}
func (m *mockAdminService) SetUserRole(ctx context.Context, id service.Identity, userID uint, role models.Role) error {
	return m.roleFn(ctx, id, userID, role)
}
func (m *mockAdminService) ResetPassword(ctx context.Context, id service.Identity, userID uint, password string) error {
	return m.passwordFn(ctx, id, userID, password)
}

// --- Mock AuthService ---

type mockAuthService struct {
	signupFn func(ctx context.Context, in service.SignupInput) (*models.User, error)
	loginFn  func(ctx context.Context, email, password string) (*service.LoginResult, error)
}

func (m *mockAuthService) Signup(ctx context.Context, in service.SignupInput) (*models.User, error) {
	return m.signupFn(ctx, in)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	return m.loginFn(ctx, email, password)
}

// --- Mock UserService ---

type mockUserService struct {
	getFn    func(ctx context.Context, id service.Identity) (*models.User, error)
	updateFn func(ctx context.Context, id service.Identity, in service.UpdateProfileInput) (*models.User, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, id service.Identity) (*models.User, error) {
	return m.getFn(ctx, id)
}
func (m *mockUserService) UpdateProfile(ctx context.Context, id service.Identity, in service.UpdateProfileInput) (*models.User, error) {
	return m.updateFn(ctx, id, in)
}

var (
	alice = service.Identity{UserID: 2, Email: "alice@example.com", Role: models.RoleUser}
	admin = service.Identity{UserID: 1, Email: "admin@humorshub.com", Role: models.RoleAdmin}
)

// newContext builds an echo context with a JSON body and, when id is non-nil,
// a signed-in identity.
func newContext(method, target, body string, id *service.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = middleware.NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != nil {
		middleware.SetIdentity(c, *id)
	}
	return c, rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}
