package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/handlers"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type calcFunc func(ctx context.Context, date string) ([]models.AvailabilityView, error)

func (f calcFunc) Compute(ctx context.Context, date string) ([]models.AvailabilityView, error) {
	return f(ctx, date)
}

type specialties []models.Specialty

func (s specialties) GetSpecialties(ctx context.Context) ([]models.Specialty, error) { return s, nil }

type fakeBookingService struct {
	booking.BookingService
	admitted []models.Booking
	byEmail  map[string][]models.Booking
	failList bool
}

func (f *fakeBookingService) Admit(ctx context.Context, b models.Booking) (*models.AdmissionResult, error) {
	for _, prev := range f.admitted {
		if prev.AppointmentDate == b.AppointmentDate && prev.Email == b.Email && prev.Treatment == b.Treatment {
			return &models.AdmissionResult{Message: "You already have a booking on " + b.AppointmentDate}, nil
		}
	}
	f.admitted = append(f.admitted, b)
	return &models.AdmissionResult{Admitted: true, InsertedID: "66f1c2aa00000000000000aa"}, nil
}

func (f *fakeBookingService) GetPatientBookings(ctx context.Context, email string) ([]models.Booking, error) {
	if f.failList {
		return nil, errors.New("connection refused 10.0.0.5:27017")
	}
	return f.byEmail[email], nil
}

func (f *fakeBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	switch id {
	case "bad":
		return nil, booking.ErrInvalidBookingID
	case "66f1c2aa00000000000000aa":
		return &models.Booking{Treatment: "Cleaning"}, nil
	default:
		return nil, bookingRepo.ErrBookingNotFound
	}
}

func (f *fakeBookingService) CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntent, error) {
	return &models.PaymentIntent{ClientSecret: "pi_secret"}, nil
}

func (f *fakeBookingService) RecordPayment(ctx context.Context, p models.Payment) (string, error) {
	if p.BookingID == "missing" {
		return "", bookingRepo.ErrBookingNotFound
	}
	return "pay1", nil
}

type fakeUserService struct {
	user.UserService
	users    map[string]models.User
	tokens   *utils.TokenManager
	promoted []string
}

func (f *fakeUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, ok := f.users[email]
	return ok && u.IsAdmin(), nil
}

func (f *fakeUserService) IssueToken(ctx context.Context, email string) (string, error) {
	if _, ok := f.users[email]; !ok {
		return "", user.ErrUserNotFound
	}
	return f.tokens.GenerateToken(email)
}

func (f *fakeUserService) CreateUser(ctx context.Context, u models.User) (*models.CreateUserResult, error) {
	if strings.TrimSpace(u.Email) == "" {
		return nil, user.ErrInvalidEmail
	}
	return &models.CreateUserResult{Acknowledged: true, InsertedID: "u1"}, nil
}

func (f *fakeUserService) PromoteToAdmin(ctx context.Context, id string) (*models.RoleUpdateResult, error) {
	f.promoted = append(f.promoted, id)
	return &models.RoleUpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeDoctorService struct {
	doctor.DoctorService
}

func (fakeDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return []models.Doctor{{Name: "Dr. Rahman"}}, nil
}

type fixture struct {
	router   *gin.Engine
	bookings *fakeBookingService
	users    *fakeUserService
	tokens   *utils.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens, err := utils.NewTokenManager("s3cret", time.Hour)
	require.NoError(t, err)

	bookings := &fakeBookingService{byEmail: map[string][]models.Booking{
		"ann@x.io": {{Treatment: "Cleaning", Email: "ann@x.io"}},
	}}
	users := &fakeUserService{
		tokens: tokens,
		users: map[string]models.User{
			"ann@x.io":  {Email: "ann@x.io"},
			"root@x.io": {Email: "root@x.io", Role: models.RoleAdmin},
		},
	}
	inProcess := calcFunc(func(ctx context.Context, date string) ([]models.AvailabilityView, error) {
		return []models.AvailabilityView{{Name: "Cleaning", Slots: []string{"9AM", "11AM"}}}, nil
	})
	aggregation := calcFunc(func(ctx context.Context, date string) ([]models.AvailabilityView, error) {
		return nil, errors.New("aggregate: pipeline stage failed")
	})

	hb := &handlers.HandlerBundle{
		Tokens: tokens,
		Admins: users,
		Appointments: &handlers.AppointmentHandler{
			InProcess:   inProcess,
			Aggregation: aggregation,
			Specialties: specialties{{Name: "Cleaning"}},
		},
		Bookings: &handlers.BookingHandler{BookingService: bookings},
		Payments: &handlers.PaymentHandler{BookingService: bookings},
		Users:    &handlers.UserHandler{UserService: users},
		Doctors:  &handlers.DoctorHandler{DoctorService: fakeDoctorService{}},
		Health:   &handlers.HealthHandler{},
	}

	r := gin.New()
	RegisterRoutes(r, hb)
	return &fixture{router: r, bookings: bookings, users: users, tokens: tokens}
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAppointmentOptions(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/appointmentOptions?date=12%20Oct%202026", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var views []models.AvailabilityView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Equal(t, []string{"9AM", "11AM"}, views[0].Slots)

	w = f.do(http.MethodGet, "/appointmentSpecialty", "", "")
	assert.JSONEq(t, `[{"name":"Cleaning"}]`, w.Body.String())
}

func TestStorageFailureHidesDriverError(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/v2/appointmentOptions?date=x", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, w.Body.String(), "pipeline stage")
}

func TestJWTEndpoint(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/jwt?email=ann@x.io", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["accessToken"].(string)
	email, err := f.tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.io", email)

	w = f.do(http.MethodGet, "/jwt?email=ghost@x.io", "", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"accessToken":""}`, w.Body.String())
}

func TestBookingsListIsOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ann, _ := f.tokens.GenerateToken("ann@x.io")

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/bookings?email=ann@x.io", "", "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/bookings?email=bob@x.io", "", ann).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/bookings?email=ann@x.io", "", "forged").Code)

	w := f.do(http.MethodGet, "/bookings?email=ann@x.io", "", ann)
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 1)

	f.bookings.failList = true
	w = f.do(http.MethodGet, "/bookings?email=ann@x.io", "", ann)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestPostBooking(t *testing.T) {
	f := newFixture(t)
	body := `{"treatment":"Cleaning","email":"ann@x.io","appointmentDate":"12 Oct 2026","slot":"9AM","price":99}`

	w := f.do(http.MethodPost, "/bookings", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["admitted"])

	w = f.do(http.MethodPost, "/bookings", strings.Replace(body, "9AM", "11AM", 1), "")
	require.Equal(t, http.StatusOK, w.Code)
	result := decode(t, w)
	assert.Equal(t, false, result["admitted"])
	assert.Equal(t, "You already have a booking on 12 Oct 2026", result["message"])

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/bookings", `{"treatment":"Cleaning"}`, "").Code)
}

func TestGetBookingByID(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/bookings/66f1c2aa00000000000000aa", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/bookings/bad", "", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/bookings/66f1c2aa00000000000000ff", "", "").Code)
}

func TestAdminRoutes(t *testing.T) {
	f := newFixture(t)
	root, _ := f.tokens.GenerateToken("root@x.io")
	ann, _ := f.tokens.GenerateToken("ann@x.io")

	w := f.do(http.MethodGet, "/users/admin/root@x.io", "", "")
	assert.JSONEq(t, `{"isAdmin":true}`, w.Body.String())
	w = f.do(http.MethodGet, "/users/admin/ghost@x.io", "", "")
	assert.JSONEq(t, `{"isAdmin":false}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPut, "/users/admin/abc", "", "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPut, "/users/admin/abc", "", ann).Code)
	assert.Empty(t, f.users.promoted)

	w = f.do(http.MethodPut, "/users/admin/abc", "", root)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"abc"}, f.users.promoted)

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/doctors", "", ann).Code)
	w = f.do(http.MethodGet, "/doctors", "", root)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. Rahman")
}

func TestPostUser(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/users", `{"name":"Ann","email":"ann@x.io"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", decode(t, w)["insertedId"])

	w = f.do(http.MethodPost, "/users", `{"email":"   "}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid user", decode(t, w)["message"])
}

func TestPayments(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/create-payment-intent", `{"price":99}`, "")
	assert.JSONEq(t, `{"clientSecret":"pi_secret"}`, w.Body.String())
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/create-payment-intent", `{}`, "").Code)

	w = f.do(http.MethodPost, "/payments", `{"bookingId":"b1","transactionId":"pi_1","price":99}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pay1", decode(t, w)["insertedId"])

	w = f.do(http.MethodPost, "/payments", `{"bookingId":"missing","transactionId":"pi_1"}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBannerAndHealth(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")

	w = f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
