package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaxbook/config"
	"vaxbook/database/repository"
	"vaxbook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	repos  *repository.Repositories
}

func newTestServer(t *testing.T, perMinute int) *testServer {
	t.Helper()
	repos := repository.NewMemory()
	_, err := repository.SeedVaccines(context.Background(), repos.Vaccines)
	require.NoError(t, err)
	cfg := &config.Config{TokenTTL: time.Hour, MaxRequestsPerMin: perMinute, AllowedOrigins: []string{"*"}}
	return &testServer{t: t, router: NewServer(repos, cfg, zap.NewNop()), repos: repos}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(email string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/register-customer", "", models.Registration{Name: "Parent", Email: email, Password: "secret"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	w = s.do(http.MethodPost, "/api/auth/login", "", models.Credentials{Email: email, Password: "secret"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(s.t, resp.Token)
	return resp.Token
}

func msgOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Msg
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, 0)
	w := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestVaccinesArePublic(t *testing.T) {
	s := newTestServer(t, 0)
	w := s.do(http.MethodGet, "/api/vaccines/get-vaccines", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Vaccine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.NotEmpty(t, list)

	w = s.do(http.MethodGet, "/api/vaccines/get-vaccine/"+list[0].ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/vaccines/get-vaccine/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Vaccine not found", msgOf(t, w))
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t, 0)
	s.login("mai@example.com")

	w := s.do(http.MethodPost, "/api/auth/login", "", models.Credentials{Email: "mai@example.com", Password: "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", msgOf(t, w))

	w = s.do(http.MethodPost, "/api/auth/register-customer", "", models.Registration{Name: "Again", Email: "mai@example.com", Password: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", msgOf(t, w))
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t, 0)
	for _, path := range []string{"/api/children/get-children", "/api/appointments/get-appointments"} {
		w := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "No token, authorization denied", msgOf(t, w))

		w = s.do(http.MethodGet, path, "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestBearerTokenAccepted(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.login("mai@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/children/get-children", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestChildAndAppointmentFlow(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.login("mai@example.com")
	other := s.login("lan@example.com")

	vaccines, err := s.repos.Vaccines.List(context.Background())
	require.NoError(t, err)
	vaccine := vaccines[0]

	w := s.do(http.MethodPost, "/api/children/add-child", token, models.NewChild{Name: "An", BirthDate: "2020-02-01", Gender: "male"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var child models.Child
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &child))

	w = s.do(http.MethodGet, "/api/children/get-children", other, nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(http.MethodPost, "/api/appointments/book-appointment", token, models.BookingRequest{
		ChildID: child.ID, VaccineID: vaccine.ID, Date: "2030-10-15T09:00:00.000Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, child.ID, raw["childId"], "book returns bare references")
	assert.Equal(t, "pending", raw["status"])
	apptID, _ := raw["_id"].(string)
	require.NotEmpty(t, apptID)

	w = s.do(http.MethodGet, "/api/appointments/get-appointments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.True(t, list[0].Child.Populated())
	assert.Equal(t, "An", list[0].ChildName())
	assert.Equal(t, vaccine.Name, list[0].VaccineName())

	w = s.do(http.MethodPut, "/api/appointments/cancel-appointment/"+apptID, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPut, "/api/appointments/cancel-appointment/"+apptID, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"canceled"`)

	w = s.do(http.MethodPut, "/api/appointments/cancel-appointment/"+apptID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only pending appointments can be canceled", msgOf(t, w))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, 2)
	codes := []int{}
	for i := 0; i < 3; i++ {
		codes = append(codes, s.do(http.MethodGet, "/health", "", nil).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t, 0)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
