package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/config"
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"Italian"}, splitCSV("Italian"))
	assert.Equal(t, []string{"Italian", "Thai"}, splitCSV(" Italian , Thai "))
	assert.Nil(t, splitCSV(" , ,"))
}

func TestOptInt(t *testing.T) {
	v, err := optInt("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = optInt("42")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	_, err = optInt("many")
	assert.Error(t, err)
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Validation happens before the service is touched, so a nil service is
// safe for these cases.

func TestSearchRejectsBadCapacityParams(t *testing.T) {
	h := NewRestaurantHandler(nil)
	for _, target := range []string{
		"/v1/restaurants?min_capacity=lots",
		"/v1/restaurants?max_capacity=few",
	} {
		c, rec := newContext(http.MethodGet, target, "")
		require.NoError(t, h.Search(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestAvailabilityValidation(t *testing.T) {
	h := NewReservationHandler(nil)

	// Bad restaurant id.
	c, rec := newContext(http.MethodGet, "/v1/restaurants/x/availability?datetime=2026-09-16+19:00&party_size=2", "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	require.NoError(t, h.Availability(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing datetime.
	c, rec = newContext(http.MethodGet, "/v1/restaurants/1/availability?party_size=2", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Availability(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Non-positive party size.
	c, rec = newContext(http.MethodGet, "/v1/restaurants/1/availability?datetime=2026-09-16+19:00&party_size=0", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Availability(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservationValidation(t *testing.T) {
	h := NewReservationHandler(nil)

	bodies := []string{
		`{not json`,
		`{}`,
		`{"restaurant_id":1,"datetime_iso":"2026-09-16 19:00","party_size":0,"user_name":"A","contact":"c"}`,
		`{"restaurant_id":1,"datetime_iso":"","party_size":2,"user_name":"A","contact":"c"}`,
		`{"restaurant_id":1,"datetime_iso":"2026-09-16 19:00","party_size":2,"user_name":"","contact":"c"}`,
	}
	for _, body := range bodies {
		c, rec := newContext(http.MethodPost, "/v1/reservations", body)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestListRequiresContact(t *testing.T) {
	h := NewReservationHandler(nil)
	c, rec := newContext(http.MethodGet, "/v1/reservations", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func testAuthConfig(t *testing.T) config.Config {
	t.Helper()
	hash, err := utils.HashClientSecret("s3cret", 4) // low cost keeps the test fast
	require.NoError(t, err)
	return config.Config{
		JWTSecret:       "test-secret",
		AccessTTLMin:    15,
		APIClientID:     "orchestrator",
		APIClientSecret: hash,
	}
}

func TestTokenIssuesAccessToken(t *testing.T) {
	h := NewAuthHandler(testAuthConfig(t))

	c, rec := newContext(http.MethodPost, "/v1/auth/token",
		`{"client_id":"orchestrator","client_secret":"s3cret"}`)
	require.NoError(t, h.Token(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	assert.Contains(t, rec.Body.String(), "Bearer")
}

func TestTokenRejectsBadCredentials(t *testing.T) {
	h := NewAuthHandler(testAuthConfig(t))

	cases := []struct {
		body string
		want int
	}{
		{`{"client_id":"orchestrator","client_secret":"wrong"}`, http.StatusUnauthorized},
		{`{"client_id":"someone-else","client_secret":"s3cret"}`, http.StatusUnauthorized},
		{`{"client_id":"","client_secret":""}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		c, rec := newContext(http.MethodPost, "/v1/auth/token", tc.body)
		require.NoError(t, h.Token(c))
		assert.Equal(t, tc.want, rec.Code, tc.body)
	}
}
