package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) *JWTService {
	s := NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-with-at-least-32-chars",
		Issuer:                "assistencia-os",
		AccessTokenExpiration: time.Hour,
	})
	s.now = func() time.Time { return now }
	return s
}

func TestJWTService_RoundTrip(t *testing.T) {
	now := time.Now()
	s := newTestService(now)

	token, expiresAt, err := s.GenerateToken(entities.Session{UID: "u1", Email: "ana@loja.com", Role: entities.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	session, err := s.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UID)
	assert.Equal(t, "ana@loja.com", session.Email)
	assert.True(t, session.IsAdmin())
}

func TestJWTService_Errors(t *testing.T) {
	now := time.Now()
	s := newTestService(now)

	_, _, err := s.GenerateToken(entities.Session{})
	assert.ErrorIs(t, err, ErrMissingUserID)

	token, _, err := s.GenerateToken(entities.Session{UID: "u1", Role: entities.RoleTecnico})
	require.NoError(t, err)

	later := newTestService(now.Add(2 * time.Hour))
	_, err = later.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	other := NewJWTService(config.JWTConfig{Secret: "another-secret-key-with-32-chars!!", AccessTokenExpiration: time.Hour})
	_, err = other.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNonHMAC(t *testing.T) {
	s := newTestService(time.Now())
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UID: "u1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = s.ValidateAccessToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_UnknownRoleIsTecnico(t *testing.T) {
	s := newTestService(time.Now())
	token, _, err := s.GenerateToken(entities.Session{UID: "u2", Role: "gerente"})
	require.NoError(t, err)

	session, err := s.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleTecnico, session.Role)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestService(time.Now())
	token, _, err := s.GenerateToken(entities.Session{UID: "u1", Email: "a@b.c", Role: entities.RoleTecnico})
	require.NoError(t, err)

	router := gin.New()
	router.Use(Middleware(s))
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": SessionFrom(c).UID})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"uid":"u1"`)
			} else {
				assert.Contains(t, w.Body.String(), `"code":"UNAUTHENTICATED"`)
			}
		})
	}
}

func TestSessionFrom_Default(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, SessionFrom(c).IsAuthenticated())

	WithSession(c, entities.Session{UID: "x"})
	assert.Equal(t, "x", SessionFrom(c).UID)
}
