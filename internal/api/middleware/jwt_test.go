package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/repository/mock"
	"github.com/delvaty/construccion-easy/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func issueToken(t *testing.T, userID uint, username string, expire time.Duration) string {
	t.Helper()

	claims := &types.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
	assert.NoError(t, err)
	return token
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(), func(c *gin.Context) {
		claims := c.MustGet("claims").(*types.Claims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return r
}

func TestJWTAuthMiddleware_BearerHeader(t *testing.T) {
	jwtKey = []byte("test-secret")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 1, "alice", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
}

func TestJWTAuthMiddleware_Cookie(t *testing.T) {
	jwtKey = []byte("test-secret")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: issueToken(t, 2, "bob", time.Hour)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_MissingToken(t *testing.T) {
	jwtKey = []byte("test-secret")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	jwtKey = []byte("test-secret")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtKey = []byte("test-secret")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 1, "alice", -time.Minute))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_WrongKey(t *testing.T) {
	jwtKey = []byte("test-secret")
	token := issueToken(t, 1, "alice", time.Hour)
	jwtKey = []byte("rotated-secret")
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateToken_ReportsAdminStatus(t *testing.T) {
	jwtKey = []byte("test-secret")

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockUser.EXPECT().IsAdmin(uint(2)).Return(true, nil)

	token, isAdmin, err := GenerateToken(2, "root", time.Hour, mockUser)
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

var _ repository.UserRepo = (*mock.MockUserRepo)(nil)
