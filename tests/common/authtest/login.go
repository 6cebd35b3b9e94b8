//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"resource-desk/internal/handler/dto/request"
	"resource-desk/tests/common/dbtest"
	"resource-desk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginResponse mirrors the login endpoint body for decoding in tests.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.AccessToken, "Access token missing from login response")

	return res.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
