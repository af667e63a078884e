package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devhive/backend/internal/service"
	"github.com/devhive/backend/internal/testhelpers"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.AuthService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	devSvc := service.NewDevService(db)

	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router.Group("/api"), NewAuthHandler(authSvc), NewDevHandler(devSvc), nil, authSvc, nil)

	return router, authSvc, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signupAndSignin creates a profile and returns its id and access token
func signupAndSignin(t *testing.T, router *gin.Engine, username string) (string, string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/devs/signup", gin.H{
		"username":         username,
		"firstname":        "Ada",
		"password":         "longpassword",
		"confirm_password": "longpassword",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/devs/signin", gin.H{
		"username": username,
		"password": "longpassword",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	return data["id"].(string), body["accessToken"].(string)
}
