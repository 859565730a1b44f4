package apis

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http/httptest"
	_ "referral_backend/docs"
	"referral_backend/utils"
	"testing"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.MyErrorHandler})
	RegisterRoutes(app)
	return app
}

func TestIndex(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/api", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, string(data), `"name": "referral_backend"`)
}

func TestRootRedirect(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/api", resp.Header.Get(fiber.HeaderLocation))
}

func TestSwaggerDoc(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/docs/doc.json", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "/referral")
}

func TestUnknownRoute(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest("GET", "/api/referrals", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
