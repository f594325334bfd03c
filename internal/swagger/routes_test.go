package swagger

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"admindash/internal/env"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocJSONServesRegisteredDoc(t *testing.T) {
	env.VERSION = "1.2.3"
	t.Cleanup(func() { env.VERSION = "" })

	app := fiber.New()
	Register(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/docs/doc.json", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "/", doc["basePath"])
	assert.Equal(t, "1.2.3", doc["info"].(map[string]any)["version"])
	assert.Contains(t, doc["paths"].(map[string]any), "/dashboard/auth/login")
}

func TestUIPage(t *testing.T) {
	app := fiber.New()
	Register(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
