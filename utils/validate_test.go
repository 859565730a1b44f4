package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type signupModel struct {
	Name    string `json:"name" validate:"min=2" message:"Name is too short"`
	Email   string `json:"email" validate:"email"`
	Website string `json:"website" validate:"omitempty,url"`
	Plan    string `json:"plan" default:"free" validate:"oneof=free pro"`
}

func TestValidate(t *testing.T) {
	err := Validate(&signupModel{Name: "Al", Email: "al@x.com", Plan: "free"})
	assert.NoError(t, err)

	err = Validate(&signupModel{Name: "A", Email: "al", Website: "nope", Plan: "gold"})
	require.Error(t, err)
	detail, ok := err.(*ErrorDetail)
	require.True(t, ok)
	require.Len(t, *detail, 4)

	byField := map[string]*ErrorDetailElement{}
	for _, element := range *detail {
		byField[element.Field] = element
	}
	assert.Equal(t, "Name is too short", byField["name"].Message)
	assert.Equal(t, "min", byField["name"].Tag)
	assert.Equal(t, "2", byField["name"].Value)
	assert.Equal(t, "Invalid email format", byField["email"].Message)
	assert.Equal(t, "Invalid URL format", byField["website"].Message)
	assert.Equal(t, "invalid plan", byField["plan"].Message)
	assert.Contains(t, detail.Error(), "invalid name")
}

func validateBodyApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: MyErrorHandler})
	app.Post("/", func(c *fiber.Ctx) error {
		var body signupModel
		if err := ValidateBody(c, &body); err != nil {
			return err
		}
		return c.JSON(body)
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, string) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestValidateBody(t *testing.T) {
	app := validateBodyApp()

	status, data := post(t, app, `{"name": "Al", "email": "al@x.com"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"name": "Al", "email": "al@x.com", "website": "", "plan": "free"}`, data)

	status, data = post(t, app, `{"name": "A", "email": "al@x.com"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": [{"field": "name", "tag": "min", "value": "2", "message": "Name is too short"}]}`, data)

	status, data = post(t, app, `{"name": ["Al"], "email": "al@x.com"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": [{"field": "name", "tag": "type", "value": "array", "message": "Expected string, received array"}]}`, data)

	status, data = post(t, app, `{"name": null, "email": "al", "plan": 3}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": [
		{"field": "name", "tag": "type", "value": "null", "message": "Expected string, received null"},
		{"field": "plan", "tag": "type", "value": "number", "message": "Expected string, received number"},
		{"field": "email", "tag": "email", "value": "", "message": "Invalid email format"}
	]}`, data)

	status, data = post(t, app, `[1, 2]`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": "Invalid JSON body"}`, data)

	status, data = post(t, app, `not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": "Invalid JSON body"}`, data)
}

func TestValidateBodyEmpty(t *testing.T) {
	status, data := post(t, validateBodyApp(), ``)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, data, `"field":"name"`)
	assert.Contains(t, data, `"field":"email"`)
}

func TestJSONKind(t *testing.T) {
	for raw, kind := range map[string]string{
		`"Al"`:  "string",
		` null`: "null",
		`true`:  "boolean",
		`false`: "boolean",
		`[1]`:   "array",
		`{}`:    "object",
		`-1.5`:  "number",
		``:      "undefined",
	} {
		assert.Equal(t, kind, jsonKind([]byte(raw)), raw)
	}
}
