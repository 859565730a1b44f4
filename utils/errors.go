package utils

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request. Error is either a
// message string or an ErrorDetail listing the invalid fields.
type ErrorResponse struct {
	Error any `json:"error"`
}

type HttpError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e *HttpError) Error() string {
	return e.Message
}

func BadRequest(messages ...string) *HttpError {
	message := "Bad Request"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    400,
		Message: message,
	}
}

func TooManyRequests(messages ...string) *HttpError {
	message := "Too Many Requests"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    429,
		Message: message,
	}
}

func InternalServerError(messages ...string) *HttpError {
	message := "Internal Server Error"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    500,
		Message: message,
	}
}

// MyErrorHandler never exposes downstream errors: anything that is not a
// validation or http error is logged and answered with a generic 500.
func MyErrorHandler(ctx *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	code := 500
	var response ErrorResponse

	switch e := err.(type) {
	case *ErrorDetail:
		code = 400
		response.Error = e
	case *HttpError:
		code = e.Code
		response.Error = e.Message
	case *fiber.Error:
		code = e.Code
		response.Error = e.Message
	default:
		Logger.Error(
			"request failed",
			zap.String("method", ctx.Method()),
			zap.String("origin_url", ctx.OriginalURL()),
			zap.Error(err),
		)
		response.Error = InternalServerError().Message
	}

	return ctx.Status(code).JSON(&response)
}
