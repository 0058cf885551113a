package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/oops"
)

const LocRequestID = "reqid"

// ErrorHandler is the fiber.Config.ErrorHandler for the whole app. Anything
// that is not a *fiber.Error or *APIError becomes a generic 500; the real
// error is only logged.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Errors != nil {
			return c.Status(apiErr.Status).JSON(ErrorResponse{
				Success:   false,
				Message:   apiErr.Message,
				ErrorCode: apiErr.Code,
				Errors:    apiErr.Errors,
			})
		}
		return JsonErrorCode(c, apiErr.Status, apiErr.Code, apiErr.Message)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= 500 {
			logInternal(c, err)
			return JsonError(c, fe.Code, fiber.ErrInternalServerError.Message)
		}
		return JsonError(c, fe.Code, fe.Message)
	}

	logInternal(c, err)
	return JsonError(c, fiber.StatusInternalServerError, fiber.ErrInternalServerError.Message)
}

func logInternal(c *fiber.Ctx, err error) {
	reqID, _ := c.Locals(LocRequestID).(string)
	if oe, ok := oops.AsOops(err); ok {
		log.Printf("[ERROR] id=%s %s %s code=%s ctx=%v: %v", reqID, c.Method(), c.OriginalURL(), oe.Code(), oe.Context(), err)
		return
	}
	log.Printf("[ERROR] id=%s %s %s: %v", reqID, c.Method(), c.OriginalURL(), err)
}
