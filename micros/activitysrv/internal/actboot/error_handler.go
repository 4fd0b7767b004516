package actboot

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sweemingdow/sdact/pkg/applog"
	"github.com/sweemingdow/sdact/pkg/wrapper"
)

// HttpErrorHandler answers transport level failures (bad body, unknown route,
// recovered panic) with the general error envelope.
func HttpErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	lg := applog.AppLogger()
	if code >= fiber.StatusInternalServerError {
		lg.Error().Stack().Err(err).Msgf("fiber handle failed")
	} else {
		lg.Debug().Err(err).Int("status", code).Msg("fiber rejected request")
	}

	return c.Status(code).JSON(wrapper.GeneralErr(err))
}
