package hhttp

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sweemingdow/sdact/external/emodel/actmodel"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/services/actsrv"
)

type ActivityHandler struct {
	as actsrv.ActivityService
}

func NewActivityHandler(as actsrv.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		as: as,
	}
}

// 活动上报, 任意json对象
func (ah *ActivityHandler) HandleProcessActivity(c *fiber.Ctx) error {
	var payload actmodel.ActivityPayload
	if err := c.BodyParser(&payload); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result := ah.as.ProcessActivity(payload)

	return c.Status(fiber.StatusOK).SendString(result.Msg)
}
