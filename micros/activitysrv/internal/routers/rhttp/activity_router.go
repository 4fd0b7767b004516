package rhttp

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/handlers/hhttp"
)

func ConfigureActivityRouter(fa *fiber.App, handler *hhttp.ActivityHandler) {
	actGrp := fa.Group("/api/activity")
	actGrp.Post("/process", handler.HandleProcessActivity)
}
