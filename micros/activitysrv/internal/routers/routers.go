package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lesismal/arpc"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/handlers/hhttp"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/handlers/hrpc"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/routers/rhttp"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/routers/rrpc"
	"github.com/sweemingdow/sdact/pkg/routebinder"
)

type activityServerRouteBinder struct {
	activityRpcHandler  *hrpc.ActivityHandler
	activityHttpHandler *hhttp.ActivityHandler
}

func NewActivityServerRouteBinder(
	activityRpcHandler *hrpc.ActivityHandler,
	activityHttpHandler *hhttp.ActivityHandler,
) routebinder.AppRouterBinder {
	return &activityServerRouteBinder{
		activityRpcHandler:  activityRpcHandler,
		activityHttpHandler: activityHttpHandler,
	}
}

func (asr *activityServerRouteBinder) BindFiber(fa *fiber.App) {
	rhttp.ConfigureActivityRouter(fa, asr.activityHttpHandler)
}

func (asr *activityServerRouteBinder) BindArpc(srv *arpc.Server) {
	rrpc.ConfigureActivityRouter(srv, asr.activityRpcHandler)
}
