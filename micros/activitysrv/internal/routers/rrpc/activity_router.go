package rrpc

import (
	"github.com/lesismal/arpc"
	"github.com/sweemingdow/sdact/external/erpc/rpcact"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/handlers/hrpc"
)

func ConfigureActivityRouter(srv *arpc.Server, handler *hrpc.ActivityHandler) {
	srv.Handler.Handle(rpcact.ProcessActivityPath, handler.HandleProcessActivity)
}
