package rpcact

import (
	"time"

	"github.com/lesismal/arpc"
	"github.com/sweemingdow/sdact/external/emodel/actmodel"
	"github.com/sweemingdow/sdact/pkg/wrapper"
)

const (
	ProcessActivityPath    = "/activity/process"
	ProcessActivityTimeout = 800 * time.Millisecond
)

type ActivityRpcProvider interface {
	ProcessActivity(req wrapper.RpcReqWrapper[actmodel.ActivityPayload]) (wrapper.RpcRespWrapper[actmodel.ActivityResult], error)
}

type activityRpcProvider struct {
	cli *arpc.Client
}

func NewActivityRpcProvider(cli *arpc.Client) ActivityRpcProvider {
	return &activityRpcProvider{
		cli: cli,
	}
}

func (arp *activityRpcProvider) ProcessActivity(req wrapper.RpcReqWrapper[actmodel.ActivityPayload]) (wrapper.RpcRespWrapper[actmodel.ActivityResult], error) {
	var resp wrapper.RpcRespWrapper[actmodel.ActivityResult]
	if err := arp.cli.Call(ProcessActivityPath, req, &resp, ProcessActivityTimeout); err != nil {
		return resp, err
	}

	return resp, nil
}
