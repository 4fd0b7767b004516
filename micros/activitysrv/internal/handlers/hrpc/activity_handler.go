package hrpc

import (
	"github.com/lesismal/arpc"
	"github.com/pkg/errors"
	"github.com/sweemingdow/sdact/external/emodel/actmodel"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/services/actsrv"
	"github.com/sweemingdow/sdact/pkg/applog"
	"github.com/sweemingdow/sdact/pkg/wrapper"
)

const (
	ActivityLogger = "activityLogger"
)

type ActivityHandler struct {
	as actsrv.ActivityService
}

func NewActivityHandler(as actsrv.ActivityService) *ActivityHandler {
	applog.AddModuleLogger(ActivityLogger)

	return &ActivityHandler{
		as: as,
	}
}

func (ah *ActivityHandler) HandleProcessActivity(c *arpc.Context) {
	var req wrapper.RpcReqWrapper[actmodel.ActivityPayload]
	if err := c.Bind(&req); err != nil {
		lg := applog.GetLogger(ActivityLogger)
		lg.Warn().Err(err).Msg("bind process activity req failed")

		if we := c.Write(wrapper.RpcErr(err)); we != nil {
			lg.Error().Stack().Err(errors.WithStack(we)).Msg("write process activity err resp failed")
		}
		return
	}

	lg := applog.GetLogger(ActivityLogger).With().Str("reqId", req.ReqId).Logger()
	lg.Trace().Int("fields", len(req.Req)).Msg("handle process activity start")

	resp := wrapper.RpcOk(ah.as.ProcessActivity(req.Req))

	if err := c.Write(resp); err != nil {
		lg.Error().Stack().Err(errors.WithStack(err)).Msg("write process activity resp failed")
		return
	}

	lg.Trace().Msg("handle process activity completed")
}
