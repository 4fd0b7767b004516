package actsrv

import (
	"github.com/sweemingdow/sdact/external/emodel/actmodel"
)

type (
	ActivityService interface {
		// 确认收到活动上报, 结果与内容无关
		ProcessActivity(payload actmodel.ActivityPayload) actmodel.ActivityResult
	}

	activityService struct {
	}
)

func NewActivityService() ActivityService {
	return &activityService{}
}

func (as *activityService) ProcessActivity(_ actmodel.ActivityPayload) actmodel.ActivityResult {
	return actmodel.Processed()
}
