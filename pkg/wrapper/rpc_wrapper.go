package wrapper

import "errors"

type RpcReqWrapper[T any] struct {
	ReqId string `json:"reqId,omitempty"`
	Req   T      `json:"req"`
}

type RpcRespWrapper[T any] struct {
	Code string `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data T      `json:"data,omitempty"`
}

func CreateRpcReq[T any](reqId string, req T) RpcReqWrapper[T] {
	return RpcReqWrapper[T]{
		ReqId: reqId,
		Req:   req,
	}
}

func RpcOk[T any](data T) RpcRespWrapper[T] {
	return RpcRespWrapper[T]{
		Code: Ok,
		Data: data,
	}
}

func RpcErr(err error) RpcRespWrapper[any] {
	return RpcRespWrapper[any]{
		Code: GenErr,
		Msg:  err.Error(),
	}
}

func (rrw RpcRespWrapper[T]) IsOK() bool {
	return rrw.Code == Ok
}

// OkOrErr turns a non-ok response into an error carrying the remote message.
func (rrw RpcRespWrapper[T]) OkOrErr() (T, error) {
	if rrw.IsOK() {
		return rrw.Data, nil
	}

	var zero T
	if rrw.Msg == "" {
		return zero, errors.New("rpc response not ok, code=" + rrw.Code)
	}

	return zero, errors.New(rrw.Msg)
}
