package wrapper

import "github.com/sweemingdow/sdact/pkg/codec/jsonc"

const (
	Ok     = "1"
	GenErr = "0"
)

type HttpRespWrapper[T any] struct {
	Code    string `json:"code,omitempty"`
	SubCode string `json:"subCode,omitempty"`
	Msg     string `json:"msg,omitempty"`
	Data    T      `json:"data,omitempty"`
}

func GeneralErr(err error) HttpRespWrapper[any] {
	return HttpRespWrapper[any]{
		Code: GenErr,
		Msg:  err.Error(),
	}
}

func (hrw HttpRespWrapper[T]) IsOK() bool {
	return hrw.Code == Ok
}

func (hrw HttpRespWrapper[T]) IsGeneralErr() bool {
	return hrw.Code == GenErr
}

func ParseResp[T any](respBuf []byte, vp *HttpRespWrapper[T]) error {
	if err := jsonc.Parse(respBuf, vp); err != nil {
		return err
	}

	return nil
}
