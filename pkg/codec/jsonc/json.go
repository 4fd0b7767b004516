package jsonc

import (
	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

func Fmt(v any) ([]byte, error) {
	return api.Marshal(v)
}

func Parse(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// Codec satisfies arpc's codec.Codec so rpc bodies share the http json settings.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	return api.Unmarshal(data, v)
}
