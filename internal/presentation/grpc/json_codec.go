package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The scoring RPCs exchange plain JSON structs rather than protobuf
// messages, so the server registers a minimal codec under the "json"
// sub-content-type. Clients must ask for it via CallContentSubtype.
type jsonCodec struct{}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
