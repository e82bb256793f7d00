// Package jsoncodec registers a gRPC codec that frames messages as JSON.
//
// The wire types under internal/rpc are plain Go structs, so the service runs
// without generated protobuf marshaling; clients opt in per call with
// grpc.CallContentSubtype(jsoncodec.Name) or per connection with
// grpc.WithDefaultCallOptions. Servers pick the codec automatically from the
// "application/grpc+json" content subtype.
package jsoncodec

import (
	json "github.com/goccy/go-json"
	"google.golang.org/grpc/encoding"
)

// Name is the content subtype the codec is registered under.
const Name = "json"

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (codec) Name() string { return Name }
