package protocol

import (
	"google.golang.org/grpc/encoding"

	"github.com/bastionctf/bastion/errors"
)

// CodecName identifies the hand-written wire encoding to gRPC.
const CodecName = "bastion"

// Codec marshals the Message types in this package for gRPC transport.
// Install it with grpc.ForceServerCodec on the server and
// grpc.ForceCodec on client calls.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, errors.Newf("codec: cannot marshal %T", v)
	}
	return m.marshalAppend(nil), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return errors.Newf("codec: cannot unmarshal into %T", v)
	}
	return m.unmarshal(data)
}
