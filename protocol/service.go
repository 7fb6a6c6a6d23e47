package protocol

import (
	"context"

	"google.golang.org/grpc"
)

// SyncServiceName is the fully qualified gRPC service name.
const SyncServiceName = "bastion.sync.Sync"

// SyncServer is the server API for the Sync service.
type SyncServer interface {
	Ping(ctx context.Context, req *PingRequest) (*PingReply, error)
	GetChallenges(ctx context.Context, req *Empty) (*ChallengeData, error)
	DiffChallenges(ctx context.Context, req *ChallengeData) (*ChallengeDataPatch, error)
	GetAttachmentByHash(ctx context.Context, req *GetAttachmentByHashRequest) (*GetAttachmentByHashReply, error)
}

// RegisterSyncServer registers srv with the gRPC server. The server
// must be constructed with grpc.ForceServerCodec(Codec{}).
func RegisterSyncServer(s grpc.ServiceRegistrar, srv SyncServer) {
	s.RegisterService(&SyncServiceDesc, srv)
}

func syncPingHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + SyncServiceName + "/Ping",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func syncGetChallengesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).GetChallenges(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + SyncServiceName + "/GetChallenges",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).GetChallenges(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func syncDiffChallengesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChallengeData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).DiffChallenges(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + SyncServiceName + "/DiffChallenges",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).DiffChallenges(ctx, req.(*ChallengeData))
	}
	return interceptor(ctx, in, info, handler)
}

func syncGetAttachmentByHashHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAttachmentByHashRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).GetAttachmentByHash(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + SyncServiceName + "/GetAttachmentByHash",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).GetAttachmentByHash(ctx, req.(*GetAttachmentByHashRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SyncServiceDesc wires the Sync service methods to their handlers.
var SyncServiceDesc = grpc.ServiceDesc{
	ServiceName: SyncServiceName,
	HandlerType: (*SyncServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: syncPingHandler},
		{MethodName: "GetChallenges", Handler: syncGetChallengesHandler},
		{MethodName: "DiffChallenges", Handler: syncDiffChallengesHandler},
		{MethodName: "GetAttachmentByHash", Handler: syncGetAttachmentByHashHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "protocol/sync.proto",
}

// SyncClient calls the Sync service over a client connection.
type SyncClient struct {
	cc grpc.ClientConnInterface
}

// NewSyncClient returns a client for the Sync service.
func NewSyncClient(cc grpc.ClientConnInterface) *SyncClient {
	return &SyncClient{cc: cc}
}

func (c *SyncClient) invoke(ctx context.Context, method string, req, reply Message, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, "/"+SyncServiceName+"/"+method, req, reply, opts...)
}

func (c *SyncClient) Ping(ctx context.Context, req *PingRequest, opts ...grpc.CallOption) (*PingReply, error) {
	out := new(PingReply)
	if err := c.invoke(ctx, "Ping", req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SyncClient) GetChallenges(ctx context.Context, req *Empty, opts ...grpc.CallOption) (*ChallengeData, error) {
	out := new(ChallengeData)
	if err := c.invoke(ctx, "GetChallenges", req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SyncClient) DiffChallenges(ctx context.Context, req *ChallengeData, opts ...grpc.CallOption) (*ChallengeDataPatch, error) {
	out := new(ChallengeDataPatch)
	if err := c.invoke(ctx, "DiffChallenges", req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SyncClient) GetAttachmentByHash(ctx context.Context, req *GetAttachmentByHashRequest, opts ...grpc.CallOption) (*GetAttachmentByHashReply, error) {
	out := new(GetAttachmentByHashReply)
	if err := c.invoke(ctx, "GetAttachmentByHash", req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
