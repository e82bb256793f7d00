package userpb

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names for interceptors and clients.
const (
	UserService_GetUserProfile_FullMethodName         = "/user.UserService/GetUserProfile"
	UserService_GetUserActivityHistory_FullMethodName = "/user.UserService/GetUserActivityHistory"
	UserService_UpdateUserPreferences_FullMethodName  = "/user.UserService/UpdateUserPreferences"
	UserService_TrackUserActivity_FullMethodName      = "/user.UserService/TrackUserActivity"
)

// UserServiceServer is the server API for the user registry.
type UserServiceServer interface {
	// GetUserProfile returns a single profile or NotFound.
	GetUserProfile(context.Context, *UserRequest) (*UserProfileResponse, error)
	// GetUserActivityHistory streams activity entries, newest first.
	GetUserActivityHistory(*UserHistoryRequest, UserService_GetUserActivityHistoryServer) error
	// UpdateUserPreferences consumes a stream of preference updates and closes
	// with the applied count.
	UpdateUserPreferences(UserService_UpdateUserPreferencesServer) error
	// TrackUserActivity turns a stream of activity events into a stream of
	// insights.
	TrackUserActivity(UserService_TrackUserActivityServer) error
}

// RegisterUserServiceServer registers the implementation with a gRPC server.
func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserService_ServiceDesc, srv)
}

// UserService_GetUserActivityHistoryServer is the server side of the history
// stream.
type UserService_GetUserActivityHistoryServer interface {
	Send(*UserActivityResponse) error
	grpc.ServerStream
}

type userServiceGetUserActivityHistoryServer struct {
	grpc.ServerStream
}

func (x *userServiceGetUserActivityHistoryServer) Send(m *UserActivityResponse) error {
	return x.ServerStream.SendMsg(m)
}

// UserService_UpdateUserPreferencesServer is the server side of the batch
// preference stream.
type UserService_UpdateUserPreferencesServer interface {
	SendAndClose(*UpdatePreferencesResponse) error
	Recv() (*UserPreferenceRequest, error)
	grpc.ServerStream
}

type userServiceUpdateUserPreferencesServer struct {
	grpc.ServerStream
}

func (x *userServiceUpdateUserPreferencesServer) SendAndClose(m *UpdatePreferencesResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *userServiceUpdateUserPreferencesServer) Recv() (*UserPreferenceRequest, error) {
	m := new(UserPreferenceRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// UserService_TrackUserActivityServer is the server side of the duplex
// tracking stream.
type UserService_TrackUserActivityServer interface {
	Send(*UserInsightResponse) error
	Recv() (*UserActivityEvent, error)
	grpc.ServerStream
}

type userServiceTrackUserActivityServer struct {
	grpc.ServerStream
}

func (x *userServiceTrackUserActivityServer) Send(m *UserInsightResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *userServiceTrackUserActivityServer) Recv() (*UserActivityEvent, error) {
	m := new(UserActivityEvent)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _UserService_GetUserProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).GetUserProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserService_GetUserProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).GetUserProfile(ctx, req.(*UserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserService_GetUserActivityHistory_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(UserHistoryRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UserServiceServer).GetUserActivityHistory(m, &userServiceGetUserActivityHistoryServer{ServerStream: stream})
}

func _UserService_UpdateUserPreferences_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(UserServiceServer).UpdateUserPreferences(&userServiceUpdateUserPreferencesServer{ServerStream: stream})
}

func _UserService_TrackUserActivity_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(UserServiceServer).TrackUserActivity(&userServiceTrackUserActivityServer{ServerStream: stream})
}

// UserService_ServiceDesc is the service descriptor registered with gRPC.
var UserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "user.UserService",
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetUserProfile",
			Handler:    _UserService_GetUserProfile_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetUserActivityHistory",
			Handler:       _UserService_GetUserActivityHistory_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "UpdateUserPreferences",
			Handler:       _UserService_UpdateUserPreferences_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "TrackUserActivity",
			Handler:       _UserService_TrackUserActivity_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "proto/user.proto",
}

// UserServiceClient is the client API for the user registry.
type UserServiceClient interface {
	GetUserProfile(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*UserProfileResponse, error)
	GetUserActivityHistory(ctx context.Context, in *UserHistoryRequest, opts ...grpc.CallOption) (UserService_GetUserActivityHistoryClient, error)
	UpdateUserPreferences(ctx context.Context, opts ...grpc.CallOption) (UserService_UpdateUserPreferencesClient, error)
	TrackUserActivity(ctx context.Context, opts ...grpc.CallOption) (UserService_TrackUserActivityClient, error)
}

type userServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewUserServiceClient wraps a client connection; the connection must carry
// the jsoncodec content subtype.
func NewUserServiceClient(cc grpc.ClientConnInterface) UserServiceClient {
	return &userServiceClient{cc: cc}
}

func (c *userServiceClient) GetUserProfile(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*UserProfileResponse, error) {
	out := new(UserProfileResponse)
	if err := c.cc.Invoke(ctx, UserService_GetUserProfile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UserService_GetUserActivityHistoryClient is the client side of the history
// stream.
type UserService_GetUserActivityHistoryClient interface {
	Recv() (*UserActivityResponse, error)
	grpc.ClientStream
}

type userServiceGetUserActivityHistoryClient struct {
	grpc.ClientStream
}

func (x *userServiceGetUserActivityHistoryClient) Recv() (*UserActivityResponse, error) {
	m := new(UserActivityResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *userServiceClient) GetUserActivityHistory(ctx context.Context, in *UserHistoryRequest, opts ...grpc.CallOption) (UserService_GetUserActivityHistoryClient, error) {
	stream, err := c.cc.NewStream(ctx, &UserService_ServiceDesc.Streams[0], UserService_GetUserActivityHistory_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &userServiceGetUserActivityHistoryClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// UserService_UpdateUserPreferencesClient is the client side of the batch
// preference stream.
type UserService_UpdateUserPreferencesClient interface {
	Send(*UserPreferenceRequest) error
	CloseAndRecv() (*UpdatePreferencesResponse, error)
	grpc.ClientStream
}

type userServiceUpdateUserPreferencesClient struct {
	grpc.ClientStream
}

func (x *userServiceUpdateUserPreferencesClient) Send(m *UserPreferenceRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *userServiceUpdateUserPreferencesClient) CloseAndRecv() (*UpdatePreferencesResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(UpdatePreferencesResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *userServiceClient) UpdateUserPreferences(ctx context.Context, opts ...grpc.CallOption) (UserService_UpdateUserPreferencesClient, error) {
	stream, err := c.cc.NewStream(ctx, &UserService_ServiceDesc.Streams[1], UserService_UpdateUserPreferences_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &userServiceUpdateUserPreferencesClient{ClientStream: stream}, nil
}

// UserService_TrackUserActivityClient is the client side of the duplex
// tracking stream.
type UserService_TrackUserActivityClient interface {
	Send(*UserActivityEvent) error
	Recv() (*UserInsightResponse, error)
	grpc.ClientStream
}

type userServiceTrackUserActivityClient struct {
	grpc.ClientStream
}

func (x *userServiceTrackUserActivityClient) Send(m *UserActivityEvent) error {
	return x.ClientStream.SendMsg(m)
}

func (x *userServiceTrackUserActivityClient) Recv() (*UserInsightResponse, error) {
	m := new(UserInsightResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *userServiceClient) TrackUserActivity(ctx context.Context, opts ...grpc.CallOption) (UserService_TrackUserActivityClient, error) {
	stream, err := c.cc.NewStream(ctx, &UserService_ServiceDesc.Streams[2], UserService_TrackUserActivity_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &userServiceTrackUserActivityClient{ClientStream: stream}, nil
}
