package moviepb

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names for interceptors and clients.
const (
	MovieService_GetMovie_FullMethodName                       = "/movie.MovieService/GetMovie"
	MovieService_GetTrendingMovies_FullMethodName              = "/movie.MovieService/GetTrendingMovies"
	MovieService_UpdateMovieRatings_FullMethodName             = "/movie.MovieService/UpdateMovieRatings"
	MovieService_GetPersonalizedRecommendations_FullMethodName = "/movie.MovieService/GetPersonalizedRecommendations"
)

// MovieServiceServer is the server API for the movie catalog.
type MovieServiceServer interface {
	// GetMovie returns a single movie or NotFound.
	GetMovie(context.Context, *MovieRequest) (*MovieResponse, error)
	// GetTrendingMovies streams trending movies in ranked order.
	GetTrendingMovies(*TrendingMoviesRequest, MovieService_GetTrendingMoviesServer) error
	// UpdateMovieRatings consumes a stream of rating updates and closes with
	// the applied count.
	UpdateMovieRatings(MovieService_UpdateMovieRatingsServer) error
	// GetPersonalizedRecommendations turns a stream of user events into a
	// stream of recommendations.
	GetPersonalizedRecommendations(MovieService_GetPersonalizedRecommendationsServer) error
}

// RegisterMovieServiceServer registers the implementation with a gRPC server.
func RegisterMovieServiceServer(s grpc.ServiceRegistrar, srv MovieServiceServer) {
	s.RegisterService(&MovieService_ServiceDesc, srv)
}

// MovieService_GetTrendingMoviesServer is the server side of the trending
// stream.
type MovieService_GetTrendingMoviesServer interface {
	Send(*MovieResponse) error
	grpc.ServerStream
}

type movieServiceGetTrendingMoviesServer struct {
	grpc.ServerStream
}

func (x *movieServiceGetTrendingMoviesServer) Send(m *MovieResponse) error {
	return x.ServerStream.SendMsg(m)
}

// MovieService_UpdateMovieRatingsServer is the server side of the batch
// rating stream.
type MovieService_UpdateMovieRatingsServer interface {
	SendAndClose(*UpdateRatingBatchResponse) error
	Recv() (*UpdateRatingRequest, error)
	grpc.ServerStream
}

type movieServiceUpdateMovieRatingsServer struct {
	grpc.ServerStream
}

func (x *movieServiceUpdateMovieRatingsServer) SendAndClose(m *UpdateRatingBatchResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *movieServiceUpdateMovieRatingsServer) Recv() (*UpdateRatingRequest, error) {
	m := new(UpdateRatingRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// MovieService_GetPersonalizedRecommendationsServer is the server side of the
// duplex recommendation stream.
type MovieService_GetPersonalizedRecommendationsServer interface {
	Send(*MovieRecommendation) error
	Recv() (*UserEventRequest, error)
	grpc.ServerStream
}

type movieServiceGetPersonalizedRecommendationsServer struct {
	grpc.ServerStream
}

func (x *movieServiceGetPersonalizedRecommendationsServer) Send(m *MovieRecommendation) error {
	return x.ServerStream.SendMsg(m)
}

func (x *movieServiceGetPersonalizedRecommendationsServer) Recv() (*UserEventRequest, error) {
	m := new(UserEventRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _MovieService_GetMovie_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MovieRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovieServiceServer).GetMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MovieService_GetMovie_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MovieServiceServer).GetMovie(ctx, req.(*MovieRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MovieService_GetTrendingMovies_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(TrendingMoviesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MovieServiceServer).GetTrendingMovies(m, &movieServiceGetTrendingMoviesServer{ServerStream: stream})
}

func _MovieService_UpdateMovieRatings_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(MovieServiceServer).UpdateMovieRatings(&movieServiceUpdateMovieRatingsServer{ServerStream: stream})
}

func _MovieService_GetPersonalizedRecommendations_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(MovieServiceServer).GetPersonalizedRecommendations(&movieServiceGetPersonalizedRecommendationsServer{ServerStream: stream})
}

// MovieService_ServiceDesc is the service descriptor registered with gRPC.
var MovieService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "movie.MovieService",
	HandlerType: (*MovieServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMovie",
			Handler:    _MovieService_GetMovie_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetTrendingMovies",
			Handler:       _MovieService_GetTrendingMovies_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "UpdateMovieRatings",
			Handler:       _MovieService_UpdateMovieRatings_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "GetPersonalizedRecommendations",
			Handler:       _MovieService_GetPersonalizedRecommendations_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "proto/movie.proto",
}

// MovieServiceClient is the client API for the movie catalog.
type MovieServiceClient interface {
	GetMovie(ctx context.Context, in *MovieRequest, opts ...grpc.CallOption) (*MovieResponse, error)
	GetTrendingMovies(ctx context.Context, in *TrendingMoviesRequest, opts ...grpc.CallOption) (MovieService_GetTrendingMoviesClient, error)
	UpdateMovieRatings(ctx context.Context, opts ...grpc.CallOption) (MovieService_UpdateMovieRatingsClient, error)
	GetPersonalizedRecommendations(ctx context.Context, opts ...grpc.CallOption) (MovieService_GetPersonalizedRecommendationsClient, error)
}

type movieServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMovieServiceClient wraps a client connection. The connection must carry
// the jsoncodec content subtype, either per call or via
// grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsoncodec.Name)).
func NewMovieServiceClient(cc grpc.ClientConnInterface) MovieServiceClient {
	return &movieServiceClient{cc: cc}
}

func (c *movieServiceClient) GetMovie(ctx context.Context, in *MovieRequest, opts ...grpc.CallOption) (*MovieResponse, error) {
	out := new(MovieResponse)
	if err := c.cc.Invoke(ctx, MovieService_GetMovie_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MovieService_GetTrendingMoviesClient is the client side of the trending
// stream.
type MovieService_GetTrendingMoviesClient interface {
	Recv() (*MovieResponse, error)
	grpc.ClientStream
}

type movieServiceGetTrendingMoviesClient struct {
	grpc.ClientStream
}

func (x *movieServiceGetTrendingMoviesClient) Recv() (*MovieResponse, error) {
	m := new(MovieResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *movieServiceClient) GetTrendingMovies(ctx context.Context, in *TrendingMoviesRequest, opts ...grpc.CallOption) (MovieService_GetTrendingMoviesClient, error) {
	stream, err := c.cc.NewStream(ctx, &MovieService_ServiceDesc.Streams[0], MovieService_GetTrendingMovies_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &movieServiceGetTrendingMoviesClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// MovieService_UpdateMovieRatingsClient is the client side of the batch
// rating stream.
type MovieService_UpdateMovieRatingsClient interface {
	Send(*UpdateRatingRequest) error
	CloseAndRecv() (*UpdateRatingBatchResponse, error)
	grpc.ClientStream
}

type movieServiceUpdateMovieRatingsClient struct {
	grpc.ClientStream
}

func (x *movieServiceUpdateMovieRatingsClient) Send(m *UpdateRatingRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *movieServiceUpdateMovieRatingsClient) CloseAndRecv() (*UpdateRatingBatchResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(UpdateRatingBatchResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *movieServiceClient) UpdateMovieRatings(ctx context.Context, opts ...grpc.CallOption) (MovieService_UpdateMovieRatingsClient, error) {
	stream, err := c.cc.NewStream(ctx, &MovieService_ServiceDesc.Streams[1], MovieService_UpdateMovieRatings_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &movieServiceUpdateMovieRatingsClient{ClientStream: stream}, nil
}

// MovieService_GetPersonalizedRecommendationsClient is the client side of the
// duplex recommendation stream.
type MovieService_GetPersonalizedRecommendationsClient interface {
	Send(*UserEventRequest) error
	Recv() (*MovieRecommendation, error)
	grpc.ClientStream
}

type movieServiceGetPersonalizedRecommendationsClient struct {
	grpc.ClientStream
}

func (x *movieServiceGetPersonalizedRecommendationsClient) Send(m *UserEventRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *movieServiceGetPersonalizedRecommendationsClient) Recv() (*MovieRecommendation, error) {
	m := new(MovieRecommendation)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *movieServiceClient) GetPersonalizedRecommendations(ctx context.Context, opts ...grpc.CallOption) (MovieService_GetPersonalizedRecommendationsClient, error) {
	stream, err := c.cc.NewStream(ctx, &MovieService_ServiceDesc.Streams[2], MovieService_GetPersonalizedRecommendations_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &movieServiceGetPersonalizedRecommendationsClient{ClientStream: stream}, nil
}
