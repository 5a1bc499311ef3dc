package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ConverterService is described by hand over the protobuf well-known types.
const (
	ServiceName = "converter.v1alpha1.ConverterService"

	ConverterService_ParseText_FullMethodName   = "/converter.v1alpha1.ConverterService/ParseText"
	ConverterService_ConvertText_FullMethodName = "/converter.v1alpha1.ConverterService/ConvertText"
)

// ConverterServiceServer is the server API for ConverterService
type ConverterServiceServer interface {
	// ParseText returns the parsed stat-block record
	ParseText(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	// ConvertText returns the Daggerheart adversary document
	ConvertText(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
}

// RegisterConverterServiceServer registers srv with s
func RegisterConverterServiceServer(s grpc.ServiceRegistrar, srv ConverterServiceServer) {
	s.RegisterService(&ConverterService_ServiceDesc, srv)
}

func _ConverterService_ParseText_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConverterServiceServer).ParseText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConverterService_ParseText_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConverterServiceServer).ParseText(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConverterService_ConvertText_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConverterServiceServer).ConvertText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConverterService_ConvertText_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConverterServiceServer).ConvertText(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// ConverterService_ServiceDesc is the grpc.ServiceDesc for ConverterService
var ConverterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConverterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseText",
			Handler:    _ConverterService_ParseText_Handler,
		},
		{
			MethodName: "ConvertText",
			Handler:    _ConverterService_ConvertText_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// ConverterServiceClient is the client API for ConverterService
type ConverterServiceClient interface {
	ParseText(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ConvertText(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type converterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewConverterServiceClient creates a client on cc
func NewConverterServiceClient(cc grpc.ClientConnInterface) ConverterServiceClient {
	return &converterServiceClient{cc: cc}
}

func (c *converterServiceClient) ParseText(
	ctx context.Context,
	in *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ConverterService_ParseText_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *converterServiceClient) ConvertText(
	ctx context.Context,
	in *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ConverterService_ConvertText_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
