package estimator

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName        = "estimator.v1.DeliveryEstimator"
	EstimateFullMethod = "/estimator.v1.DeliveryEstimator/Estimate"
)

// DeliveryEstimatorServer speaks google.protobuf.Struct on both sides so
// clients need no generated stubs.
type DeliveryEstimatorServer interface {
	Estimate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DeliveryEstimatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Estimate",
			Handler:    estimateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "",
}

func Register(registrar grpc.ServiceRegistrar, srv DeliveryEstimatorServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

func estimateHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeliveryEstimatorServer).Estimate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EstimateFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DeliveryEstimatorServer).Estimate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
