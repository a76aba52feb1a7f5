package logger

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EnsureInvocation returns ctx unchanged when it carries a Lambda context.
// Otherwise (local runs, tests) it attaches one with a generated request id so
// every entry of the invocation shares the same id.
func EnsureInvocation(ctx context.Context) context.Context {
	if _, ok := lambdacontext.FromContext(ctx); ok {
		return ctx
	}
	return lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID: uuid.NewString(),
	})
}

// WithInvocation returns an entry tagged with the Lambda request id and function name
func (al *AppLogger) WithInvocation(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields["request_id"] = lc.AwsRequestID
		if lc.InvokedFunctionArn != "" {
			fields["function_arn"] = lc.InvokedFunctionArn
		}
	}
	if lambdacontext.FunctionName != "" {
		fields["function_name"] = lambdacontext.FunctionName
	}

	return al.WithFields(fields).WithContext(ctx)
}
