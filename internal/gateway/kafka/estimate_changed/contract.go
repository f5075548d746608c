//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=estimate_changed_test
package estimate_changed

import (
	"context"
)

type producer interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
