//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Dependency is something the service cannot answer without, e.g. the
// Postgres pool.
type Dependency interface {
	Ping(ctx context.Context) error
}
