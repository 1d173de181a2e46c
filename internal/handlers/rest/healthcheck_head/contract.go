//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import (
	"context"
)

// Pinger проверка доступности хранилища, *pgxpool.Pool подходит как есть.
type Pinger interface {
	Ping(ctx context.Context) error
}
