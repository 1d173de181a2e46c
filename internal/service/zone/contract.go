//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_test
package zone

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetActive(ctx context.Context) ([]entities.Zone, error)
}
