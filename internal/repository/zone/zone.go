package zone

import (
	"context"
	"fmt"

	"dispatch/internal/entities"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetActive активные зоны в порядке id, в этом же порядке их перебирает матчинг.
func (r *Repository) GetActive(ctx context.Context) ([]entities.Zone, error) {
	query := `
		SELECT id, name, description, is_active
		FROM zones
		WHERE is_active
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository get active error: %w", err)
	}

	zones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Zone, error) {
		var z entities.Zone
		err := row.Scan(&z.ID, &z.Name, &z.Description, &z.IsActive)
		return z, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository get active error: %w", err)
	}

	return zones, nil
}
