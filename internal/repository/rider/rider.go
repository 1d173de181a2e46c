package rider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/rider"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var riderColumns = []string{
	"id", "name", "phone", "status", "zone_id",
	"active_orders", "completed_deliveries", "is_active",
	"created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)
	query := `INSERT INTO riders (name, phone, status, zone_id, is_active)
		VALUES ($1, $2, $3, $4, COALESCE($5, TRUE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		riderModifyModel.Name,
		riderModifyModel.Phone,
		riderModifyModel.Status,
		riderModifyModel.ZoneID,
		riderModifyModel.IsActive,
	).Scan(&id)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return 0, rider.ErrConflict
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return 0, rider.ErrZoneNotFound
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)

	builder := qb.
		Update("riders")

	if riderModifyModel.Name != nil {
		builder = builder.Set("name", riderModifyModel.Name)
	}
	if riderModifyModel.Phone != nil {
		builder = builder.Set("phone", riderModifyModel.Phone)
	}
	if riderModifyModel.Status != nil {
		builder = builder.Set("status", riderModifyModel.Status)
	}
	if riderModifyModel.ZoneID != nil {
		builder = builder.Set("zone_id", riderModifyModel.ZoneID)
	}
	if riderModifyModel.IsActive != nil {
		builder = builder.Set("is_active", riderModifyModel.IsActive)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": riderModifyModel.ID}).
		Suffix("RETURNING " + strings.Join(riderColumns, ", "))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, rider.ErrRiderNotFound
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return nil, rider.ErrConflict
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, rider.ErrZoneNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query, args, err := qb.
		Select(riderColumns...).
		From("riders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Rider, error) {
	query, args, err := qb.
		Select(riderColumns...).
		From("riders").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 8)
	for rows.Next() {
		riderModel, err := scanRider(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
		}
		riderModels = append(riderModels, *riderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

// FindLeastLoaded онлайн курьер зоны с минимальной загрузкой ниже потолка,
// при равенстве побеждает меньший id.
func (r *Repository) FindLeastLoaded(
	ctx context.Context,
	zoneID int64,
	exclude []int64,
	loadCeiling int,
) (*entities.Rider, error) {
	builder := qb.
		Select(riderColumns...).
		From("riders").
		Where(sq.Eq{
			"zone_id":   zoneID,
			"status":    entities.RiderOnline.String(),
			"is_active": true,
		}).
		Where(sq.Lt{"active_orders": loadCeiling})

	if len(exclude) > 0 {
		builder = builder.Where(sq.NotEq{"id": exclude})
	}

	query, args, err := builder.
		OrderBy("active_orders ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository find candidate error: %w", err)
	}

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrNoCandidateRider
		}
		return nil, fmt.Errorf("unexpected rider repository find candidate error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) IncrementActiveOrders(ctx context.Context, id int64) (*entities.RiderLoad, error) {
	return r.changeLoad(ctx, id, `
		UPDATE riders
		SET active_orders = active_orders + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, active_orders, completed_deliveries`)
}

func (r *Repository) CompleteDelivery(ctx context.Context, id int64) (*entities.RiderLoad, error) {
	return r.changeLoad(ctx, id, `
		UPDATE riders
		SET active_orders = GREATEST(active_orders - 1, 0),
			completed_deliveries = completed_deliveries + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, active_orders, completed_deliveries`)
}

func (r *Repository) ReleaseOrder(ctx context.Context, id int64) (*entities.RiderLoad, error) {
	return r.changeLoad(ctx, id, `
		UPDATE riders
		SET active_orders = GREATEST(active_orders - 1, 0),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, active_orders, completed_deliveries`)
}

// changeLoad счетчики меняются одним UPDATE, без чтения в приложение.
func (r *Repository) changeLoad(ctx context.Context, id int64, query string) (*entities.RiderLoad, error) {
	var load RiderLoadDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&load.ID,
		&load.ActiveOrders,
		&load.CompletedDeliveries,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository change load error: %w", err)
	}

	return ToLoadDomain(&load), nil
}

func scanRider(row pgx.Row) (*RiderDB, error) {
	var riderModel RiderDB
	err := row.Scan(
		&riderModel.ID,
		&riderModel.Name,
		&riderModel.Phone,
		&riderModel.Status,
		&riderModel.ZoneID,
		&riderModel.ActiveOrders,
		&riderModel.CompletedDeliveries,
		&riderModel.IsActive,
		&riderModel.CreatedAt,
		&riderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &riderModel, nil
}
