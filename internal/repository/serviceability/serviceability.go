package serviceability

import (
	"context"
	"errors"
	"fmt"

	"delivery-estimator/internal/entities"
	"delivery-estimator/internal/repository"
	"delivery-estimator/internal/service/serviceability"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = "pincode, provider, turnaround_days, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Upsert(ctx context.Context, modify entities.ServiceabilityModify) (*entities.Serviceability, error) {
	modifyDB := FromDomainModify(&modify)
	if modifyDB.Pincode == nil || modifyDB.Provider == nil || modifyDB.TurnaroundDays == nil {
		return nil, serviceability.ErrMissingRequiredFields
	}

	query, args, err := qb.
		Insert("serviceability").
		Columns("pincode", "provider", "turnaround_days").
		Values(*modifyDB.Pincode, *modifyDB.Provider, *modifyDB.TurnaroundDays).
		Suffix(`ON CONFLICT (pincode) DO UPDATE
			SET provider = EXCLUDED.provider,
				turnaround_days = EXCLUDED.turnaround_days,
				updated_at = NOW()
			RETURNING ` + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected serviceability repository upsert error: %w", err)
	}

	var model ServiceabilityDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&model.Pincode,
		&model.Provider,
		&model.TurnaroundDays,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		switch repository.PgErrorCode(err) {
		case repository.PgErrCheckViolation:
			return nil, serviceability.ErrInvalidTurnaround
		case repository.PgErrStringDataRightTruncation:
			return nil, serviceability.ErrInvalidPincode
		}
		return nil, fmt.Errorf("unexpected serviceability repository upsert error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetByPincode(ctx context.Context, pincode string) (*entities.Serviceability, error) {
	query := `SELECT ` + columns + `
		FROM serviceability
		WHERE pincode = $1`

	var model ServiceabilityDB
	err := r.querier.QueryRow(ctx, query, pincode).Scan(
		&model.Pincode,
		&model.Provider,
		&model.TurnaroundDays,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceability.ErrServiceabilityNotFound
		}
		return nil, fmt.Errorf("unexpected serviceability repository getbypincode error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Serviceability, error) {
	query, args, err := qb.
		Select(columns).
		From("serviceability").
		OrderBy("pincode").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected serviceability repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected serviceability repository getall error: %w", err)
	}
	defer rows.Close()

	models := make([]ServiceabilityDB, 0, 16)
	for rows.Next() {
		var model ServiceabilityDB
		err := rows.Scan(
			&model.Pincode,
			&model.Provider,
			&model.TurnaroundDays,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected serviceability repository getall error: %w", err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected serviceability repository getall error: %w", err)
	}

	return ToDomainList(models), nil
}

func (r *Repository) Delete(ctx context.Context, pincode string) error {
	query, args, err := qb.
		Delete("serviceability").
		Where(sq.Eq{"pincode": pincode}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected serviceability repository delete error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected serviceability repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return serviceability.ErrServiceabilityNotFound
	}
	return nil
}
