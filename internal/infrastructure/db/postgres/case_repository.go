package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

// CaseRepository persists cases in the pre-existing cases table.
type CaseRepository struct {
	pool *pgxpool.Pool
}

func NewCaseRepository(pool *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{pool: pool}
}

func (r *CaseRepository) List(ctx context.Context) ([]domain.Case, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, case_number, parties, registration_date, status
		FROM cases
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.Case
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(&c.ID, &c.CaseNumber, &c.Parties, &c.RegistrationDate, &c.Status); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cases (case_number, parties, registration_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.CaseNumber, c.Parties, c.RegistrationDate, c.Status)

	created := *c
	if err := row.Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("insert case: %w", err)
	}
	return &created, nil
}

func (r *CaseRepository) Update(ctx context.Context, c *domain.Case) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE cases
		SET case_number = $1, parties = $2, registration_date = $3, status = $4
		WHERE id = $5
	`, c.CaseNumber, c.Parties, c.RegistrationDate, c.Status, c.ID)
	if err != nil {
		return fmt.Errorf("update case: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM cases
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}
