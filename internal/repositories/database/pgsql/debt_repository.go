package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/apperrors"
	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	"github.com/deudalibre/debt_payoff_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt data.
func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxDebtRepository implements portsrepo.DebtRepositoryFacade
var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

// Helper to convert domain.Debt to models.Debt for DB storage
func toModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:         d.DebtID,
		UserID:         d.UserID,
		Name:           d.Name,
		Kind:           models.DebtKind(d.Kind),
		CurrencyCode:   d.CurrencyCode,
		Balance:        d.Balance,
		InterestRate:   d.InterestRate,
		MonthlyPayment: d.MonthlyPayment,
		CreditLimit:    d.CreditLimit,
		IsActive:       d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Debt from DB to domain.Debt
func toDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:         m.DebtID,
		UserID:         m.UserID,
		Name:           m.Name,
		Kind:           domain.DebtKind(m.Kind),
		CurrencyCode:   m.CurrencyCode,
		Balance:        m.Balance,
		InterestRate:   m.InterestRate,
		MonthlyPayment: m.MonthlyPayment,
		CreditLimit:    m.CreditLimit,
		IsActive:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const debtColumns = `debt_id, user_id, name, kind, currency_code, balance, interest_rate, monthly_payment, credit_limit, is_active, created_at, created_by, last_updated_at, last_updated_by`

// scanDebt scans one debt row into a model struct.
func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.UserID,
		&m.Name,
		&m.Kind,
		&m.CurrencyCode,
		&m.Balance,
		&m.InterestRate,
		&m.MonthlyPayment,
		&m.CreditLimit,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveDebt inserts a new debt.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := toModelDebt(debt)

	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.UserID,
		m.Name,
		m.Kind,
		m.CurrencyCode,
		m.Balance,
		m.InterestRate,
		m.MonthlyPayment,
		m.CreditLimit,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: debt with ID %s already exists", apperrors.ErrDuplicate, m.DebtID)
			}
			if pgErr.Code == "23503" { // FK violation (currency or user)
				return fmt.Errorf("%w: unknown currency or user for debt %s", apperrors.ErrValidation, m.DebtID)
			}
		}
		return fmt.Errorf("failed to save debt %s: %w", m.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves a debt by its ID.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE debt_id = $1;
	`
	m, err := scanDebt(r.Pool.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}

	d := toDomainDebt(m)
	return &d, nil
}

// ListDebtsByUser retrieves all debts owned by a user, active first, then by
// creation time.
func (r *PgxDebtRepository) ListDebtsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = $1
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY is_active DESC, created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for user %s: %w", userID, err)
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, toDomainDebt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}
	return debts, nil
}

// UpdateDebt updates an existing debt's mutable fields.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	m := toModelDebt(debt)

	query := `
		UPDATE debts
		SET name = $2, balance = $3, interest_rate = $4, monthly_payment = $5, credit_limit = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE debt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.Name,
		m.Balance,
		m.InterestRate,
		m.MonthlyPayment,
		m.CreditLimit,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt %s: %w", m.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyPayment records a payment row and reduces the debt's balance in one
// transaction. The caller pre-computes newBalance, already clamped at zero.
func (r *PgxDebtRepository) ApplyPayment(ctx context.Context, payment domain.Payment, newBalance decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	insertQuery := `
		INSERT INTO payments (payment_id, debt_id, amount, paid_on, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		payment.PaymentID,
		payment.DebtID,
		payment.Amount,
		payment.PaidOn,
		payment.Note,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: debt %s does not exist", apperrors.ErrNotFound, payment.DebtID)
		}
		return fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
	}

	updateQuery := `
		UPDATE debts
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE debt_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery, payment.DebtID, newBalance, payment.LastUpdatedAt, payment.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update balance for debt %s: %w", payment.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// DeactivateDebt marks a debt as inactive.
func (r *PgxDebtRepository) DeactivateDebt(ctx context.Context, debtID string, userID string, now time.Time) error {
	query := `
		UPDATE debts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE debt_id = $1 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, debtID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already inactive; distinguish for the caller.
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM debts WHERE debt_id = $1)`, debtID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check debt existence %s: %w", debtID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: debt %s is already inactive", apperrors.ErrValidation, debtID)
	}
	return nil
}
