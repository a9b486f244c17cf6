package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	portsrepo "github.com/deudalibre/debt_payoff_app/internal/core/ports/repositories"
	"github.com/deudalibre/debt_payoff_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
// Inserts happen through the debt repository's ApplyPayment so the balance
// update and the payment row share one transaction.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		DebtID:    m.DebtID,
		Amount:    m.Amount,
		PaidOn:    m.PaidOn,
		Note:      m.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// FindPaymentsByDebt retrieves a page of payments for a debt, newest first.
// The (paid_on, created_at) pair is the keyset cursor; a zero paidBefore
// means the page starts from the most recent payment.
func (r *PgxPaymentRepository) FindPaymentsByDebt(ctx context.Context, debtID string, paidBefore time.Time, createdBefore time.Time, limit int) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, debt_id, amount, paid_on, note, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE debt_id = $1
	`
	args := []any{debtID}
	if !paidBefore.IsZero() {
		query += ` AND (paid_on, created_at) < ($2, $3)`
		args = append(args, paidBefore, createdBefore)
	}
	query += fmt.Sprintf(` ORDER BY paid_on DESC, created_at DESC LIMIT %d;`, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for debt %s: %w", debtID, err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var m models.Payment
		err := rows.Scan(
			&m.PaymentID,
			&m.DebtID,
			&m.Amount,
			&m.PaidOn,
			&m.Note,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
