package dto

import (
	"time"

	"github.com/deudalibre/debt_payoff_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record a payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	PaidOn *time.Time      `json:"paidOn"` // Optional, defaults to now
	Note   string          `json:"note"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	DebtID    string          `json:"debtID"`
	Amount    decimal.Decimal `json:"amount"`
	PaidOn    time.Time       `json:"paidOn"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		DebtID:    p.DebtID,
		Amount:    p.Amount,
		PaidOn:    p.PaidOn,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments with the cursor for the next page.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToListPaymentsResponse converts a page of domain.Payment to ListPaymentsResponse DTO
func ToListPaymentsResponse(payments []domain.Payment, nextToken string) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return ListPaymentsResponse{Payments: res, NextToken: nextToken}
}
