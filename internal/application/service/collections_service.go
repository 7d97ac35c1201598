package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
)

// debtStatuses are the statuses in which an unpaid balance is real debt.
// Draft and Sent are still offers; Rejected never became an order.
var debtStatuses = []enum.QuoteStatus{
	enum.QuoteStatusAccepted,
	enum.QuoteStatusInProduction,
	enum.QuoteStatusReady,
	enum.QuoteStatusDelivered,
}

// CollectionsService reports who owes money
type CollectionsService struct {
	quoteRepo repository.QuoteRepository
	calc      *finance.Calculator
}

// NewCollectionsService creates a new collections service
func NewCollectionsService(quoteRepo repository.QuoteRepository, calc *finance.Calculator) *CollectionsService {
	return &CollectionsService{quoteRepo: quoteRepo, calc: calc}
}

// Debtor is one quote with an unpaid balance.
type Debtor struct {
	QuoteID            uuid.UUID        `json:"quote_id"`
	Folio              string           `json:"folio"`
	ClientName         string           `json:"client_name"`
	ClientContact      string           `json:"client_contact"`
	Status             enum.QuoteStatus `json:"status"`
	FinalTotal         int64            `json:"final_total"`
	DepositPaid        int64            `json:"deposit_paid"`
	OutstandingBalance int64            `json:"outstanding_balance"`
	CreatedAt          time.Time        `json:"created_at"`
}

// DebtReport lists debtors oldest first with the total owed.
type DebtReport struct {
	Debtors   []Debtor `json:"debtors"`
	Count     int      `json:"count"`
	TotalOwed int64    `json:"total_owed"`
}

// ListDebtors recomputes every candidate quote and keeps those with a positive balance.
func (s *CollectionsService) ListDebtors(ctx context.Context) (*DebtReport, error) {
	quotes, err := s.quoteRepo.ListByStatuses(ctx, debtStatuses)
	if err != nil {
		return nil, err
	}

	report := &DebtReport{Debtors: []Debtor{}}
	for i := range quotes {
		q := &quotes[i]
		totals := q.Totals(s.calc)
		if totals.OutstandingBalance <= 0 {
			continue
		}
		report.Debtors = append(report.Debtors, Debtor{
			QuoteID:            q.ID,
			Folio:              q.Folio,
			ClientName:         q.ClientName,
			ClientContact:      q.ClientContact,
			Status:             q.Status,
			FinalTotal:         totals.FinalTotal,
			DepositPaid:        totals.DepositPaid,
			OutstandingBalance: totals.OutstandingBalance,
			CreatedAt:          q.CreatedAt,
		})
		report.TotalOwed += totals.OutstandingBalance
	}
	report.Count = len(report.Debtors)
	return report, nil
}
