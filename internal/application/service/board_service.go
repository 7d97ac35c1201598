package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
)

// BoardOptions tunes the production board.
type BoardOptions struct {
	// WindowDays limits the Delivered column to recently finished work.
	WindowDays int
	// UrgentDays flags cards due within this many days.
	UrgentDays int
}

var boardColumns = []struct {
	status enum.QuoteStatus
	title  string
}{
	{enum.QuoteStatusAccepted, "Por Iniciar"},
	{enum.QuoteStatusInProduction, "En Taller"},
	{enum.QuoteStatusReady, "Terminado"},
	{enum.QuoteStatusDelivered, "Entregado"},
}

// BoardCard is a quote as shown on the production board.
type BoardCard struct {
	QuoteID            uuid.UUID        `json:"quote_id"`
	Folio              string           `json:"folio"`
	ClientName         string           `json:"client_name"`
	Status             enum.QuoteStatus `json:"status"`
	FinalTotal         int64            `json:"final_total"`
	OutstandingBalance int64            `json:"outstanding_balance"`
	Owes               bool             `json:"owes"`
	DueDate            *time.Time       `json:"due_date,omitempty"`
	DaysLeft           *int             `json:"days_left,omitempty"`
	Urgency            string           `json:"urgency,omitempty"`
	DeliveredAt        *time.Time       `json:"delivered_at,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

type BoardColumn struct {
	Status enum.QuoteStatus `json:"status"`
	Title  string           `json:"title"`
	Cards  []BoardCard      `json:"cards"`
	Count  int              `json:"count"`
	Total  int64            `json:"total"`
}

type Board struct {
	Columns     []BoardColumn `json:"columns"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// ProductionBoardService builds the workshop kanban
type ProductionBoardService struct {
	quoteRepo repository.QuoteRepository
	calc      *finance.Calculator
	opts      BoardOptions
}

// NewProductionBoardService creates a new production board service
func NewProductionBoardService(quoteRepo repository.QuoteRepository, calc *finance.Calculator, opts BoardOptions) *ProductionBoardService {
	if opts.WindowDays <= 0 {
		opts.WindowDays = 30
	}
	if opts.UrgentDays < 0 {
		opts.UrgentDays = 0
	}
	return &ProductionBoardService{quoteRepo: quoteRepo, calc: calc, opts: opts}
}

// Board groups pipeline quotes by column. Delivered quotes only appear when
// they finished within the window.
func (s *ProductionBoardService) Board(ctx context.Context, now time.Time) (*Board, error) {
	open := make([]enum.QuoteStatus, 0, len(boardColumns))
	for _, c := range boardColumns {
		if c.status != enum.QuoteStatusDelivered {
			open = append(open, c.status)
		}
	}
	quotes, err := s.quoteRepo.ListForBoard(ctx, open, now.AddDate(0, 0, -s.opts.WindowDays))
	if err != nil {
		return nil, err
	}

	byStatus := make(map[enum.QuoteStatus][]BoardCard, len(boardColumns))
	for i := range quotes {
		q := &quotes[i]
		byStatus[q.Status] = append(byStatus[q.Status], s.card(q, now))
	}

	board := &Board{GeneratedAt: now, Columns: make([]BoardColumn, 0, len(boardColumns))}
	for _, c := range boardColumns {
		cards := byStatus[c.status]
		sortByDaysLeft(cards)
		col := BoardColumn{Status: c.status, Title: c.title, Cards: cards, Count: len(cards)}
		if col.Cards == nil {
			col.Cards = []BoardCard{}
		}
		for _, card := range cards {
			col.Total += card.FinalTotal
		}
		board.Columns = append(board.Columns, col)
	}
	return board, nil
}

func (s *ProductionBoardService) card(q *entity.Quote, now time.Time) BoardCard {
	totals := q.Totals(s.calc)
	card := BoardCard{
		QuoteID:            q.ID,
		Folio:              q.Folio,
		ClientName:         q.ClientName,
		Status:             q.Status,
		FinalTotal:         totals.FinalTotal,
		OutstandingBalance: totals.OutstandingBalance,
		Owes:               totals.OutstandingBalance > 0 && q.Status != enum.QuoteStatusDelivered,
		DueDate:            q.DueDate,
		DeliveredAt:        q.DeliveredAt,
		CreatedAt:          q.CreatedAt,
	}
	if q.DueDate != nil {
		days := DaysBetween(now, *q.DueDate)
		card.DaysLeft = &days
		if q.Status != enum.QuoteStatusDelivered {
			card.Urgency = UrgencyLabel(days, s.opts.UrgentDays)
		}
	}
	return card
}

// DaysBetween counts calendar days from the day of from to the day of to,
// both taken in from's location.
func DaysBetween(from, to time.Time) int {
	loc := from.Location()
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	t := to.In(loc)
	b := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// UrgencyLabel is empty unless daysLeft is within urgentDays.
func UrgencyLabel(daysLeft, urgentDays int) string {
	switch {
	case daysLeft > urgentDays:
		return ""
	case daysLeft < 0:
		return fmt.Sprintf("ATRASADO %d DÍAS", -daysLeft)
	case daysLeft == 0:
		return "VENCE HOY"
	default:
		return "URGENTE"
	}
}

// sortByDaysLeft puts the most pressing cards first; cards without a due date go last.
func sortByDaysLeft(cards []BoardCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i].DaysLeft, cards[j].DaysLeft
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
