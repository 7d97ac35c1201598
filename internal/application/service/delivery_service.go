package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/domain/workflow"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/observability"
	"github.com/pluscontrol/plus-control-api/pkg/apperror"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
)

// Progress milestones reported while a delivery is confirmed.
const (
	ProgressStarted   = 0
	ProgressUploaded  = 50
	ProgressResolved  = 75
	ProgressCommitted = 100
)

// ProgressFunc receives delivery milestones. It may be nil.
type ProgressFunc func(percent int)

// EvidenceFile is the delivery photo as received from the client.
type EvidenceFile struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// DeliveryInput represents a delivery confirmation request
type DeliveryInput struct {
	QuoteID           uuid.UUID
	PerformedBy       uuid.UUID
	PhysicalCheck     bool
	ClientNotified    bool
	OverrideConfirmed bool
	Evidence          *EvidenceFile
	Notes             *string
	UserAgent         string
	IP                string
}

// DeliveryResult is returned once the quote is Delivered and audited.
type DeliveryResult struct {
	AuditID     uuid.UUID                `json:"audit_id"`
	QuoteID     uuid.UUID                `json:"quote_id"`
	Status      enum.QuoteStatus         `json:"status"`
	DeliveredAt time.Time                `json:"delivered_at"`
	EvidenceURL string                   `json:"evidence_url"`
	Financial   entity.FinancialSnapshot `json:"financial_snapshot"`
}

// DeliveryService runs the delivery gate and commits the Delivered status
// together with its audit record.
type DeliveryService struct {
	quoteRepo    repository.QuoteRepository
	deliveryRepo repository.DeliveryRepository
	storage      repository.EvidenceStorage
	keys         EvidenceKeys
	calc         *finance.Calculator
	gate         *workflow.Gate
	metrics      *observability.DomainMetrics
	log          zerolog.Logger
	now          func() time.Time
}

// NewDeliveryService creates a new delivery service
func NewDeliveryService(
	quoteRepo repository.QuoteRepository,
	deliveryRepo repository.DeliveryRepository,
	storage repository.EvidenceStorage,
	keys EvidenceKeys,
	calc *finance.Calculator,
	gate *workflow.Gate,
	metrics *observability.DomainMetrics,
	log zerolog.Logger,
) *DeliveryService {
	return &DeliveryService{
		quoteRepo:    quoteRepo,
		deliveryRepo: deliveryRepo,
		storage:      storage,
		keys:         keys,
		calc:         calc,
		gate:         gate,
		metrics:      metrics,
		log:          log.With().Str("component", "delivery").Logger(),
		now:          time.Now,
	}
}

// ConfirmDelivery checks the gate, uploads the evidence and commits the
// status change with its audit record in one transaction. If anything after
// the upload fails the uploaded object is deleted and the original error returned.
func (s *DeliveryService) ConfirmDelivery(ctx context.Context, in *DeliveryInput, progress ProgressFunc) (*DeliveryResult, error) {
	started := s.now()
	if progress == nil {
		progress = func(int) {}
	}

	quote, err := s.quoteRepo.GetByID(ctx, in.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, quoteNotFound()
	}

	totals := quote.Totals(s.calc)
	observed := quote.Status

	err = s.gate.Check(workflow.GateInput{
		Status:             observed,
		OutstandingBalance: totals.OutstandingBalance,
		PhysicalCheck:      in.PhysicalCheck,
		PhotoEvidence:      in.Evidence != nil,
		OverrideConfirmed:  in.OverrideConfirmed,
	})
	if err != nil {
		var gateErr *workflow.GateError
		if errors.As(err, &gateErr) {
			for _, reason := range gateErr.Reasons {
				s.metrics.GateRejected(workflow.ReasonCode(reason))
			}
		}
		s.metrics.Delivery("refused", s.now().Sub(started))
		return nil, statusError(err)
	}

	progress(ProgressStarted)
	path := s.keys.Path(quote.ID, s.now(), in.Evidence)
	if err := s.storage.Upload(ctx, path, in.Evidence.Body, in.Evidence.Size, in.Evidence.ContentType); err != nil {
		s.metrics.Delivery("upload_failed", s.now().Sub(started))
		return nil, apperror.NewBadGatewayError("Evidence upload failed", err)
	}
	progress(ProgressUploaded)

	url, err := s.storage.URL(ctx, path)
	if err != nil {
		s.compensate(ctx, quote.ID, path)
		s.metrics.Delivery("url_failed", s.now().Sub(started))
		return nil, apperror.NewBadGatewayError("Evidence URL could not be resolved", err)
	}
	progress(ProgressResolved)

	deliveredAt := s.now()
	snapshot := entity.FinancialSnapshot{
		OrderTotal:    totals.FinalTotal,
		Balance:       totals.OutstandingBalance,
		PaymentStatus: enum.PaymentStatusFor(totals.OutstandingBalance),
	}
	audit := &entity.DeliveryAuditRecord{
		QuoteID:     quote.ID,
		Action:      entity.ActionDeliveryCompleted,
		PerformedBy: in.PerformedBy,
		PerformedAt: deliveredAt,
		Financial:   snapshot,
		Checklist: entity.OperationalChecklist{
			PhysicalCheck:  in.PhysicalCheck,
			PhotoEvidence:  true,
			ClientNotified: in.ClientNotified,
		},
		EvidenceURL:  url,
		EvidencePath: path,
		Notes:        in.Notes,
		Metadata:     requestMetadata(in.UserAgent, in.IP),
	}

	auditID, err := s.deliveryRepo.CompleteDelivery(ctx, &repository.DeliveryCommit{
		QuoteID:        quote.ID,
		ExpectedStatus: observed,
		DeliveredAt:    deliveredAt,
		Audit:          audit,
	})
	if err != nil {
		s.compensate(ctx, quote.ID, path)
		s.metrics.Delivery("commit_failed", s.now().Sub(started))
		if errors.Is(err, repository.ErrStatusChanged) {
			return nil, statusError(err)
		}
		return nil, apperror.NewBadGatewayError("Delivery could not be committed", err)
	}
	progress(ProgressCommitted)

	s.metrics.Delivery("success", s.now().Sub(started))
	s.metrics.Transition(observed.String(), enum.QuoteStatusDelivered.String())
	s.log.Info().
		Str("quote_id", quote.ID.String()).
		Str("folio", quote.Folio).
		Str("audit_id", auditID.String()).
		Int64("balance", totals.OutstandingBalance).
		Msg("delivery confirmed")

	return &DeliveryResult{
		AuditID:     auditID,
		QuoteID:     quote.ID,
		Status:      enum.QuoteStatusDelivered,
		DeliveredAt: deliveredAt,
		EvidenceURL: url,
		Financial:   snapshot,
	}, nil
}

// compensate removes an uploaded object whose delivery did not commit. It is
// attempted once; a failure is logged and left for the sweeper.
func (s *DeliveryService) compensate(ctx context.Context, quoteID uuid.UUID, path string) {
	if err := s.storage.Delete(context.WithoutCancel(ctx), path); err != nil {
		s.metrics.Compensation("failed")
		s.log.Error().Err(err).
			Str("quote_id", quoteID.String()).
			Str("path", path).
			Msg("could not delete evidence of failed delivery")
		return
	}
	s.metrics.Compensation("deleted")
	s.log.Warn().
		Str("quote_id", quoteID.String()).
		Str("path", path).
		Msg("deleted evidence of failed delivery")
}

// ListDeliveryAudit returns the audit trail of a quote, oldest first.
func (s *DeliveryService) ListDeliveryAudit(ctx context.Context, quoteID uuid.UUID) ([]entity.DeliveryAuditRecord, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, quoteNotFound()
	}

	records, err := s.deliveryRepo.ListByQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	// The stored URL may be a presigned link that has since expired.
	for i := range records {
		if records[i].EvidencePath == "" {
			continue
		}
		url, err := s.storage.URL(ctx, records[i].EvidencePath)
		if err != nil {
			s.log.Warn().Err(err).
				Str("audit_id", records[i].ID.String()).
				Msg("could not refresh evidence url")
			continue
		}
		records[i].EvidenceURL = url
	}
	return records, nil
}

func requestMetadata(userAgent, ip string) datatypes.JSON {
	raw, err := json.Marshal(map[string]string{"user_agent": userAgent, "ip": ip})
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
