package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/internal/advisors"
	"github.com/JasonR4/london-outfast-sub003/internal/plans"
	"github.com/JasonR4/london-outfast-sub003/internal/pricing"
	"github.com/JasonR4/london-outfast-sub003/internal/ratecards"
	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"
	"github.com/JasonR4/london-outfast-sub003/pkg/metrics"
	"github.com/JasonR4/london-outfast-sub003/pkg/money"
	"github.com/JasonR4/london-outfast-sub003/pkg/outbox"
	"github.com/JasonR4/london-outfast-sub003/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cardResolver interface {
	GetByFormatName(ctx context.Context, formatName string) (*models.RateCard, error)
}

// Service exposes campaign preview and brief submission.
type Service interface {
	Preview(ctx context.Context, input PreviewInput, authenticated bool) (*PreviewResult, error)
	Submit(ctx context.Context, sessionID string, input SubmitInput) (*models.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}

type service struct {
	repo       QuoteRepository
	planRepo   plans.PlanRepository
	events     outboxAppender
	tx         txRunner
	cards      cardResolver
	pricingCfg pricing.Config
	metrics    *metrics.QuoteMetrics
	logg       *logger.Logger
}

// NewService builds a quote service backed by the provided stack. planRepo,
// cards and quoteMetrics are optional.
func NewService(
	repo QuoteRepository,
	events outboxAppender,
	tx txRunner,
	planRepo plans.PlanRepository,
	cards cardResolver,
	pricingCfg pricing.Config,
	quoteMetrics *metrics.QuoteMetrics,
	logg *logger.Logger,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("quote repository required")
	}
	if events == nil {
		return nil, fmt.Errorf("outbox repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:       repo,
		planRepo:   planRepo,
		events:     events,
		tx:         tx,
		cards:      cards,
		pricingCfg: pricingCfg,
		metrics:    quoteMetrics,
		logg:       logg,
	}, nil
}

// Preview prices the submitted lines without persisting anything. A malformed
// line is excluded from the totals and reported as a warning rather than
// failing the whole preview. Monetary values are masked for unauthenticated
// visitors; the calculation still runs so structural guidance stays accurate.
func (s *service) Preview(ctx context.Context, input PreviewInput, authenticated bool) (*PreviewResult, error) {
	start := time.Now()

	currency := input.Currency
	if currency == "" {
		currency = enums.CurrencyGBP
	}
	if !currency.IsValid() {
		s.metrics.ObservePreview("invalid", time.Since(start))
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported currency")
	}

	result := &PreviewResult{
		Visibility: VisibilityFull,
		Currency:   currency,
		Lines:      make([]PreviewLine, 0, len(input.Lines)),
	}
	if !authenticated {
		result.Visibility = VisibilityMasked
	}

	priced := make([]pricing.PricedLine, 0, len(input.Lines))
	for _, line := range input.Lines {
		line = s.resolveProduction(ctx, line)
		pl, err := pricing.PriceLine(s.pricingCfg, toCampaignLine(line))
		if err != nil {
			result.Warnings = append(result.Warnings, types.LineWarning{
				FormatName: line.FormatName,
				Type:       "invalid_line",
				Message:    warningMessage(err),
			})
			continue
		}
		priced = append(priced, pl)
		result.Lines = append(result.Lines, PreviewLine{
			Priced:  pl,
			Display: lineDisplay(pl, currency),
			Capacity: advisors.LocationCapacity(advisors.CapacityInput{
				Sites:    line.Sites,
				Periods:  line.Periods,
				Areas:    line.Areas,
				SaleRate: line.SaleRate,
			}),
			Creative: advisors.CreativeCapacity(advisors.CreativeInput{
				CreativeAssets: line.CreativeCount,
				Sites:          line.Sites,
			}),
		})
	}

	result.Groups = pricing.AggregateByFormat(priced)
	result.Totals = pricing.Totals(s.pricingCfg, priced)
	result.Display = TotalsDisplay{
		SubtotalExVAT: money.Format(result.Totals.SubtotalExVAT, currency),
		VATAmount:     money.Format(result.Totals.VATAmount, currency),
		TotalIncVAT:   money.FormatWithVAT(result.Totals.TotalIncVAT, currency, true),
	}

	if !authenticated {
		maskPreview(result)
	}

	s.metrics.IncPreview(result.Visibility)
	s.metrics.ObservePreview("ok", time.Since(start))
	return result, nil
}

// Submit recomputes the campaign server-side from raw inputs, persists the
// quote, and stages the CRM event in the same transaction. Client-supplied
// totals are never trusted.
func (s *service) Submit(ctx context.Context, sessionID string, input SubmitInput) (*models.Quote, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and name are required")
	}
	if len(input.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote must contain at least one line")
	}
	currency := input.Currency
	if currency == "" {
		currency = enums.CurrencyGBP
	}
	if !currency.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported currency")
	}

	// a submitted brief gets strict pricing: invalid lines fail the call
	priced := make([]pricing.PricedLine, 0, len(input.Lines))
	for _, line := range input.Lines {
		line = s.resolveProduction(ctx, line)
		pl, err := pricing.PriceLine(s.pricingCfg, toCampaignLine(line))
		if err != nil {
			return nil, err
		}
		priced = append(priced, pl)
	}

	totals := pricing.Totals(s.pricingCfg, priced)
	groups := pricing.AggregateByFormat(priced)
	breakdown, err := json.Marshal(map[string]any{
		"groups": groups,
		"totals": totals,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode breakdown")
	}

	quote := &models.Quote{
		ID:          uuid.New(),
		SessionID:   sessionID,
		Email:       strings.TrimSpace(input.Email),
		Name:        strings.TrimSpace(input.Name),
		Company:     input.Company,
		Phone:       input.Phone,
		Status:      enums.QuoteStatusSubmitted,
		Currency:    currency,
		LineCount:   len(priced),
		TotalCost:   totals.SubtotalExVAT,
		VATAmount:   totals.VATAmount,
		TotalIncVAT: totals.TotalIncVAT,
		Breakdown:   breakdown,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, quote); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist quote")
		}

		payload, err := outbox.NewEnvelope(outbox.QuoteSubmittedData{
			QuoteID:     quote.ID,
			SessionID:   quote.SessionID,
			Email:       quote.Email,
			Name:        quote.Name,
			Company:     quote.Company,
			Phone:       quote.Phone,
			Currency:    currency.String(),
			LineCount:   quote.LineCount,
			TotalCost:   quote.TotalCost,
			VATAmount:   quote.VATAmount,
			TotalIncVAT: quote.TotalIncVAT,
			SubmittedAt: time.Now().UTC(),
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode outbox payload")
		}
		event := models.OutboxEvent{
			EventType:     enums.OutboxEventQuoteSubmitted,
			AggregateType: enums.OutboxAggregateQuote,
			AggregateID:   quote.ID,
			Payload:       payload,
		}
		if err := s.events.Insert(tx, event); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "stage outbox event")
		}

		return s.retirePlan(ctx, tx, sessionID)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncSubmission()
	if s.logg != nil {
		s.logg.Info(s.logg.WithQuoteID(ctx, quote.ID.String()), "quote submitted")
	}
	return quote, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote id is required")
	}
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
	}
	return quote, nil
}

// retirePlan marks the session's draft submitted. A session submitting a
// quote without a stored draft is fine; the lines travel in the payload.
func (s *service) retirePlan(ctx context.Context, tx *gorm.DB, sessionID string) error {
	if s.planRepo == nil {
		return nil
	}
	repo := s.planRepo.WithTx(tx)
	draft, err := repo.FindActiveBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load plan draft")
	}
	if err := repo.UpdateStatus(ctx, draft.ID, enums.PlanStatusSubmitted); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "retire plan draft")
	}
	return nil
}

// resolveProduction fills a line's production cost from its rate card when
// the client omitted one. The tier lookup multiplies the applicable unit cost
// by sites and print runs. Lines with an explicit cost, and formats without a
// rate card, pass through untouched.
func (s *service) resolveProduction(ctx context.Context, line LineInput) LineInput {
	if s.cards == nil || line.ProductionCost != 0 {
		return line
	}
	card, err := s.cards.GetByFormatName(ctx, line.FormatName)
	if err != nil || card == nil {
		return line
	}
	line.ProductionCost = ratecards.ResolveProductionCost(card, line.Sites, line.Periods)
	return line
}

func toCampaignLine(line LineInput) pricing.CampaignLine {
	return pricing.CampaignLine{
		FormatName:       line.FormatName,
		Category:         line.Category,
		Sites:            line.Sites,
		Periods:          line.Periods,
		SaleRate:         line.SaleRate,
		ProductionCost:   line.ProductionCost,
		CreativeCount:    line.CreativeCount,
		CreativeUnitCost: line.CreativeUnitCost,
	}
}

func lineDisplay(pl pricing.PricedLine, currency enums.Currency) LineDisplay {
	return LineDisplay{
		MediaBeforeDiscount: money.Format(pl.MediaBeforeDiscount, currency),
		DiscountAmount:      money.Format(pl.DiscountAmount, currency),
		MediaAfterDiscount:  money.Format(pl.MediaAfterDiscount, currency),
		ProductionCost:      money.Format(pl.ProductionCost, currency),
		CreativeCost:        money.Format(pl.CreativeCost, currency),
		Subtotal:            money.Format(pl.Subtotal, currency),
	}
}

// maskPreview blanks every monetary value for gated visitors. Structural
// guidance (in-charge counts, print runs, capacity and creative reports)
// stays visible so the planner remains usable before sign-in.
func maskPreview(result *PreviewResult) {
	maskedDisplay := LineDisplay{
		MediaBeforeDiscount: money.Masked,
		DiscountAmount:      money.Masked,
		MediaAfterDiscount:  money.Masked,
		ProductionCost:      money.Masked,
		CreativeCost:        money.Masked,
		Subtotal:            money.Masked,
	}
	for i := range result.Lines {
		line := &result.Lines[i]
		line.Display = maskedDisplay
		zeroLineMoney(&line.Priced)
		for j := range line.Capacity.Options {
			line.Capacity.Options[j].CostIncrease = 0
			line.Capacity.Options[j].CostIncreasePct = 0
		}
	}
	for i := range result.Groups {
		group := &result.Groups[i]
		group.MediaBeforeDiscount = 0
		group.DiscountAmount = 0
		group.MediaAfterDiscount = 0
		group.ProductionCost = 0
		group.CreativeCost = 0
		group.Subtotal = 0
		group.SharePercent = 0
	}
	result.Totals = pricing.CampaignTotals{VATRatePercent: result.Totals.VATRatePercent}
	result.Display = TotalsDisplay{
		SubtotalExVAT: money.Masked,
		VATAmount:     money.Masked,
		TotalIncVAT:   money.Masked,
	}
}

func zeroLineMoney(pl *pricing.PricedLine) {
	pl.MediaBeforeDiscount = 0
	pl.DiscountAmount = 0
	pl.MediaAfterDiscount = 0
	pl.ProductionCost = 0
	pl.CreativeCost = 0
	pl.Subtotal = 0
}

func warningMessage(err error) string {
	if tagged := pkgerrors.As(err); tagged != nil {
		return tagged.Message()
	}
	return err.Error()
}
