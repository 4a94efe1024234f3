// Package calculation bridges the pure fee calculator to persistence and
// to invoice line-item generation. Stored calculations are immutable
// history: create, read, delete, never update.
package calculation

import (
	"context"
	"fmt"
	"log"

	"lexofis/internal/models"
	"lexofis/internal/services/feecalc"

	"github.com/google/uuid"
)

// Service persists calculation results and produces invoice line items
// from them. It never retries storage failures; those surface unchanged
// so the transport layer decides on user-facing messaging.
type Service struct {
	repo  Repository
	cache Cache // optional
	calc  *feecalc.Calculator
}

// NewService wires the record service. cache may be nil.
func NewService(repo Repository, cache Cache, calc *feecalc.Calculator) *Service {
	return &Service{repo: repo, cache: cache, calc: calc}
}

// Preview runs the calculation without persisting anything.
func (s *Service) Preview(req feecalc.Request) (*feecalc.Result, error) {
	return s.calc.Calculate(req)
}

// CalculateAndStore runs the calculation and persists the result under a
// fresh id. Validation failures propagate without touching storage.
func (s *Service) CalculateAndStore(ctx context.Context, req feecalc.Request) (*models.StoredCalculation, error) {
	res, err := s.calc.Calculate(req)
	if err != nil {
		return nil, err
	}

	stored := fromResult(res)
	stored.CaseID = req.CaseID
	stored.ClientID = req.ClientID

	if err := s.repo.Create(ctx, stored); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheCalculation(ctx, stored); err != nil {
			log.Printf("failed to cache calculation %s: %v", stored.ID, err)
		}
	}
	return stored, nil
}

// Get fetches one stored calculation, cache first.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.StoredCalculation, error) {
	if s.cache != nil {
		if calc, found, err := s.cache.GetCalculation(ctx, id); err == nil && found {
			return calc, nil
		}
	}

	calc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheCalculation(ctx, calc); err != nil {
			log.Printf("failed to cache calculation %s: %v", calc.ID, err)
		}
	}
	return calc, nil
}

// List returns stored calculations matching the filters, newest first.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]models.StoredCalculation, error) {
	return s.repo.List(ctx, filters)
}

// Delete hard-removes a stored calculation. Invoice items already handed
// off are owned by the invoicing side and are not touched.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateCalculation(ctx, id); err != nil {
			log.Printf("failed to invalidate calculation %s: %v", id, err)
		}
	}
	return nil
}

// GenerateInvoiceLineItems produces the line items the invoicing system
// consumes for one stored calculation: a single mediation service fee line
// priced at the base fee.
func (s *Service) GenerateInvoiceLineItems(ctx context.Context, id uuid.UUID) ([]models.InvoiceLineItem, error) {
	stored, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item := models.InvoiceLineItem{
		Description: fmt.Sprintf("Mediation service fee (%d parties)", stored.PartyCount),
		Quantity:    1,
		UnitPrice:   stored.BaseFee,
		VATRate:     stored.VATRate,
		VATAmount:   stored.VATAmount,
		LineTotal:   stored.BaseFee.Add(stored.VATAmount),
		ReferenceID: stored.ID,
	}
	return []models.InvoiceLineItem{item}, nil
}

// fromResult rounds the full-precision result to the 2-decimal figures the
// record columns carry.
func fromResult(res *feecalc.Result) *models.StoredCalculation {
	b := res.AppliedBracket
	return &models.StoredCalculation{
		ID:                uuid.New(),
		Category:          res.Category,
		SubjectValue:      res.SubjectValue.Round(2),
		PartyCount:        res.PartyCount,
		VATRate:           res.VATRate,
		BaseFee:           res.BaseFee.Round(2),
		VATAmount:         res.VATAmount.Round(2),
		TotalFee:          res.TotalFee.Round(2),
		FeePerParty:       res.FeePerParty.Round(2),
		BracketMin:        b.MinValue,
		BracketMax:        b.MaxValue,
		BracketFixedFee:   b.FixedFee,
		BracketPercentage: b.Percentage,
		Steps:             res.Steps,
	}
}
