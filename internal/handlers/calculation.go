package handlers

import (
	"errors"
	"log"
	"time"

	"lexofis/internal/models"
	"lexofis/internal/services/calculation"
	"lexofis/internal/services/feecalc"
	"lexofis/internal/services/tariff"
	"lexofis/internal/utils/response"
	"lexofis/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculationHandler exposes the fee calculation endpoints.
type CalculationHandler struct {
	service *calculation.Service
}

func NewCalculationHandler(service *calculation.Service) *CalculationHandler {
	return &CalculationHandler{service: service}
}

// calculationRequest is the JSON body of preview and store calls.
// Stringly-typed HTTP input converts to the typed request exactly once,
// here at the boundary.
type calculationRequest struct {
	CalculationType string   `json:"calculation_type"`
	SubjectValue    float64  `json:"subject_value"`
	PartyCount      int      `json:"party_count"`
	VATRate         *float64 `json:"vat_rate"`
	CaseID          string   `json:"case_id"`
	ClientID        string   `json:"client_id"`
}

func (r calculationRequest) toRequest() feecalc.Request {
	req := feecalc.Request{
		Category:     models.TariffCategory(r.CalculationType),
		SubjectValue: decimal.NewFromFloat(r.SubjectValue),
		PartyCount:   r.PartyCount,
		CaseID:       r.CaseID,
		ClientID:     r.ClientID,
	}
	if r.VATRate != nil {
		rate := decimal.NewFromFloat(*r.VATRate)
		req.VATRate = &rate
	}
	return req
}

// Preview runs a calculation without persisting it.
func (h *CalculationHandler) Preview(c *fiber.Ctx) error {
	var body calculationRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	res, err := h.service.Preview(body.toRequest())
	if err != nil {
		return handleCalculationError(c, err)
	}

	return response.Success(c, previewPayload(res))
}

func previewPayload(res *feecalc.Result) fiber.Map {
	return fiber.Map{
		"calculation_type": res.Category,
		"party_count":      res.PartyCount,
		"subject_value":    res.SubjectValue.Round(2),
		"base_fee":         res.BaseFee.Round(2),
		"vat_rate":         res.VATRate,
		"vat_amount":       res.VATAmount.Round(2),
		"total_fee":        res.TotalFee.Round(2),
		"fee_per_party":    res.FeePerParty.Round(2),
		"calculation_details": fiber.Map{
			"applicable_tariff": res.AppliedBracket,
			"calculation_steps": res.Steps,
		},
	}
}

// Create runs a calculation and persists the result.
func (h *CalculationHandler) Create(c *fiber.Ctx) error {
	var body calculationRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	stored, err := h.service.CalculateAndStore(c.Context(), body.toRequest())
	if err != nil {
		return handleCalculationError(c, err)
	}

	return response.Created(c, stored)
}

// List returns stored calculations, newest first, with optional filters.
func (h *CalculationHandler) List(c *fiber.Ctx) error {
	filters := calculation.ListFilters{
		CaseID:   c.Query("case_id"),
		ClientID: c.Query("client_id"),
		Category: models.TariffCategory(c.Query("calculation_type")),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return response.BadRequest(c, "Invalid from date")
		}
		filters.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return response.BadRequest(c, "Invalid to date")
		}
		filters.To = &t
	}

	calcs, err := h.service.List(c.Context(), filters)
	if err != nil {
		return handleCalculationError(c, err)
	}
	return response.Success(c, calcs)
}

// Get returns one stored calculation.
func (h *CalculationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid calculation ID")
	}

	stored, err := h.service.Get(c.Context(), id)
	if err != nil {
		return handleCalculationError(c, err)
	}
	return response.Success(c, stored)
}

// Delete hard-removes a stored calculation.
func (h *CalculationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid calculation ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return handleCalculationError(c, err)
	}
	return response.Success(c, fiber.Map{"deleted": id})
}

// InvoiceItems produces the invoice line items for a stored calculation.
// The items are returned to the caller; invoicing itself happens upstream.
func (h *CalculationHandler) InvoiceItems(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid calculation ID")
	}

	items, err := h.service.GenerateInvoiceLineItems(c.Context(), id)
	if err != nil {
		return handleCalculationError(c, err)
	}
	return response.Success(c, fiber.Map{"items": items})
}

func handleCalculationError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return response.ValidationFailed(c, verrs)
	}
	if errors.Is(err, calculation.ErrCalculationNotFound) {
		return response.NotFound(c, "Calculation not found")
	}
	if errors.Is(err, tariff.ErrUnknownCategory) || errors.Is(err, feecalc.ErrNoBracket) {
		// Static tariff data is wrong; nothing the caller can fix.
		log.Printf("tariff configuration error: %v", err)
		return response.ServerError(c, "Tariff configuration error")
	}
	log.Printf("calculation storage error: %v", err)
	return response.ServerError(c, "Internal server error")
}
