package handlers

import (
	"lexofis/internal/services/tariff"
	"lexofis/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TariffHandler exposes the read-only tariff table. Tariffs are
// deploy-time constants; there is no write endpoint.
type TariffHandler struct {
	table *tariff.Table
}

func NewTariffHandler(table *tariff.Table) *TariffHandler {
	return &TariffHandler{table: table}
}

// ListTariffs returns every category with its bracket ladder.
func (h *TariffHandler) ListTariffs(c *fiber.Ctx) error {
	return response.Success(c, fiber.Map{"tariffs": h.table.Categories()})
}
