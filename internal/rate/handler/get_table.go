package handler

import (
	"net/http"
	"time"

	"ecbrates/internal/domain"
)

type GetTableResponse struct {
	Base      string             `json:"base" example:"EUR"`
	AsOf      string             `json:"as_of" example:"2024-01-01"`
	FetchedAt *time.Time         `json:"fetched_at,omitempty"`
	Populated bool               `json:"populated"`
	Rates     map[string]float64 `json:"rates"`
}

// GetTable godoc
// @Summary Current reference table
// @Description Units of each currency per 1 EUR as last published by the ECB
// @Tags Rates
// @Produce json
// @Success 200 {object} GetTableResponse
// @Router /rates [get]
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	table := h.service.Table(r.Context())
	writeJSON(w, http.StatusOK, tableResponse(table))
}

func tableResponse(table domain.RateTable) GetTableResponse {
	res := GetTableResponse{
		Base:      domain.BaseCurrency,
		AsOf:      formatDate(table.AsOf()),
		Populated: table.Populated(),
		Rates:     table.Rates(),
	}
	if table.Populated() {
		fetchedAt := table.FetchedAt()
		res.FetchedAt = &fetchedAt
	}
	return res
}
