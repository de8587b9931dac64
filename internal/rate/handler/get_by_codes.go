package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ecbrates/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const maxPrecision = 10

type GetByCodesResponse struct {
	Base      string    `json:"base" example:"USD"`
	Quote     string    `json:"quote" example:"JPY"`
	Value     float64   `json:"value" example:"145.4545"`
	Precision int       `json:"precision" example:"4"`
	AsOf      string    `json:"as_of" example:"2024-01-01"`
	FetchedAt time.Time `json:"fetched_at" example:"2024-01-01T16:05:00Z"`
}

// GetByCodes godoc
// @Summary Get rate by currency codes
// @Description Price of one unit of base expressed in quote, derived from the latest ECB reference table
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency" example(USD)
// @Param quote path string true "Quote currency" example(JPY)
// @Param precision query int false "Decimal places, defaults to the configured precision"
// @Success 200 {object} GetByCodesResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse "rate out of range"
// @Failure 503 {object} errorResponse "reference table not loaded yet"
// @Failure 500 {object} errorResponse
// @Router /rates/{base}/{quote} [get]
func (h *Handler) GetByCodes(w http.ResponseWriter, r *http.Request) {
	base := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))
	quote := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "quote")))

	if err := h.validator.ValidateCodes(base, quote); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	precision := -1
	if raw := r.URL.Query().Get("precision"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 || p > maxPrecision {
			writeError(w, http.StatusBadRequest, "precision must be an integer between 0 and "+strconv.Itoa(maxPrecision))
			return
		}
		precision = p
	}

	view, err := h.service.GetByCodes(r.Context(), base, quote, precision)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCurrencyNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrRateOutOfRange):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrTableNotPopulated):
			writeError(w, http.StatusServiceUnavailable, "reference rates not loaded yet")
		default:
			msg := "ups, couldn't get rate by codes this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByCodes", "base": base, "quote": quote}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, GetByCodesResponse{
		Base:      view.Base,
		Quote:     view.Quote,
		Value:     view.Value,
		Precision: view.Precision,
		AsOf:      formatDate(view.AsOf),
		FetchedAt: view.FetchedAt,
	})
}
