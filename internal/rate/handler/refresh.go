package handler

import (
	"errors"
	"net/http"

	"ecbrates/internal/domain"

	"github.com/sirupsen/logrus"
)

type RefreshResponse struct {
	ExecID string           `json:"exec_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Table  GetTableResponse `json:"table"`
}

type refreshErrorResponse struct {
	Error  string `json:"error"`
	ExecID string `json:"exec_id"`
}

// Refresh godoc
// @Summary Refresh reference rates now
// @Description Fetches the ECB feed synchronously. On failure the previous table stays in place.
// @Tags Rates
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 502 {object} refreshErrorResponse
// @Router /rates/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	execID, table, err := h.service.Refresh(r.Context())
	if err != nil {
		msg := "failed to refresh reference rates"
		switch {
		case errors.Is(err, domain.ErrParse):
			msg = "ECB feed could not be parsed"
		case errors.Is(err, domain.ErrFetch):
			msg = "ECB feed could not be fetched"
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Refresh", "exec_id": execID}).Warn(msg)
		writeJSON(w, http.StatusBadGateway, refreshErrorResponse{Error: msg, ExecID: execID})
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{
		ExecID: execID,
		Table:  tableResponse(table),
	})
}
