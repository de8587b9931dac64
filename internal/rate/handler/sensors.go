package handler

import (
	"errors"
	"net/http"

	"ecbrates/internal/domain"

	"github.com/go-chi/chi/v5"
)

type ListSensorsResponse struct {
	Sensors []domain.SensorState `json:"sensors"`
}

// ListSensors godoc
// @Summary List sensors
// @Tags Sensors
// @Produce json
// @Success 200 {object} ListSensorsResponse
// @Router /sensors [get]
func (h *Handler) ListSensors(w http.ResponseWriter, _ *http.Request) {
	sensors := h.sensors.List()
	if sensors == nil {
		sensors = []domain.SensorState{}
	}
	writeJSON(w, http.StatusOK, ListSensorsResponse{Sensors: sensors})
}

// GetSensor godoc
// @Summary Get sensor by unique id
// @Tags Sensors
// @Produce json
// @Param id path string true "Sensor unique id" example(ecb_USD_JPY)
// @Success 200 {object} domain.SensorState
// @Failure 404 {object} errorResponse
// @Router /sensors/{id} [get]
func (h *Handler) GetSensor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := h.sensors.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrSensorNotFound) {
			writeError(w, http.StatusNotFound, "sensor not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}
