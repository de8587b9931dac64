package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ecbrates/internal/domain"
	"ecbrates/internal/rate"
)

type rateService interface {
	GetByCodes(ctx context.Context, base, quote string, precision int) (rate.View, error)
	Table(ctx context.Context) domain.RateTable
	SupportedCodes(ctx context.Context) []string
	Refresh(ctx context.Context) (string, domain.RateTable, error)
}

type pairValidator interface {
	ValidateCodes(base, quote string) error
}

type sensorRegistry interface {
	List() []domain.SensorState
	Get(id string) (domain.SensorState, error)
}

type Handler struct {
	validator pairValidator
	service   rateService
	sensors   sensorRegistry
}

func NewRateHandler(validator pairValidator, service rateService, sensors sensorRegistry) *Handler {
	return &Handler{validator: validator, service: service, sensors: sensors}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
