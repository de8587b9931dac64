package api

import (
	_ "ecbrates/docs"
	"ecbrates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/v1/rates", rateHandler.GetTable)
	router.Post("/api/v1/rates/refresh", rateHandler.Refresh)
	router.Get("/api/v1/rates/supported-currencies", rateHandler.GetSupportedCodes)
	router.Get("/api/v1/rates/{base:[A-Za-z]{3}}/{quote:[A-Za-z]{3}}", rateHandler.GetByCodes)

	router.Get("/api/v1/sensors", rateHandler.ListSensors)
	router.Get("/api/v1/sensors/{id}", rateHandler.GetSensor)
	return router
}
