package main

import (
	"ecbrates/internal/app"

	"github.com/sirupsen/logrus"
)

// @title ECB Rates API
// @version 1.0
// @description Daily ECB euro foreign exchange reference rates and derived currency pair sensors
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped with error")
	}
}
