package domain

import "errors"

var (
	ErrFetch             = errors.New("feed fetch failed")
	ErrParse             = errors.New("feed parse failed")
	ErrCurrencyNotFound  = errors.New("currency not found in rate table")
	ErrTableNotPopulated = errors.New("rate table has not been populated yet")
	ErrSensorNotFound    = errors.New("sensor not found")
	ErrRateOutOfRange    = errors.New("rate is out of representable range")
)
