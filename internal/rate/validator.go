package rate

import (
	"errors"
	"fmt"

	"ecbrates/internal/domain"
)

var (
	ErrBaseRequired  = errors.New("base currency is required")
	ErrQuoteRequired = errors.New("quote currency is required")
	ErrSameCodes     = errors.New("base and quote must be different")
	ErrBaseInvalid   = errors.New("base currency must be a 3-letter code")
	ErrQuoteInvalid  = errors.New("quote currency must be a 3-letter code")
	ErrPairFormat    = errors.New("currency pair must look like BASE/QUOTE")
)

type CurrencyValidator struct{}

func (v *CurrencyValidator) ValidateCodes(base, quote string) error {
	if base == "" {
		return ErrBaseRequired
	}
	if quote == "" {
		return ErrQuoteRequired
	}
	if !isCurrencyCode(base) {
		return ErrBaseInvalid
	}
	if !isCurrencyCode(quote) {
		return ErrQuoteInvalid
	}
	if base == quote {
		return ErrSameCodes
	}
	return nil
}

// ParsePairs turns configured "BASE/QUOTE" strings into pairs. Invalid entries are reported in errs and
// skipped, duplicates are dropped keeping the first occurrence.
func (v *CurrencyValidator) ParsePairs(raw []string) (pairs []domain.RatePair, errs []error) {
	seen := make(map[domain.RatePair]struct{}, len(raw))
	for _, s := range raw {
		pair, ok := domain.ParsePair(s)
		if !ok {
			errs = append(errs, fmt.Errorf("%q: %w", s, ErrPairFormat))
			continue
		}
		if err := v.ValidateCodes(pair.Base, pair.Quote); err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", s, err))
			continue
		}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		pairs = append(pairs, pair)
	}
	return pairs, errs
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func NewValidator() *CurrencyValidator {
	return &CurrencyValidator{}
}
