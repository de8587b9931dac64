package ecbfeed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"ecbrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
)

const (
	cubeElement = "Cube"
	timeAttr    = "time"
	dateLayout  = "2006-01-02"
)

// xmlDay is the dated group: <Cube time="..."> holding one leaf per currency.
type xmlDay struct {
	Time  string    `xml:"time,attr"`
	Rates []xmlRate `xml:"Cube"`
}

type xmlRate struct {
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}

// Decode parses an eurofxref document. Element names are matched namespace agnostic, the first Cube
// carrying a time attribute is taken as the dated group. A document without a dated group yields a table
// holding only EUR. Leaves with an unusable rate are skipped.
func Decode(r io.Reader, fetchedAt time.Time) (domain.RateTable, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		day         *xmlDay
		sawElements bool
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return domain.RateTable{}, fmt.Errorf("%w: %v", domain.ErrParse, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawElements = true
		if day != nil || !isDatedCube(start) {
			continue
		}

		var d xmlDay
		if err = decoder.DecodeElement(&d, &start); err != nil {
			return domain.RateTable{}, fmt.Errorf("%w: dated group: %v", domain.ErrParse, err)
		}
		day = &d
	}

	if !sawElements {
		return domain.RateTable{}, fmt.Errorf("%w: empty document", domain.ErrParse)
	}
	if day == nil {
		logrus.Warn("No dated Cube group found in ECB feed")
		return domain.NewRateTable(nil, time.Time{}, fetchedAt), nil
	}
	return buildTable(*day, fetchedAt), nil
}

func buildTable(day xmlDay, fetchedAt time.Time) domain.RateTable {
	asOf, err := time.Parse(dateLayout, strings.TrimSpace(day.Time))
	if err != nil {
		logrus.Warnf("Invalid date '%s' in ECB feed: %v", day.Time, err)
		asOf = time.Time{}
	}

	rates := make(map[string]float64, len(day.Rates))
	for _, leaf := range day.Rates {
		code := strings.ToUpper(strings.TrimSpace(leaf.Currency))
		raw := strings.TrimSpace(leaf.Rate)
		if code == "" || raw == "" {
			continue
		}
		value, parseErr := decimal.NewFromString(raw)
		if parseErr != nil {
			logrus.Warnf("Invalid rate format for currency %s: %s", code, leaf.Rate)
			continue
		}
		if !value.IsPositive() {
			logrus.Warnf("Non-positive rate for currency %s: %s", code, leaf.Rate)
			continue
		}
		f := value.InexactFloat64()
		if f == 0 || math.IsInf(f, 0) {
			logrus.Warnf("Rate out of range for currency %s: %s", code, leaf.Rate)
			continue
		}
		rates[code] = f
	}

	table := domain.NewRateTable(rates, asOf, fetchedAt)
	logrus.WithField("as_of", day.Time).Debugf("Currencies found in ECB feed: %v", table.Codes())
	return table
}

func isDatedCube(start xml.StartElement) bool {
	if start.Name.Local != cubeElement {
		return false
	}
	for _, attr := range start.Attr {
		if attr.Name.Local == timeAttr {
			return true
		}
	}
	return false
}
