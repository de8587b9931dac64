package rate

import "time"

type View struct {
	Base      string
	Quote     string
	Value     float64
	Precision int
	AsOf      time.Time
	FetchedAt time.Time
}
