package domain

import "time"

const DeviceClassMonetary = "monetary"

// SensorState is what gets published to the host for a single configured pair.
type SensorState struct {
	UniqueID    string     `json:"unique_id"`
	Name        string     `json:"name"`
	Pair        string     `json:"pair"`
	State       *float64   `json:"state"`
	Unit        string     `json:"unit_of_measurement"`
	DeviceClass string     `json:"device_class"`
	Available   bool       `json:"available"`
	AsOf        *time.Time `json:"as_of,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func SensorUniqueID(p RatePair) string { return "ecb_" + p.Base + "_" + p.Quote }

func SensorName(p RatePair) string { return "Exchange Rate " + p.String() }
