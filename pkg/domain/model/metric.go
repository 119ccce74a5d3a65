package model

import "time"

// ModelMetric is a single row of the Key Metrics section: one algorithm
// with its accuracy and compliance rate, both in [0, 100]. Date marks when
// the metric was recorded and may be zero when the dataset omits it.
type ModelMetric struct {
	Model          string
	Accuracy       float64
	ComplianceRate float64
	Date           time.Time
}
