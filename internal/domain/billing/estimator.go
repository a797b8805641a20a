package billing

import (
	"encoding/json"
	"math"

	"warebill/internal/core/apperror"
)

// DefaultMaxReportSize is the default rendered-size ceiling (10 MiB).
const DefaultMaxReportSize int64 = 10 * 1024 * 1024

// sizeFactor scales the JSON payload length to approximate the rendered
// file size (binary formats carry structural overhead).
const sizeFactor = 1.5

// SizeEstimator approximates the rendered size of a report before any
// expensive file generation happens.
type SizeEstimator struct {
	limit int64
}

// NewSizeEstimator creates an estimator with the given byte ceiling.
// Non-positive limits fall back to DefaultMaxReportSize.
func NewSizeEstimator(limit int64) *SizeEstimator {
	if limit <= 0 {
		limit = DefaultMaxReportSize
	}
	return &SizeEstimator{limit: limit}
}

// Limit returns the configured ceiling in bytes.
func (e *SizeEstimator) Limit() int64 {
	return e.limit
}

// Estimate returns the approximate rendered size in bytes.
// Unencodable input yields +Inf so the subsequent limit check always
// rejects it; Estimate itself never fails.
func (e *SizeEstimator) Estimate(v any) float64 {
	b, err := json.Marshal(v)
	if err != nil {
		return math.Inf(1)
	}
	return float64(len(b)) * sizeFactor
}

// Check rejects payloads whose estimated size exceeds the ceiling.
func (e *SizeEstimator) Check(v any) error {
	size := e.Estimate(v)
	if size > float64(e.limit) {
		return apperror.NewReportTooLarge(size, e.limit)
	}
	return nil
}
