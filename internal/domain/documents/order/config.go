package order

import "warebill/pkg/numerator"

const (
	// NumeratorStrategy defines the numbering strategy for this document type.
	// Orders are internal documents, so gaps after restarts are acceptable.
	NumeratorStrategy = numerator.StrategyCached
)
