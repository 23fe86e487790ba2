// SPDX-License-Identifier: MIT
package logger

// Standard field names for structured logging across coda.
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldFile       = "file"
	FieldDurationMS = "duration_ms"

	// Table shape
	FieldFeatures = "features"
	FieldSamples  = "samples"
	FieldDropped  = "dropped"
	FieldZeros    = "zeros"

	// Pipeline parameters
	FieldBase        = "base"
	FieldDenominator = "denominator"
	FieldImpute      = "impute"
	FieldTransposed  = "transposed"
	FieldWorkers     = "workers"
	FieldCount       = "count"
)
