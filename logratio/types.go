// SPDX-License-Identifier: MIT
// Package logratio: closed enumerations and their string boundary.
//
// Every user-facing choice is a small integer type with a fixed set of
// constants. Strings are parsed once at the boundary (flags, config files)
// and rejected there; the pipeline only ever sees valid values.

package logratio

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/matrix"
)

// Base selects the logarithm used by the logratio core.
type Base uint8

const (
	// BaseE is the natural logarithm (default).
	BaseE Base = iota
	// Base2 is the binary logarithm.
	Base2
)

// String implements fmt.Stringer with the same spelling ParseBase accepts.
func (b Base) String() string {
	switch b {
	case BaseE:
		return "e"
	case Base2:
		return "2"
	default:
		return "Base(" + strconv.Itoa(int(b)) + ")"
	}
}

// valid reports whether b is one of the declared constants.
func (b Base) valid() bool { return b <= Base2 }

// logMatrix takes the base-b logarithm of every entry of a strictly positive matrix.
func (b Base) logMatrix(m matrix.Matrix) (*matrix.Dense, error) {
	switch b {
	case BaseE:
		return matrix.Log(m)
	case Base2:
		return matrix.Log2(m)
	default:
		return nil, errors.Wrapf(ErrInvalidBase, "base %s", b)
	}
}

// ParseBase maps "e" and "2" to a Base; anything else is ErrInvalidBase.
func ParseBase(s string) (Base, error) {
	switch strings.TrimSpace(s) {
	case "e":
		return BaseE, nil
	case "2":
		return Base2, nil
	default:
		return 0, errors.WithHint(
			errors.Wrapf(ErrInvalidBase, "%q", s),
			`use "e" or "2"`)
	}
}

// ImputeMethod selects the zero-replacement strategy.
type ImputeMethod uint8

const (
	// ImputeMultiplicative replaces zeros with delta and shrinks the non-zero
	// parts so the sample keeps its total (default).
	ImputeMultiplicative ImputeMethod = iota
	// ImputeAdditive replaces zeros with delta and leaves every other value alone.
	ImputeAdditive
)

// String implements fmt.Stringer.
func (m ImputeMethod) String() string {
	switch m {
	case ImputeMultiplicative:
		return "multiplicative"
	case ImputeAdditive:
		return "additive"
	default:
		return "ImputeMethod(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseImputeMethod maps "multiplicative" / "additive" (case-insensitive).
func ParseImputeMethod(s string) (ImputeMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiplicative":
		return ImputeMultiplicative, nil
	case "additive":
		return ImputeAdditive, nil
	default:
		return 0, errors.WithHint(
			errors.Wrapf(ErrConfiguration, "impute method %q", s),
			`use "multiplicative" or "additive"`)
	}
}

// DenominatorMode selects a built-in per-sample denominator.
type DenominatorMode uint8

const (
	// DenomGeoMean divides by the sample's geometric mean (CLR, default).
	DenomGeoMean DenominatorMode = iota
	// DenomDESeq2 divides by the DESeq2 median-of-ratios size factor.
	DenomDESeq2
)

// String implements fmt.Stringer with the spelling ParseDenominatorMode accepts.
func (d DenominatorMode) String() string {
	switch d {
	case DenomGeoMean:
		return "geomean"
	case DenomDESeq2:
		return "DESeq2"
	default:
		return "DenominatorMode(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDenominatorMode accepts exactly "geomean" or "DESeq2".
func ParseDenominatorMode(s string) (DenominatorMode, error) {
	switch strings.TrimSpace(s) {
	case "geomean":
		return DenomGeoMean, nil
	case "DESeq2":
		return DenomDESeq2, nil
	default:
		return 0, errors.WithHint(
			errors.Wrapf(ErrInvalidMode, "%q", s),
			`use "geomean" or "DESeq2"`)
	}
}

// Orientation tells the pipeline which axis holds the features.
type Orientation uint8

const (
	// OrientAuto treats the longer axis as features: a table with more
	// columns than rows is transposed. Square tables keep rows as features.
	OrientAuto Orientation = iota
	// OrientFeaturesByRows never transposes.
	OrientFeaturesByRows
	// OrientSamplesByRows always transposes.
	OrientSamplesByRows
)

// String implements fmt.Stringer with the spelling ParseOrientation accepts.
func (o Orientation) String() string {
	switch o {
	case OrientAuto:
		return "auto"
	case OrientFeaturesByRows:
		return "features"
	case OrientSamplesByRows:
		return "samples"
	default:
		return "Orientation(" + strconv.Itoa(int(o)) + ")"
	}
}

// ParseOrientation maps "auto", "features" and "samples" (case-insensitive).
// "features" means rows are features; "samples" means rows are samples.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return OrientAuto, nil
	case "features":
		return OrientFeaturesByRows, nil
	case "samples":
		return OrientSamplesByRows, nil
	default:
		return 0, errors.WithHint(
			errors.Wrapf(ErrConfiguration, "orientation %q", s),
			`use "auto", "features" or "samples"`)
	}
}
