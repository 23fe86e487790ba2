// SPDX-License-Identifier: MIT
package config

import (
	"github.com/katalvlaran/coda/logratio"
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Transform defaults
	v.SetDefault("transform.base", logratio.BaseE.String())
	v.SetDefault("transform.denominator", logratio.DenomGeoMean.String())
	v.SetDefault("transform.impute", logratio.ImputeMultiplicative.String())
	v.SetDefault("transform.delta", 0.0) // 0 = derive from the detection limit
	v.SetDefault("transform.impute_proportion", logratio.DefaultImputeProportion)
	v.SetDefault("transform.sum_constraint", 0.0) // 0 = column sum
	v.SetDefault("transform.remove_essential_zeros", false)
	v.SetDefault("transform.orientation", logratio.OrientAuto.String())

	// Batch defaults
	v.SetDefault("batch.workers", 0) // 0 = GOMAXPROCS

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}
