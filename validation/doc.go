// Package validation checks configuration structs and reports failures as
// errors.AppError values.
//
// Struct tags cover the per-field rules:
//
//	type Config struct {
//	    Count int     `mapstructure:"count" validate:"gte=0"`
//	    Scale float64 `mapstructure:"scale" validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
//
// The Validator collector handles the rest:
//
//	v := validation.New().Merge("", validation.Validate(cfg))
//	v.OptionalUUID("run_id", cfg.RunID)
//	err := v.Validate()
package validation
