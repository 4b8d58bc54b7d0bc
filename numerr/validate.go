// SPDX-License-Identifier: MIT

package numerr

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// tagFinite rejects NaN and ±Inf in float64 fields and float64 slices.
const tagFinite = "finite"

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation(tagFinite, isFinite)
	})

	return validate
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return true
	}
}

// Validate runs the struct tags of req and reports the first violation as ErrInput.
// A nil result means every tagged field holds an acceptable value; cross-field
// checks (xl < xu, matrix shapes) remain the caller's job.
func Validate(req any) error {
	err := validatorInstance().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Errorf("field %s failed %q (%s): %w", fe.Field(), fe.Tag(), fe.Param(), ErrInput)
		}

		return fmt.Errorf("field %s failed %q: %w", fe.Field(), fe.Tag(), ErrInput)
	}

	return fmt.Errorf("%v: %w", err, ErrInput)
}
