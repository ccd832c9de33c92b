package validation

import (
	"fmt"
	"strings"

	"github.com/cschone/bikefit/pkg/spec"
)

// Sane input ranges. Tube angles outside (0, 90) degrees cannot describe a
// rideable frame under the fixed from-horizontal convention.
const (
	minTubeAngle = 0.0
	maxTubeAngle = 90.0
)

// ValidateBicycle checks a parsed bicycle document for degenerate values
// before any coordinate derivation runs. Missing dimensions are not
// errors here; the solver reports those per derivation step.
func ValidateBicycle(b *spec.Bicycle) *Report {
	r := NewReport()

	for _, d := range b.Dimensions() {
		if d.Value == nil {
			continue
		}
		if strings.HasSuffix(d.Name, "_angle") {
			validateAngle(d, r)
		} else {
			validateLength(d, r)
		}
	}

	validateChainstay(b, r)
	validateWheelbase(b, r)

	return r
}

// ValidateRider checks a rider document. All measurements are optional
// but must be positive when present.
func ValidateRider(rd *spec.Rider) *Report {
	r := NewReport()
	for _, m := range rd.Measurements() {
		if m.Value == nil {
			continue
		}
		if *m.Value <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("rider.%s must be greater than 0", m.Name),
				Field:       "rider." + m.Name,
				ActualValue: *m.Value,
				Expected:    "> 0",
			})
		}
	}
	return r
}

func validateAngle(d spec.Dimension, r *Report) {
	if *d.Value <= minTubeAngle || *d.Value >= maxTubeAngle {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s %.1f is outside the valid range (0-90 degrees)", d.Name, *d.Value),
			Field:       "bicycle." + d.Name,
			ActualValue: *d.Value,
			Expected:    "0 < angle < 90",
		})
	}
}

func validateLength(d spec.Dimension, r *Report) {
	// Handlebar offsets may legitimately be zero or negative (bar below or
	// behind the head tube top); every other length must be positive.
	if strings.HasPrefix(d.Name, "handlebar_") {
		return
	}
	if *d.Value <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be greater than 0", d.Name),
			Field:       "bicycle." + d.Name,
			ActualValue: *d.Value,
			Expected:    "> 0",
		})
	}
}

// validateChainstay checks that the rear axle is constructible: the
// chainstay is the hypotenuse of a triangle whose vertical leg is bb_drop.
func validateChainstay(b *spec.Bicycle, r *Report) {
	if b.ChainstayLength == nil || b.BBDrop == nil {
		return
	}
	if *b.ChainstayLength <= *b.BBDrop {
		r.AddError(Result{
			Level:       LevelGeometry,
			Message:     fmt.Sprintf("chainstay_length %.1f must exceed bb_drop %.1f", *b.ChainstayLength, *b.BBDrop),
			Field:       "bicycle.chainstay_length",
			ActualValue: *b.ChainstayLength,
			Expected:    fmt.Sprintf("> %.1f", *b.BBDrop),
			Suggestions: []string{"check that both values are in millimeters"},
		})
	}
}

func validateWheelbase(b *spec.Bicycle, r *Report) {
	if b.Wheelbase == nil || b.ChainstayLength == nil {
		return
	}
	if *b.Wheelbase <= *b.ChainstayLength {
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     fmt.Sprintf("wheelbase %.1f is not longer than chainstay_length %.1f", *b.Wheelbase, *b.ChainstayLength),
			Field:       "bicycle.wheelbase",
			ActualValue: *b.Wheelbase,
			Expected:    fmt.Sprintf("> %.1f", *b.ChainstayLength),
		})
	}
}
