package wall

import (
	"errors"
	"fmt"
	"math"
)

type Kind int

const (
	// TypeKind: value of the wrong type (nil, unconstructed, NaN/Inf).
	TypeKind Kind = iota + 1
	// RangeKind: numeric field outside its allowed domain.
	RangeKind
)

func (k Kind) String() string {
	switch k {
	case TypeKind:
		return "type"
	case RangeKind:
		return "range"
	default:
		return "unknown"
	}
}

var (
	ErrType  = errors.New("wrong value type")
	ErrRange = errors.New("value out of range")
)

type ValidationError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrType:
		return e.Kind == TypeKind
	case ErrRange:
		return e.Kind == RangeKind
	}
	return false
}

// KindOf returns the validation kind carried by err, or 0.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}

func typeErr(field, reason string) error {
	return &ValidationError{Kind: TypeKind, Field: field, Reason: reason}
}

func rangeErr(field, reason string) error {
	return &ValidationError{Kind: RangeKind, Field: field, Reason: reason}
}

func checkNumber(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return typeErr(field, "must be a finite number")
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if err := checkNumber(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return rangeErr(field, "must be positive")
	}
	return nil
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
