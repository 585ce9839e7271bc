package betareg

import (
	"errors"
	"fmt"
)

var (
	ErrNoModel             = errors.New("no model")
	ErrNoModelCoefficients = errors.New("model has no coefficients")
	ErrInvalidPrecision    = errors.New("model precision must be positive")
)

// Model is the serializable snapshot of a fitted beta regression holding the
// mean model coefficients and the precision of the beta distribution. It is
// produced by a successful Fit and never mutated afterwards.
type Model struct {
	Coef      []float64 `json:"coefficients"`
	Precision float64   `json:"precision"`
}

// Valid reports whether the model can be used for inference.
func (m *Model) Valid() error {
	if m == nil {
		return ErrNoModel
	}
	if len(m.Coef) == 0 {
		return ErrNoModelCoefficients
	}
	if m.Precision <= 0 {
		return fmt.Errorf("got precision %f, %w", m.Precision, ErrInvalidPrecision)
	}
	return nil
}

// Copy returns a deep copy of the model snapshot.
func (m *Model) Copy() *Model {
	if m == nil {
		return nil
	}
	coef := make([]float64, len(m.Coef))
	copy(coef, m.Coef)
	return &Model{
		Coef:      coef,
		Precision: m.Precision,
	}
}
