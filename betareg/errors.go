package betareg

import (
	"errors"
)

var (
	ErrNoOptions           = errors.New("no initialized regression options")
	ErrNoTrainingMatrix    = errors.New("no training matrix")
	ErrNoTargetData        = errors.New("no target data")
	ErrNoDesignMatrix      = errors.New("no design matrix for inference")
	ErrTargetLenMismatch   = errors.New("target length does not match training rows")
	ErrFeatureLenMismatch  = errors.New("number of features does not match number of model coefficients")
	ErrNonFiniteTarget     = errors.New("target contains NaN or infinite values")
	ErrInvalidQuantile     = errors.New("quantile must be strictly between 0 and 1")
	ErrUnfittedModel       = errors.New("regression has not been fit")
	ErrOptimizationFailure = errors.New("likelihood optimization did not converge")
)
