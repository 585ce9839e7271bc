// Package betareg fits a regression model for outcomes strictly bounded in
// (0,1), such as renewable capacity factors, using a beta distribution
// likelihood. The mean is modeled through a logit link and the precision
// through a log transform so the likelihood can be maximized with an
// unconstrained quasi-newton minimizer. The fitted model produces both mean
// and arbitrary quantile predictions.
package betareg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// epsShape keeps the target values and derived beta shape parameters
	// strictly inside the support of the density during fitting.
	epsShape = 1e-6

	// maxLogPrecision caps the log precision inside the likelihood. A zero
	// variance target has no finite precision maximum, so without the cap
	// the optimizer walks the precision toward the exp overflow boundary.
	// Beyond the cap the distribution is already indistinguishable from a
	// point mass at the mean.
	maxLogPrecision = 14.0

	// unitLo and unitHi bound reported forecasts. Looser than epsShape since
	// predictions are presentational and never fed back into the density.
	unitLo = 0.0
	unitHi = 1.0
)

// Options represents input options to fit the beta regression
type Options struct {
	// MaxIterations caps the number of major iterations of the minimizer
	MaxIterations int

	// GradientThreshold declares convergence once the gradient norm of the
	// negative log-likelihood falls below it
	GradientThreshold float64
}

// NewDefaultOptions returns a default set of beta regression options
func NewDefaultOptions() *Options {
	return &Options{
		MaxIterations:     1000,
		GradientThreshold: 1e-6,
	}
}

// Regression estimates the maximum likelihood parameters of a beta regression
// given a design matrix and a response in (0,1). A successful Fit stores an
// immutable Model snapshot which mean and quantile predictions read from.
type Regression struct {
	opt *Options

	model *Model
}

func New(opt *Options) (*Regression, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	return &Regression{
		opt: opt,
	}, nil
}

// NewFromModel creates a regression instance from a previously fit model
// snapshot. The instance can be used for inference immediately.
func NewFromModel(model *Model) (*Regression, error) {
	if err := model.Valid(); err != nil {
		return nil, err
	}
	return &Regression{
		opt:   NewDefaultOptions(),
		model: model.Copy(),
	}, nil
}

// Fit runs the maximum likelihood estimation of the beta regression
// coefficients and precision over the given design matrix and target values.
// Target values are clipped into [epsShape, 1-epsShape] before evaluating the
// likelihood. A fit that does not converge within the iteration budget
// surfaces ErrOptimizationFailure and leaves any previous model untouched.
func (r *Regression) Fit(x mat.Matrix, y []float64) error {
	if r.opt == nil {
		return ErrNoOptions
	}
	if x == nil {
		return ErrNoTrainingMatrix
	}
	if len(y) == 0 {
		return ErrNoTargetData
	}
	m, n := x.Dims()
	if m != len(y) {
		return fmt.Errorf("training data has %d rows and target has %d values, %w", m, len(y), ErrTargetLenMismatch)
	}
	if n == 0 {
		return fmt.Errorf("training data has no feature columns, %w", ErrNoTrainingMatrix)
	}

	obs := make([]float64, len(y))
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("target value at index %d is %v, %w", i, v, ErrNonFiniteTarget)
		}
		obs[i] = clampShape(v)
	}

	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			return negLogLikelihood(x, obs, params)
		},
		Grad: func(grad, params []float64) {
			negLogLikelihoodGrad(grad, x, obs, params)
		},
	}

	// all coefficients start at zero along with the log precision, putting
	// the initial mean prediction at 0.5 everywhere with unit precision
	init := make([]float64, n+1)

	settings := &optimize.Settings{
		MajorIterations:   r.opt.MaxIterations,
		GradientThreshold: r.opt.GradientThreshold,
	}

	result, err := optimize.Minimize(problem, init, settings, &optimize.BFGS{})
	if err != nil {
		// the line search gives up once float precision hides any further
		// decrease of the likelihood, which routinely happens before the
		// absolute gradient threshold is met. Accept the terminus when the
		// coefficient gradient has vanished relative to the likelihood scale.
		if result == nil || !meanGradConverged(x, obs, result.X, r.opt.GradientThreshold) {
			return fmt.Errorf("minimizer failed: %v, %w", err, ErrOptimizationFailure)
		}
	} else if serr := result.Status.Err(); serr != nil {
		return fmt.Errorf("minimizer status: %v, %w", serr, ErrOptimizationFailure)
	} else if result.Status == optimize.IterationLimit {
		return fmt.Errorf("stopped after %d iterations without converging, %w", r.opt.MaxIterations, ErrOptimizationFailure)
	}

	coef := make([]float64, n)
	copy(coef, result.X[:n])
	r.model = &Model{
		Coef:      coef,
		Precision: math.Exp(math.Min(result.X[n], maxLogPrecision)),
	}
	return nil
}

// negLogLikelihood evaluates the negative beta log-likelihood at the packed
// parameter vector [beta..., log(phi)]. The log parameterization of the
// precision keeps the shape parameters positive for any real valued input,
// which is what allows running an unconstrained minimizer.
func negLogLikelihood(x mat.Matrix, y []float64, params []float64) float64 {
	m, n := x.Dims()
	beta := params[:n]
	phi := math.Exp(math.Min(params[n], maxLogPrecision))

	var nll float64
	for i := 0; i < m; i++ {
		var eta float64
		for j := 0; j < n; j++ {
			eta += x.At(i, j) * beta[j]
		}
		mu := clampShape(Logistic(eta))
		dist := distuv.Beta{Alpha: mu * phi, Beta: (1.0 - mu) * phi}
		nll -= dist.LogProb(y[i])
	}
	return nll
}

// negLogLikelihoodGrad fills grad with the analytic score of the negative
// log-likelihood with respect to [beta..., log(phi)].
func negLogLikelihoodGrad(grad []float64, x mat.Matrix, y []float64, params []float64) {
	m, n := x.Dims()
	beta := params[:n]
	phi := math.Exp(math.Min(params[n], maxLogPrecision))

	for j := range grad {
		grad[j] = 0
	}

	for i := 0; i < m; i++ {
		var eta float64
		for j := 0; j < n; j++ {
			eta += x.At(i, j) * beta[j]
		}
		mu := clampShape(Logistic(eta))
		alpha := mu * phi
		betaShape := (1.0 - mu) * phi
		ly := math.Log(y[i])
		l1y := math.Log(1.0 - y[i])

		dldmu := phi * (mathext.Digamma(betaShape) - mathext.Digamma(alpha) + ly - l1y)
		dmudeta := mu * (1.0 - mu)
		for j := 0; j < n; j++ {
			grad[j] -= dldmu * dmudeta * x.At(i, j)
		}

		dldphi := mathext.Digamma(phi) -
			mu*mathext.Digamma(alpha) -
			(1.0-mu)*mathext.Digamma(betaShape) +
			mu*ly + (1.0-mu)*l1y
		grad[n] -= dldphi * phi
	}

	// the likelihood is flat in the log precision past the cap
	if params[n] > maxLogPrecision {
		grad[n] = 0
	}
}

// meanGradConverged reports whether the coefficient gradient of the negative
// log-likelihood has vanished at params, with the tolerance scaled to the
// likelihood magnitude. The precision gradient is left out on purpose: a zero
// variance target pushes the precision toward infinity at a constant slope
// even though the coefficient estimates are already exact, and the finite
// precision at the line search terminus still yields a usable predictive
// distribution.
func meanGradConverged(x mat.Matrix, y, params []float64, threshold float64) bool {
	_, n := x.Dims()
	if len(params) != n+1 {
		return false
	}
	grad := make([]float64, len(params))
	negLogLikelihoodGrad(grad, x, y, params)
	tol := threshold * math.Max(1.0, math.Abs(negLogLikelihood(x, y, params)))
	return floats.Norm(grad[:n], 2) <= tol
}

// Predict returns the mean capacity prediction for each design matrix row.
// Results are clamped into [0,1].
func (r *Regression) Predict(x mat.Matrix) ([]float64, error) {
	if r.opt == nil {
		return nil, ErrNoOptions
	}
	if r.model == nil {
		return nil, ErrUnfittedModel
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}
	m, n := x.Dims()
	if n != len(r.model.Coef) {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", n, len(r.model.Coef), ErrFeatureLenMismatch)
	}

	res := make([]float64, m)
	for i := 0; i < m; i++ {
		res[i] = clampUnit(Logistic(rowDot(x, i, r.model.Coef)))
	}
	return res, nil
}

// PredictQuantile returns the value below which a fraction q of the
// predictive beta distribution mass falls, for each design matrix row.
// Results are clamped into [0,1].
func (r *Regression) PredictQuantile(x mat.Matrix, q float64) ([]float64, error) {
	if r.opt == nil {
		return nil, ErrNoOptions
	}
	if r.model == nil {
		return nil, ErrUnfittedModel
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}
	if math.IsNaN(q) || q <= 0.0 || q >= 1.0 {
		return nil, fmt.Errorf("got quantile %f, %w", q, ErrInvalidQuantile)
	}
	m, n := x.Dims()
	if n != len(r.model.Coef) {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", n, len(r.model.Coef), ErrFeatureLenMismatch)
	}

	phi := r.model.Precision
	res := make([]float64, m)
	for i := 0; i < m; i++ {
		// the mean stays on the epsShape clamp here so the shape parameters
		// match the ones the likelihood was evaluated with
		mu := clampShape(Logistic(rowDot(x, i, r.model.Coef)))
		dist := distuv.Beta{Alpha: mu * phi, Beta: (1.0 - mu) * phi}
		res[i] = clampUnit(dist.Quantile(q))
	}
	return res, nil
}

// Score computes the r-squared of the mean predictions against the observed
// values for evaluating how well the model fit the training data
func (r *Regression) Score(x mat.Matrix, y []float64) (float64, error) {
	if x == nil {
		return 0.0, ErrNoDesignMatrix
	}
	if len(y) == 0 {
		return 0.0, ErrNoTargetData
	}
	m, _ := x.Dims()
	if m != len(y) {
		return 0.0, fmt.Errorf("design matrix has %d rows and target has %d values, %w", m, len(y), ErrTargetLenMismatch)
	}

	res, err := r.Predict(x)
	if err != nil {
		return 0.0, err
	}
	return stat.RSquaredFrom(res, y, nil), nil
}

// Model returns a copy of the fitted model snapshot
func (r *Regression) Model() (*Model, error) {
	if r.model == nil {
		return nil, ErrUnfittedModel
	}
	return r.model.Copy(), nil
}

// Coef returns a copy of the fitted mean model coefficients
func (r *Regression) Coef() []float64 {
	if r.model == nil {
		return nil
	}
	c := make([]float64, len(r.model.Coef))
	copy(c, r.model.Coef)
	return c
}

// Precision returns the fitted precision of the beta distribution. Larger
// values concentrate mass more tightly around the mean.
func (r *Regression) Precision() float64 {
	if r.model == nil {
		return 0
	}
	return r.model.Precision
}

func rowDot(x mat.Matrix, i int, coef []float64) float64 {
	var eta float64
	for j := 0; j < len(coef); j++ {
		eta += x.At(i, j) * coef[j]
	}
	return eta
}

func clampShape(v float64) float64 {
	return math.Min(1.0-epsShape, math.Max(epsShape, v))
}

func clampUnit(v float64) float64 {
	return math.Min(unitHi, math.Max(unitLo, v))
}
