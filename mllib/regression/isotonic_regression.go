package regression

import (
	"github.com/zjykzk/sparkml-client-go/kernel"
)

const isotonicRegressionClass = "IsotonicRegression"

// IsotonicRegression the isotonic regression, only the univariate (single feature)
// algorithm is supported
//
// The kernel implements it with the parallelized pool adjacent violators algorithm.
type IsotonicRegression struct {
	session *kernel.Session
	ref     kernel.RefID
}

// New creates the isotonic regression in the kernel, the isotonic parameter is true
func New(s *kernel.Session) (*IsotonicRegression, error) {
	ref, err := s.Assign(kernel.NewInstance(isotonicRegressionClass))
	if err != nil {
		return nil, err
	}
	return Wrap(s, ref), nil
}

// Wrap wraps the reference without talking to the kernel
func Wrap(s *kernel.Session, ref kernel.RefID) *IsotonicRegression {
	return &IsotonicRegression{session: s, ref: ref}
}

// RefID returns the reference of the regression
func (r *IsotonicRegression) RefID() kernel.RefID {
	return r.ref
}

// Session returns the session holding the regression
func (r *IsotonicRegression) Session() *kernel.Session {
	return r.session
}

// SetIsotonic sets the isotonic (increasing) or antitonic (decreasing) sequence,
// returns the new regression
func (r *IsotonicRegression) SetIsotonic(isotonic bool) (*IsotonicRegression, error) {
	ref, err := r.session.Assign(kernel.Call(r, "setIsotonic", isotonic))
	if err != nil {
		return nil, err
	}
	return Wrap(r.session, ref), nil
}

// Run runs the algorithm on the input, returns the model
//
// The input is the dataset of the tuples (label, feature, weight), the label is the
// dependent variable, the feature is the independent variable, the weight is the count of
// the measures, 1 by default. The labels sharing the same feature are ordered before
// the algorithm runs.
func (r *IsotonicRegression) Run(input kernel.Referencer) (*IsotonicRegressionModel, error) {
	ref, err := r.session.Assign(kernel.Call(r, "run", input))
	if err != nil {
		return nil, err
	}
	return WrapModel(r.session, ref), nil
}
