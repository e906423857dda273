package regression

import (
	"encoding/json"

	"github.com/zjykzk/sparkml-client-go/kernel"
	"github.com/zjykzk/sparkml-client-go/rdd"
	"github.com/zjykzk/sparkml-client-go/spark"
)

const isotonicRegressionModelClass = "IsotonicRegressionModel"

// IsotonicRegressionModel the model produced by the isotonic regression
//
// The boundaries are in increasing order, the predictions are monotone and match the
// boundaries one by one.
type IsotonicRegressionModel struct {
	session *kernel.Session
	ref     kernel.RefID
}

// WrapModel wraps the reference without talking to the kernel
func WrapModel(s *kernel.Session, ref kernel.RefID) *IsotonicRegressionModel {
	return &IsotonicRegressionModel{session: s, ref: ref}
}

// LoadModel loads the model saved in the path
func LoadModel(sc *spark.Context, path string) (*IsotonicRegressionModel, error) {
	s := sc.Session()
	ref, err := s.Assign(kernel.Static(isotonicRegressionModelClass, "load", sc, path))
	if err != nil {
		return nil, err
	}
	return WrapModel(s, ref), nil
}

// RefID returns the reference of the model
func (m *IsotonicRegressionModel) RefID() kernel.RefID {
	return m.ref
}

// Session returns the session holding the model
func (m *IsotonicRegressionModel) Session() *kernel.Session {
	return m.session
}

// Predict predicts the labels of the features in the dataset
func (m *IsotonicRegressionModel) Predict(testData kernel.Referencer) (*rdd.RDD, error) {
	ref, err := m.session.Assign(kernel.Call(m, "predict", testData))
	if err != nil {
		return nil, err
	}
	return rdd.Wrap(m.session, ref), nil
}

// PredictValue predicts the label of the feature
func (m *IsotonicRegressionModel) PredictValue(feature float64) (float64, error) {
	var v float64
	err := m.eval(&v, "predict", feature)
	return v, err
}

// Boundaries returns the boundaries in increasing order
func (m *IsotonicRegressionModel) Boundaries() ([]float64, error) {
	var v []float64
	err := m.eval(&v, "boundaries")
	return v, err
}

// Predictions returns the predictions associated with the boundaries
func (m *IsotonicRegressionModel) Predictions() ([]float64, error) {
	var v []float64
	err := m.eval(&v, "predictions")
	return v, err
}

// Isotonic returns true if the predictions are in increasing order
func (m *IsotonicRegressionModel) Isotonic() (bool, error) {
	var v bool
	err := m.eval(&v, "isotonic")
	return v, err
}

// JSON returns the json representation of the model
func (m *IsotonicRegressionModel) JSON() (json.RawMessage, error) {
	bs, err := m.session.Eval(kernel.Call(m, "toJSON"))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(bs), nil
}

// Save saves the model to the path
func (m *IsotonicRegressionModel) Save(sc *spark.Context, path string) error {
	return m.session.Exec(kernel.Call(m, "save", sc, path))
}

func (m *IsotonicRegressionModel) eval(v interface{}, method string, args ...interface{}) error {
	return m.session.EvalInto(kernel.Call(m, method, args...), v)
}
