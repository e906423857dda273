package regression

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errEmptyData = errors.New("empty data")

// parseTuples parses the tuples like "label,feature[,weight];...", the weight is 1 by default
func parseTuples(data string) ([][]float64, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, errEmptyData
	}

	var tuples [][]float64
	for _, t := range strings.Split(data, ";") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}

		fields := strings.Split(t, ",")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("bad tuple %q, want label,feature[,weight]", t)
		}

		tuple := []float64{0, 0, 1}
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("bad tuple %q: %w", t, err)
			}
			tuple[i] = v
		}
		tuples = append(tuples, tuple)
	}

	if len(tuples) == 0 {
		return nil, errEmptyData
	}
	return tuples, nil
}

// parseFeatures parses the features separated by comma
func parseFeatures(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	features := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad feature %q: %w", f, err)
		}
		features[i] = v
	}
	return features, nil
}
