// Package model provides the minimal fit/predict-probability collaborator
// the pipeline needs: a standard scaler plus a logistic regression trained
// by gradient descent on log-loss, persisted together as one opaque bundle.
package model

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	logisticIters = 400
	logisticLR    = 0.15
)

// StandardScaler centers and scales each feature column to zero mean and
// unit variance, matching what the classifier was fitted against.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes per-column mean and standard deviation from X.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return fmt.Errorf("cannot fit scaler on empty matrix")
	}
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)

	for _, row := range X {
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	for j := range s.Mean {
		s.Mean[j] /= float64(len(X))
	}
	for _, row := range X {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := range s.Std {
		s.Std[j] = math.Sqrt(s.Std[j] / float64(len(X)))
		if s.Std[j] == 0 {
			// Constant column; leave values centered but unscaled.
			s.Std[j] = 1
		}
	}
	return nil
}

// Transform scales one feature vector.
func (s *StandardScaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out
}

// TransformAll scales a full matrix.
func (s *StandardScaler) TransformAll(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = s.Transform(row)
	}
	return out
}

// LogisticRegression is a binary classifier over scaled features.
type LogisticRegression struct {
	Weights []float64
	Bias    float64
}

// Fit trains on scaled features X with labels y in {0,1} using full-batch
// gradient descent on log-loss.
func (m *LogisticRegression) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("cannot fit model on empty matrix")
	}
	if len(X) != len(y) {
		return fmt.Errorf("feature/label length mismatch: %d vs %d", len(X), len(y))
	}

	cols := len(X[0])
	m.Weights = make([]float64, cols)
	m.Bias = 0
	n := float64(len(X))

	for iter := 0; iter < logisticIters; iter++ {
		gradW := make([]float64, cols)
		gradB := 0.0
		for i, row := range X {
			p := sigmoid(dot(m.Weights, row) + m.Bias)
			// gradient of -[y*log(p)+(1-y)*log(1-p)] is (p-y)*x
			err := p - float64(y[i])
			for j, v := range row {
				gradW[j] += err * v
			}
			gradB += err
		}
		for j := range m.Weights {
			m.Weights[j] -= logisticLR * gradW[j] / n
		}
		m.Bias -= logisticLR * gradB / n
	}
	return nil
}

// PredictProba returns the probability of the positive class for one scaled
// feature vector.
func (m *LogisticRegression) PredictProba(x []float64) float64 {
	return sigmoid(dot(m.Weights, x) + m.Bias)
}

// Predict returns the hard class label at the 0.5 threshold.
func (m *LogisticRegression) Predict(x []float64) int {
	if m.PredictProba(x) >= 0.5 {
		return 1
	}
	return 0
}

// TrainTestSplit shuffles indices with the given seed and splits X/y with
// testFraction held out.
func TrainTestSplit(X [][]float64, y []int, testFraction float64, seed int64) (trainX [][]float64, trainY []int, testX [][]float64, testY []int) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(X))

	testN := int(math.Round(testFraction * float64(len(X))))
	for i, idx := range perm {
		if i < testN {
			testX = append(testX, X[idx])
			testY = append(testY, y[idx])
		} else {
			trainX = append(trainX, X[idx])
			trainY = append(trainY, y[idx])
		}
	}
	return trainX, trainY, testX, testY
}

// Accuracy scores hard predictions against labels.
func Accuracy(m *LogisticRegression, X [][]float64, y []int) float64 {
	if len(X) == 0 {
		return 0
	}
	correct := 0
	for i, row := range X {
		if m.Predict(row) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X))
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
