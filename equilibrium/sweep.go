package equilibrium

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/notargets/ceq/utils"
)

// Default φ sweep for curve output
const (
	DefaultPhiMin  = 0.3
	DefaultPhiMax  = 2.2
	DefaultPhiStep = 0.1
)

// PhiRange returns equivalence ratios from min to max inclusive.
func PhiRange(min, max, step float64) []float64 {
	return utils.Arange(min, max, step)
}

// SweepPoint is the outcome of one equivalence ratio. Err holds the solve
// failure, or the context error when the sweep was stopped first.
type SweepPoint struct {
	Phi      float64
	Solution *Solution
	Err      error
}

// Sweep solves problem once per φ in phis, spreading the values over
// parallelDegree goroutines. Cancellation is checked between solves. Points
// come back in the order of phis; the returned error is the context error, if
// any, and individual failures stay in their SweepPoint.
func (s *Solver) Sweep(ctx context.Context, problem Problem, phis []float64, parallelDegree int) (points []SweepPoint, err error) {
	var (
		pm = utils.NewPartitionMap(parallelDegree, len(phis))
		wg = sync.WaitGroup{}
	)
	points = make([]SweepPoint, len(phis))
	for np := 0; np < pm.ParallelDegree; np++ {
		if pm.GetBucketDimension(np) == 0 {
			continue
		}
		kMin, kMax := pm.GetBucketRange(np)
		wg.Add(1)
		go func(kMin, kMax int) {
			defer wg.Done()
			for k := kMin; k < kMax; k++ {
				points[k].Phi = phis[k]
				if err := ctx.Err(); err != nil {
					points[k].Err = err
					continue
				}
				p := problem
				p.Mixture.Phi = phis[k]
				points[k].Solution, points[k].Err = s.Solve(p)
			}
		}(kMin, kMax)
	}
	wg.Wait()
	var failed int
	for _, pt := range points {
		if pt.Err != nil {
			failed++
		}
	}
	s.Log.WithFields(logrus.Fields{
		"problem":  problem.Type,
		"points":   len(phis),
		"failed":   failed,
		"parallel": pm.ParallelDegree,
	}).Info("sweep finished")
	err = ctx.Err()
	return
}

// SweepFit is the trend of one result field, coefficients in ascending powers
// of φ.
type SweepFit struct {
	Field  string    `json:"field"`
	Coeffs []float64 `json:"coeffs"`
}

// FitSweep fits a least-squares polynomial of the given degree against φ to
// each field, over the points that solved. Fits come back in the order of
// fields.
func FitSweep(points []SweepPoint, degree int, fields ...string) (fits []SweepFit, err error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to fit")
	}
	var x []float64
	y := make([][]float64, len(fields))
	for _, pt := range points {
		if pt.Err != nil || pt.Solution == nil {
			continue
		}
		x = append(x, pt.Phi)
		for i, field := range fields {
			var v float64
			if v, err = pt.Solution.Value(field); err != nil {
				return nil, err
			}
			y[i] = append(y[i], v)
		}
	}
	fits = make([]SweepFit, len(fields))
	for i, field := range fields {
		fits[i].Field = field
		if fits[i].Coeffs, err = utils.PolyFit(x, y[i], degree); err != nil {
			return nil, fmt.Errorf("fitting %s: %w", field, err)
		}
	}
	return
}
