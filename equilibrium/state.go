package equilibrium

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/ceq/thermo"
	"github.com/notargets/ceq/utils"
)

// state is the working point of one attempt. Mole numbers are carried as
// logarithms so every update keeps them positive.
type state struct {
	lnn   []float64 // ln n_j, n_j in kmol/kg
	n     []float64
	lnN   float64
	N     float64
	lnT   float64
	T     float64
	props []thermo.Properties
}

func newState(ns int) *state {
	return &state{
		lnn:   make([]float64, ns),
		n:     make([]float64, ns),
		props: make([]thermo.Properties, ns),
	}
}

// evaluate refreshes species properties at the current temperature.
func (st *state) evaluate(ps *ProductSet) (err error) {
	for j, ts := range ps.thermo {
		if st.props[j], err = ts.Evaluate(st.T); err != nil {
			return
		}
	}
	return
}

func (st *state) sumMoles() float64 { return floats.Sum(st.n) }

// refresh recomputes n_j, and T when it is free, from their logarithms. With
// independent totals N follows lnN, otherwise N is the sum of the n_j.
func (st *state) refresh(independentN, freeT bool) (err error) {
	for j, l := range st.lnn {
		if !utils.IsFinite(l) {
			return fmt.Errorf("%w: ln n[%d] = %g", ErrNonFinite, j, l)
		}
		st.n[j] = math.Exp(l)
	}
	if !utils.IsFinite(st.lnT) {
		return fmt.Errorf("%w: ln T = %g", ErrNonFinite, st.lnT)
	}
	if freeT {
		st.T = math.Exp(st.lnT)
	}
	if independentN {
		if !utils.IsFinite(st.lnN) {
			return fmt.Errorf("%w: ln N = %g", ErrNonFinite, st.lnN)
		}
		st.N = math.Exp(st.lnN)
		return
	}
	st.N = st.sumMoles()
	st.lnN, err = utils.SafeLog(st.N)
	return
}
