// Package equilibrium computes the equilibrium composition of CHON combustion
// products by Gibbs energy minimization with element potentials, for the HP, TP,
// UV and TV problem classes.
package equilibrium

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/ceq/mixture"
	"github.com/notargets/ceq/thermo"
	"github.com/notargets/ceq/types"
	"github.com/notargets/ceq/utils"
)

const (
	DefaultMaxAttempts           = 300
	DefaultPressureIterations    = 50
	DefaultVolumeIterations      = 100
	DefaultSpeciesTolerance      = 0.5e-5
	DefaultTemperatureTolerance  = 1.e-4
	DefaultElementTolerance      = 1.e-6
	DefaultMoleFractionTolerance = 1.e-2
	SeedTemperature              = 3800.
	traceSize                    = 18.420681 // -ln(1e-8)
	traceCeiling                 = 9.2103404 // -ln(1e-4)
)

var ErrUnsupportedProblem = errors.New("unsupported problem type")

type Config struct {
	MaxAttempts   int    `json:"maxAttempts"`
	MaxIterations int    `json:"maxIterations"` // Zero selects 50 at constant pressure, 100 at constant volume
	Seed          uint64 `json:"seed"`          // Zero draws a random seed per solve

	SpeciesTolerance      float64 `json:"speciesTolerance"`
	TemperatureTolerance  float64 `json:"temperatureTolerance"`
	ElementTolerance      float64 `json:"elementTolerance"`
	MoleFractionTolerance float64 `json:"moleFractionTolerance"`
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:           DefaultMaxAttempts,
		SpeciesTolerance:      DefaultSpeciesTolerance,
		TemperatureTolerance:  DefaultTemperatureTolerance,
		ElementTolerance:      DefaultElementTolerance,
		MoleFractionTolerance: DefaultMoleFractionTolerance,
	}
}

// Solver is safe for concurrent use; every solve owns its working state.
type Solver struct {
	Config
	Log logrus.FieldLogger
}

// NewSolver fills unset fields of cfg with defaults.
func NewSolver(cfg Config) *Solver {
	def := DefaultConfig()
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.MaxIterations < 0 {
		cfg.MaxIterations = 0
	}
	if !(cfg.SpeciesTolerance > 0) {
		cfg.SpeciesTolerance = def.SpeciesTolerance
	}
	if !(cfg.TemperatureTolerance > 0) {
		cfg.TemperatureTolerance = def.TemperatureTolerance
	}
	if !(cfg.ElementTolerance > 0) {
		cfg.ElementTolerance = def.ElementTolerance
	}
	if !(cfg.MoleFractionTolerance > 0) {
		cfg.MoleFractionTolerance = def.MoleFractionTolerance
	}
	return &Solver{
		Config: cfg,
		Log:    logrus.StandardLogger(),
	}
}

// Problem is one solve request. Pressure (atm) applies to HP and TP, Volume
// (m^3/kg) to UV and TV. The held temperature of TP and TV is Mixture.T.
type Problem struct {
	Type     types.ProblemType
	Mixture  mixture.Spec
	Pressure float64
	Volume   float64
}

func (s *Solver) Solve(p Problem) (*Solution, error) {
	switch {
	case p.Type.ConstantPressure():
		return s.SolveConstantPressure(p.Mixture, p.Pressure, p.Type)
	case p.Type.ConstantVolume():
		return s.SolveConstantVolume(p.Mixture, p.Volume, p.Type)
	}
	return nil, mixture.Invalid("problem", ErrUnsupportedProblem, "%s", p.Type)
}

// SolveConstantPressure solves HP or TP at pressureAtm.
func (s *Solver) SolveConstantPressure(spec mixture.Spec, pressureAtm float64, mode types.ProblemType) (*Solution, error) {
	if !mode.ConstantPressure() {
		return nil, mixture.Invalid("problem", ErrUnsupportedProblem, "%s is not a constant pressure problem", mode)
	}
	if !(pressureAtm > 0) || math.IsInf(pressureAtm, 1) {
		return nil, mixture.Invalid("pressure", mixture.ErrOutOfWindow, "%g atm must be positive", pressureAtm)
	}
	m, err := mixture.New(spec)
	if err != nil {
		return nil, err
	}
	return s.solve(m, mode, newConstantPressure(pressureAtm))
}

// SolveConstantVolume solves UV or TV at specificVolume in m^3/kg.
func (s *Solver) SolveConstantVolume(spec mixture.Spec, specificVolume float64, mode types.ProblemType) (*Solution, error) {
	if !mode.ConstantVolume() {
		return nil, mixture.Invalid("problem", ErrUnsupportedProblem, "%s is not a constant volume problem", mode)
	}
	if !(specificVolume > 0) || math.IsInf(specificVolume, 1) {
		return nil, mixture.Invalid("volume", mixture.ErrOutOfWindow, "%g m^3/kg must be positive", specificVolume)
	}
	m, err := mixture.New(spec)
	if err != nil {
		return nil, err
	}
	return s.solve(m, mode, newConstantVolume(specificVolume))
}

func (s *Solver) solve(m *mixture.Mixture, mode types.ProblemType, fam family) (sol *Solution, err error) {
	var (
		sys     = s.newSystem(m, mode, fam)
		seed    = s.Seed
		attempt int
		log     = s.Log.WithFields(logrus.Fields{
			"problem": mode,
			"phi":     m.Spec.Phi,
		})
	)
	if seed == 0 {
		seed = rand.Uint64()
	}
	operation := func() error {
		rng := rand.New(rand.NewPCG(seed, uint64(attempt)))
		attempt++
		st, iterations, err := sys.iterate(rng)
		if err != nil {
			return err
		}
		if sol, err = sys.solution(st); err != nil {
			return err
		}
		sol.Attempts, sol.Iterations = attempt, iterations
		return nil
	}
	notify := func(err error, _ time.Duration) {
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err,
		}).Debug("restarting from a new seed")
	}
	retry := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(s.MaxAttempts-1))
	if err = backoff.RetryNotify(operation, retry, notify); err != nil {
		return nil, &ConvergenceError{Problem: mode, Phi: m.Spec.Phi, Attempts: attempt, Last: err}
	}
	log.WithFields(logrus.Fields{
		"attempts":   sol.Attempts,
		"iterations": sol.Iterations,
		"T":          sol.T,
	}).Debug("converged")
	return
}

// system is the attempt-independent part of one solve.
type system struct {
	cfg     *Config
	log     logrus.FieldLogger
	mode    types.ProblemType
	mix     *mixture.Mixture
	ps      *ProductSet
	fam     family
	b0      []float64
	bMax    float64
	target  float64 // held energy over R, K kmol/kg
	freeT   bool
	maxIter int
	ns, ne  int
	size    int
	tc, nc  int // columns of ΔlnT and ΔlnN, -1 when absent
}

func (s *Solver) newSystem(m *mixture.Mixture, mode types.ProblemType, fam family) (sys *system) {
	ps := SelectProductSet(m)
	sys = &system{
		cfg:     &s.Config,
		log:     s.Log,
		mode:    mode,
		mix:     m,
		ps:      ps,
		fam:     fam,
		target:  fam.reactantEnergy(m) / thermo.R,
		freeT:   !mode.FixedTemperature(),
		maxIter: s.MaxIterations,
		ns:      ps.NS(),
		ne:      ps.NE(),
		tc:      -1,
		nc:      -1,
	}
	if sys.maxIter == 0 {
		sys.maxIter = DefaultPressureIterations
		if mode.ConstantVolume() {
			sys.maxIter = DefaultVolumeIterations
		}
	}
	sys.b0 = make([]float64, sys.ne)
	for i, el := range ps.Elements {
		sys.b0[i] = m.Elements[el]
		sys.bMax = max(sys.bMax, sys.b0[i])
	}
	sys.size = sys.ns + sys.ne
	if sys.freeT {
		sys.tc = sys.size
		sys.size++
	}
	if fam.totalMoles() {
		sys.nc = sys.size
		sys.size++
	}
	return
}

// seed draws a positive starting point: about 0.1 to 0.5 kmol/kg spread
// unevenly over the products, T at SeedTemperature unless held.
func (sys *system) seed(rng *rand.Rand) (st *state, err error) {
	st = newState(sys.ns)
	var (
		N0   = 0.1 * (1 + 4*rng.Float64())
		lnN0 = math.Log(N0 / float64(sys.ns))
		T    = sys.mix.Spec.T
	)
	st.lnn = utils.ConstArray(sys.ns, lnN0)
	for j := range st.lnn {
		st.lnn[j] += rng.Float64() - 0.5
	}
	if sys.freeT {
		tmin, tmax := sys.ps.Range()
		T = math.Min(math.Max(SeedTemperature, tmin), tmax)
	}
	st.T, st.lnT = T, math.Log(T)
	if sys.fam.totalMoles() {
		st.lnN = floats.LogSumExp(st.lnn)
	}
	err = st.refresh(sys.fam.totalMoles(), sys.freeT)
	return
}

func (sys *system) iterate(rng *rand.Rand) (st *state, iterations int, err error) {
	var (
		A   = utils.NewMatrix(sys.size, sys.size)
		rhs = utils.NewVector(sys.size)
		x   utils.Vector
	)
	if st, err = sys.seed(rng); err != nil {
		return
	}
	for iterations = 1; iterations <= sys.maxIter; iterations++ {
		if err = st.evaluate(sys.ps); err != nil {
			return nil, iterations, err
		}
		sys.assemble(st, A, rhs)
		if x, err = A.Solve(rhs); err != nil {
			if errors.Is(err, ErrSingularMatrix) {
				sys.log.WithField("condition", A.ConditionNumber()).Trace("singular Newton matrix")
			}
			return nil, iterations, err
		}
		var (
			dx         = x.Data()
			dlnn       = dx[:sys.ns]
			dlnT, dlnN float64
		)
		if sys.freeT {
			dlnT = dx[sys.tc]
		}
		if sys.fam.totalMoles() {
			dlnN = dx[sys.nc]
		}
		lambda := sys.damping(st, dlnn, dlnN, dlnT)
		if err = sys.update(st, lambda, dlnn, dlnN, dlnT); err != nil {
			return nil, iterations, err
		}
		if sys.converged(st, dlnn, dlnN, dlnT) {
			return st, iterations, nil
		}
	}
	return nil, sys.maxIter, fmt.Errorf("%w after %d iterations", ErrNotConverged, sys.maxIter)
}

// assemble builds the Newton system in the unknowns Δln n_j, π_i, ΔlnT and ΔlnN:
//
//	species j:  Δln n_j - Σ a_ij π_i - (E_j/RT) ΔlnT - ΔlnN = -μ_j/RT
//	element i:  Σ a_ij n_j Δln n_j                         = b0_i - Σ a_ij n_j
//	energy:     Σ n_j (E_j/RT) Δln n_j + Σ n_j C_j/R ΔlnT  = E0/RT - Σ n_j E_j/RT
//	moles:      Σ n_j Δln n_j - N ΔlnN                     = N - Σ n_j
//
// where E is H with C = Cp at constant pressure and U with C = Cv at constant volume.
func (sys *system) assemble(st *state, A utils.Matrix, rhs utils.Vector) {
	var (
		ns = sys.ns
		a  = sys.ps.A
		RT = thermo.R * st.T
	)
	A.Zero()
	rhs.Zero()
	for j := 0; j < ns; j++ {
		p := st.props[j]
		mu := p.G(st.T)/RT + sys.fam.logActivity(st, j)
		A.Set(j, j, 1)
		for i := 0; i < sys.ne; i++ {
			A.Set(j, ns+i, -a[i][j])
		}
		if sys.freeT {
			A.Set(j, sys.tc, -sys.fam.energy(p, st.T)/RT)
		}
		if sys.nc >= 0 {
			A.Set(j, sys.nc, -1)
		}
		rhs.Set(j, -mu)
	}
	for i := 0; i < sys.ne; i++ {
		var (
			row = ns + i
			bi  float64
		)
		for j := 0; j < ns; j++ {
			v := a[i][j] * st.n[j]
			A.Set(row, j, v)
			bi += v
		}
		rhs.Set(row, sys.b0[i]-bi)
	}
	if sys.freeT {
		var e, c float64
		for j := 0; j < ns; j++ {
			ej := sys.fam.energy(st.props[j], st.T) / RT * st.n[j]
			A.Set(sys.tc, j, ej)
			e += ej
			c += st.n[j] * sys.fam.heatCapacity(st.props[j]) / thermo.R
		}
		A.Set(sys.tc, sys.tc, c)
		rhs.Set(sys.tc, sys.target/st.T-e)
	}
	if sys.nc >= 0 {
		var sum float64
		for j := 0; j < ns; j++ {
			A.Set(sys.nc, j, st.n[j])
			sum += st.n[j]
		}
		A.Set(sys.nc, sys.nc, -st.N)
		rhs.Set(sys.nc, st.N-sum)
	}
}

// damping limits the step so that major species change by at most e^2, T and
// N by at most e^0.4, and trace species cannot climb above a mole fraction of 1e-4
// in one step.
func (sys *system) damping(st *state, dlnn []float64, dlnN, dlnT float64) (lambda float64) {
	var (
		big = 5 * math.Max(math.Abs(dlnT), math.Abs(dlnN))
	)
	for j, d := range dlnn {
		if st.lnn[j]-st.lnN > -traceSize && d > big {
			big = d
		}
	}
	lambda = 1
	if big > 2 {
		lambda = 2 / big
	}
	for j, d := range dlnn {
		lnx := st.lnn[j] - st.lnN
		if lnx > -traceSize || d < 0 || d-dlnN <= 0 {
			continue
		}
		if l2 := math.Abs((-lnx - traceCeiling) / (d - dlnN)); l2 < lambda {
			lambda = l2
		}
	}
	return
}

func (sys *system) update(st *state, lambda float64, dlnn []float64, dlnN, dlnT float64) error {
	for j, d := range dlnn {
		st.lnn[j] += lambda * d
	}
	if sys.freeT {
		tmin, tmax := sys.ps.Range()
		st.lnT = math.Min(math.Max(st.lnT+lambda*dlnT, math.Log(tmin)), math.Log(tmax))
	}
	if sys.fam.totalMoles() {
		st.lnN += lambda * dlnN
	}
	return st.refresh(sys.fam.totalMoles(), sys.freeT)
}

func (sys *system) converged(st *state, dlnn []float64, dlnN, dlnT float64) bool {
	var (
		cfg = sys.cfg
		sum = st.sumMoles()
	)
	for j, d := range dlnn {
		if st.n[j]*math.Abs(d)/sum > cfg.SpeciesTolerance {
			return false
		}
	}
	if sys.fam.totalMoles() && st.N*math.Abs(dlnN)/sum > cfg.SpeciesTolerance {
		return false
	}
	if sys.freeT && math.Abs(dlnT) > cfg.TemperatureTolerance {
		return false
	}
	if math.Abs(sum/st.N-1) > cfg.MoleFractionTolerance {
		return false
	}
	return sys.elementResidual(st) <= cfg.ElementTolerance*sys.bMax
}

// elementResidual is the largest |b0_i - Σ a_ij n_j| in kmol/kg.
func (sys *system) elementResidual(st *state) (res float64) {
	b := sys.ps.stoich.MulVec(utils.NewVector(sys.ns, st.n))
	for i := 0; i < sys.ne; i++ {
		res = math.Max(res, math.Abs(sys.b0[i]-b.AtVec(i)))
	}
	return
}
