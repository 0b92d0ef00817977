package equilibrium

import (
	"errors"
	"fmt"

	"github.com/notargets/ceq/types"
	"github.com/notargets/ceq/utils"
)

// Failures that end a single attempt. Each one triggers a restart from a new
// seed; thermo.ErrOutOfRange joins them when a property lookup leaves the fits.
var (
	ErrSingularMatrix = utils.ErrSingularMatrix
	ErrNonFinite      = utils.ErrNonFinite
	ErrNonPositive    = utils.ErrNonPositive
	ErrNotConverged   = errors.New("equilibrium: iteration cap reached before convergence")
)

// ConvergenceError is returned once every allowed attempt has failed.
type ConvergenceError struct {
	Problem  types.ProblemType
	Phi      float64
	Attempts int
	Last     error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("equilibrium: %s at phi = %g did not converge in %d attempts, last failure: %v",
		e.Problem, e.Phi, e.Attempts, e.Last)
}

// Is matches ErrNotConverged regardless of the last attempt's failure.
func (e *ConvergenceError) Is(target error) bool { return target == ErrNotConverged }

func (e *ConvergenceError) Unwrap() error { return e.Last }
