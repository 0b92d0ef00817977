package types

import (
	"fmt"
	"strings"
)

// ProblemType names the pair of state variables held fixed during a solve.
type ProblemType uint8

const (
	Problem_None ProblemType = iota
	Problem_HP               // enthalpy and pressure
	Problem_TP               // temperature and pressure
	Problem_UV               // internal energy and volume
	Problem_TV               // temperature and volume
)

var problemNames = [...]string{"None", "HP", "TP", "UV", "TV"}

func (pt ProblemType) String() string {
	if int(pt) < len(problemNames) {
		return problemNames[pt]
	}
	return fmt.Sprintf("ProblemType(%d)", pt)
}

var ProblemNameMap = map[string]ProblemType{
	"hp":                 Problem_HP,
	"tp":                 Problem_TP,
	"uv":                 Problem_UV,
	"tv":                 Problem_TV,
	"adiabatic":          Problem_HP,
	"isothermal":         Problem_TP,
	"constant-volume":    Problem_UV,
	"isothermal-isochor": Problem_TV,
}

// NewProblemType parses a problem name, ignoring case.
func NewProblemType(label string) (pt ProblemType, err error) {
	var ok bool
	if pt, ok = ProblemNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown problem type %q, use one of HP, TP, UV, TV", label)
	}
	return
}

// ConstantPressure is true for HP and TP.
func (pt ProblemType) ConstantPressure() bool {
	return pt == Problem_HP || pt == Problem_TP
}

// ConstantVolume is true for UV and TV.
func (pt ProblemType) ConstantVolume() bool {
	return pt == Problem_UV || pt == Problem_TV
}

// FixedTemperature is true when temperature is held, TP and TV.
func (pt ProblemType) FixedTemperature() bool {
	return pt == Problem_TP || pt == Problem_TV
}
