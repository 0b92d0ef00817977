package InputParameters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"

	"github.com/notargets/ceq/equilibrium"
	"github.com/notargets/ceq/mixture"
	"github.com/notargets/ceq/thermo"
	"github.com/notargets/ceq/types"
)

// Defaults applied to fields left out of an input file
const (
	DefaultTemperature = thermo.TRef // K
	DefaultPressure    = 1.          // atm
)

// Parameters obtained from a YAML or TOML input file. Species names that YAML
// reads as booleans, such as NO and N, must be quoted in YAML files.
type InputParameters struct {
	Title       string             `json:"Title" toml:"Title"`
	Problem     string             `json:"Problem" toml:"Problem"`
	Fuel        map[string]float64 `json:"Fuel" toml:"Fuel"`         // Species name to mole fraction
	Oxidizer    map[string]float64 `json:"Oxidizer" toml:"Oxidizer"` // Species name to mole fraction
	Phi         float64            `json:"Phi" toml:"Phi"`
	Temperature float64            `json:"Temperature" toml:"Temperature"` // K, initial or held
	Pressure    float64            `json:"Pressure" toml:"Pressure"`       // atm, HP and TP
	Volume      float64            `json:"Volume" toml:"Volume"`           // m^3/kg, UV and TV
	Sweep       *SweepParameters   `json:"Sweep,omitempty" toml:"Sweep"`
}

// SweepParameters describe a range of equivalence ratios and an optional
// polynomial fit of result fields, such as T or X(OH).
type SweepParameters struct {
	PhiMin   float64  `json:"PhiMin" toml:"PhiMin"`
	PhiMax   float64  `json:"PhiMax" toml:"PhiMax"`
	PhiStep  float64  `json:"PhiStep" toml:"PhiStep"`
	Fields   []string `json:"Fields" toml:"Fields"`
	Degree   int      `json:"Degree" toml:"Degree"`
	Parallel int      `json:"Parallel" toml:"Parallel"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) ParseTOML(data []byte) (err error) {
	_, err = toml.Decode(string(data), ip)
	return
}

// ReadFile parses fileName as TOML when its extension is .toml, otherwise as
// YAML (which includes JSON).
func ReadFile(fileName string) (ip *InputParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters{}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		err = ip.ParseTOML(data)
	default:
		err = ip.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}
	return
}

func (ip *InputParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t\t= Problem\n", ip.Problem)
	fmt.Fprintf(w, "%8.5f\t\t= Phi\n", ip.Phi)
	fmt.Fprintf(w, "%8.2f\t\t= Temperature (K)\n", ip.Temperature)
	if ip.Volume > 0 {
		fmt.Fprintf(w, "%8.5f\t\t= Volume (m^3/kg)\n", ip.Volume)
	} else {
		fmt.Fprintf(w, "%8.5f\t\t= Pressure (atm)\n", ip.Pressure)
	}
	for _, c := range components(ip.Fuel) {
		fmt.Fprintf(w, "Fuel[%s] = %v\n", c.Name, c.Fraction)
	}
	for _, c := range components(ip.Oxidizer) {
		fmt.Fprintf(w, "Oxidizer[%s] = %v\n", c.Name, c.Fraction)
	}
	if sw := ip.Sweep; sw != nil {
		fmt.Fprintf(w, "Sweep phi = [%g, %g] step %g, fit %s degree %d\n",
			sw.PhiMin, sw.PhiMax, sw.PhiStep, strings.Join(sw.Fields, ","), sw.Degree)
	}
}

// components orders a name to fraction map by name.
func components(fractions map[string]float64) (comps []mixture.Component) {
	keys := make([]string, 0, len(fractions))
	for k := range fractions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		comps = append(comps, mixture.Component{Name: key, Fraction: fractions[key]})
	}
	return
}

// ProblemDefinition converts the parameters into a solver request. Missing
// temperature and pressure take their defaults; the mixture itself is
// validated by the solver.
func (ip *InputParameters) ProblemDefinition() (p equilibrium.Problem, err error) {
	if p.Type, err = types.NewProblemType(ip.Problem); err != nil {
		err = mixture.Invalid("problem", equilibrium.ErrUnsupportedProblem, "%v", err)
		return
	}
	p.Mixture = mixture.Spec{
		Fuel:     components(ip.Fuel),
		Oxidizer: components(ip.Oxidizer),
		Phi:      ip.Phi,
		T:        ip.Temperature,
	}
	if p.Mixture.T == 0 {
		p.Mixture.T = DefaultTemperature
	}
	p.Pressure, p.Volume = ip.Pressure, ip.Volume
	if p.Type.ConstantPressure() && p.Pressure == 0 {
		p.Pressure = DefaultPressure
	}
	return
}

// Phis returns the swept equivalence ratios, filling unset bounds with the
// solver defaults.
func (sw *SweepParameters) Phis() []float64 {
	var (
		lo, hi, step = equilibrium.DefaultPhiMin, equilibrium.DefaultPhiMax, equilibrium.DefaultPhiStep
	)
	if sw != nil {
		if sw.PhiMin > 0 {
			lo = sw.PhiMin
		}
		if sw.PhiMax > 0 {
			hi = sw.PhiMax
		}
		if sw.PhiStep > 0 {
			step = sw.PhiStep
		}
	}
	return equilibrium.PhiRange(lo, hi, step)
}
