package thermo

// Condensed propellants are tabulated by their assigned enthalpy at the
// reference temperature (cryogens at their normal boiling point).
var assigned = map[string]AssignedState{
	"CH4(L)":    {T: 111.643, H: -89233.0e3},
	"O2(L)":     {T: 90.170, H: -12979.0e3},
	"CH3NO2(L)": {T: 298.15, H: -113100.0e3},
	"CH6N2(L)":  {T: 298.15, H: 54200.0e3},
	"C2H8N2(L)": {T: 298.15, H: 48300.0e3},
}
