package main

import "fmt"

/*
ThermodynamicState is one point in a cycle. States are built once by a
solver and never mutated afterwards; a solve returns them in process
order.

Quality is carried as the formatted table value: a fraction inside the
saturation dome, "-" for single-phase states where quality is not
applicable, matching the state-table output format.
*/
type ThermodynamicState struct {
	State    string  `csv:"State" json:"state"`
	Location string  `csv:"Location" json:"location"`
	T        float64 `csv:"T(K)" json:"t_k"`
	P        float64 `csv:"P(kPa)" json:"p_kpa"`
	H        float64 `csv:"h(kJ/kg)" json:"h_kj_kg"`
	S        float64 `csv:"s(kJ/kgK)" json:"s_kj_kgk"`
	X        string  `csv:"x" json:"x"`
}

// quality marker for single-phase states
const x_not_applicable = "-"

func format_quality(x float64) string {
	return fmt.Sprintf("%.3f", x)
}

// A state is unrecoverable when any of its properties failed to
// evaluate to a finite value on every available backend.
func check_states_finite(cycle string, states []ThermodynamicState) error {
	for _, st := range states {
		if !_finite(st.T) || !_finite(st.P) || !_finite(st.H) || !_finite(st.S) {
			return fmt.Errorf("%s cycle: non-finite property at state %s (%s): T=%g P=%g h=%g s=%g",
				cycle, st.State, st.Location, st.T, st.P, st.H, st.S)
		}
	}
	return nil
}
