package main

// combustor pressure drop and exhaust pressure recovery margin
const (
	gas_combustor_dp_factor = 0.96
	gas_exhaust_p_factor    = 1.02
)

/*
GasCycleResult owns the five Brayton state points plus the derived
scalars of one solve. Work and heat terms are specific values, kJ/kg of
air; the result is freshly allocated per call and never shared.
*/
type GasCycleResult struct {
	States []ThermodynamicState `json:"states"`

	W_c   float64 `json:"w_c"`   // compressor work, kJ/kg
	W_t   float64 `json:"w_t"`   // turbine work, kJ/kg
	Q_in  float64 `json:"q_in"`  // heat input, kJ/kg
	W_net float64 `json:"w_net"` // net work, kJ/kg
	Eta   float64 `json:"eta"`   // thermal efficiency, %
	Bwr   float64 `json:"bwr"`   // back-work ratio, %

	M_fuel  float64 `json:"m_fuel"`  // required fuel flow, kg/s
	F_ratio float64 `json:"f_ratio"` // fuel-air ratio, dimensionless

	T_exhaust float64 `json:"t_exhaust"` // K
	Cp_avg    float64 `json:"cp_avg"`    // kJ/(kg K), diagnostic
	Gamma_avg float64 `json:"gamma_avg"` // dimensionless, diagnostic
}

/*
Solve the five-state Brayton cycle.

    Args:
        p: input parameter set

    Returns:
        gas cycle result

    Notes:
        Sequence: air inlet -> compressor exit -> combustor inlet
        (= compressor exit) -> combustor exit at TIT with a fixed 4%
        pressure drop -> turbine exhaust at 2% above ambient.
        Irreversible steps take the isentropic state as reference and
        apply the component efficiency to enthalpy; the actual
        temperature is extrapolated linearly from the isentropic
        temperature with the same efficiency ratio.
*/
func calculate_gas_cycle(p Parameters) (*GasCycleResult, error) {
	t1, p1, rp, tit := p.T1, p.P1, p.Rp, p.TIT
	eta_c, eta_t, eta_cc := p.Eta_c, p.Eta_t, p.Eta_cc

	states := make([]ThermodynamicState, 0, 5)

	// state 1: air inlet
	h1 := gas_h(t1)
	s1 := gas_s(t1, p1)
	states = append(states, ThermodynamicState{
		State: "1", Location: "Air Inlet",
		T: t1, P: p1, H: h1, S: s1, X: x_not_applicable,
	})

	// state 2: compressor exit
	p2 := p1 * rp
	t2s := gas_t_isentropic(t1, p1, p2)
	h2s := gas_h(t2s)
	h2 := h1 + (h2s-h1)/eta_c
	t2 := t2s + (t2s-t1)*(1.0/eta_c-1.0)
	s2 := gas_s(t2, p2)
	states = append(states, ThermodynamicState{
		State: "2", Location: "Compressor Exit",
		T: t2, P: p2, H: h2, S: s2, X: x_not_applicable,
	})

	// state 3: combustor inlet, identical to the compressor exit
	p3 := p2
	states = append(states, ThermodynamicState{
		State: "3", Location: "Combustor Inlet",
		T: t2, P: p3, H: h2, S: s2, X: x_not_applicable,
	})

	// state 4: combustor exit at turbine inlet temperature
	t4 := tit
	p4 := p2 * gas_combustor_dp_factor
	h4 := gas_h(t4)
	s4 := gas_s(t4, p4)
	states = append(states, ThermodynamicState{
		State: "4", Location: "Combustor Exit (TIT)",
		T: t4, P: p4, H: h4, S: s4, X: x_not_applicable,
	})

	// state 5: turbine exhaust
	p5 := p1 * gas_exhaust_p_factor
	t5s := gas_t_isentropic(t4, p4, p5)
	h5s := gas_h(t5s)
	h5 := h4 - eta_t*(h4-h5s)
	t5 := t5s + (t4-t5s)*(1.0-eta_t)
	s5 := gas_s(t5, p5)
	states = append(states, ThermodynamicState{
		State: "5", Location: "Turbine Exhaust",
		T: t5, P: p5, H: h5, S: s5, X: x_not_applicable,
	})

	if err := check_states_finite("gas", states); err != nil {
		return nil, err
	}

	w_c := h2 - h1
	w_t := h4 - h5
	q_in_ideal := h4 - h2

	// heat input rises as combustion efficiency drops
	q_in := q_in_ideal / eta_cc
	w_net := w_t - w_c

	eta := 0.0
	if q_in > 0 {
		eta = w_net / q_in * 100.0
	}
	bwr := 0.0
	if w_t > 0 {
		bwr = w_c / w_t * 100.0
	}
	m_fuel := 0.0
	if p.LHV > 0 {
		m_fuel = q_in * p.M_air / p.LHV
	}
	f_ratio := 0.0
	if p.M_air > 0 {
		f_ratio = m_fuel / p.M_air
	}

	return &GasCycleResult{
		States:    states,
		W_c:       w_c,
		W_t:       w_t,
		Q_in:      q_in,
		W_net:     w_net,
		Eta:       eta,
		Bwr:       bwr,
		M_fuel:    m_fuel,
		F_ratio:   f_ratio,
		T_exhaust: t5,
		Cp_avg:    gas_cp_avg(t1, t4),
		Gamma_avg: gas_gamma_avg(t1, t4),
	}, nil
}
