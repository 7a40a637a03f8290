package main

// chemical-to-thermal exergy ratio of biogas/methane-like fuel
const exergy_fuel_ratio = 1.04

/*
ExergyResult holds the second-law analysis of the gas cycle.
Destruction terms are in kW.
*/
type ExergyResult struct {
	E_states []float64 `json:"e_states"` // flow exergy per state, kJ/kg

	I_comp  float64 `json:"i_comp"`  // kW
	I_comb  float64 `json:"i_comb"`  // kW
	I_turb  float64 `json:"i_turb"`  // kW
	I_total float64 `json:"i_total"` // kW

	E_fuel      float64 `json:"e_fuel"`      // kW
	Eta_II      float64 `json:"eta_ii"`      // %
	S_gen_total float64 `json:"s_gen_total"` // kW/K
}

/*
Flow exergy of a gas state against the ambient reference.

    Args:
        h, s: state enthalpy kJ/kg and entropy kJ/(kg K)
        h0, s0: reference enthalpy and entropy
        t0: reference temperature, K

    Returns:
        specific flow exergy, kJ/kg
*/
func exergy_flow_gas(h, s, h0, s0, t0 float64) float64 {
	return (h - h0) - t0*(s-s0)
}

/*
Exergy destruction of one component from its entropy balance.

    Args:
        m: mass flow, kg/s
        s_out, s_in: outlet and inlet entropy, kJ/(kg K)
        q: heat added across the boundary, kW (0 for adiabatic)
        t_boundary: heat-exchange boundary temperature, K
        t0: ambient reference temperature, K

    Returns:
        exergy destruction, kW, floored at zero

    Notes:
        Negative entropy generation is non-physical; it signals an
        input or calculation inconsistency and is floored rather than
        propagated.
*/
func exergy_destruction_component(m, s_out, s_in, q, t_boundary, t0 float64) float64 {
	s_gen := m * (s_out - s_in)
	if q != 0 && t_boundary > 0 {
		s_gen -= q / t_boundary
	}

	i := t0 * s_gen
	if i < 0 {
		return 0.0
	}
	return i
}

/*
Fuel exergy from the lower heating value.

    Args:
        m_fuel: fuel mass flow, kg/s
        lhv: lower heating value, kJ/kg

    Returns:
        fuel exergy, kW
*/
func fuel_exergy(m_fuel, lhv float64) float64 {
	return m_fuel * lhv * exergy_fuel_ratio
}

/*
Second-law efficiency.

    Args:
        w_net: net shaft power, kW
        e_fuel: fuel exergy, kW

    Returns:
        second-law efficiency, %, zero when the fuel exergy is zero
*/
func second_law_efficiency(w_net, e_fuel float64) float64 {
	if e_fuel <= 0 {
		return 0.0
	}
	return w_net / e_fuel * 100.0
}

/*
Run the second-law analysis over the gas cycle states.

    Args:
        gas: solved gas cycle
        p: input parameter set (ambient reference state)

    Returns:
        exergy result

    Notes:
        Compressor and turbine are treated as adiabatic; the combustor
        subtracts the heat-exchange entropy term with the boundary at
        turbine inlet temperature.
*/
func calculate_exergy(gas *GasCycleResult, p Parameters) *ExergyResult {
	t0 := p.T1
	h0 := gas_h(t0)
	s0 := gas_s(t0, p.P1)

	gs := gas.States
	e_states := make([]float64, len(gs))
	for i, st := range gs {
		e_states[i] = exergy_flow_gas(st.H, st.S, h0, s0, t0)
	}

	m := p.M_air
	i_comp := exergy_destruction_component(m, gs[1].S, gs[0].S, 0, 0, t0)
	i_comb := exergy_destruction_component(m, gs[3].S, gs[2].S, m*gas.Q_in, p.TIT, t0)
	i_turb := exergy_destruction_component(m, gs[4].S, gs[3].S, 0, 0, t0)
	i_total := i_comp + i_comb + i_turb

	e_fuel := fuel_exergy(gas.M_fuel, p.LHV)
	w_net_total := gas.W_net * m
	eta_ii := second_law_efficiency(w_net_total, e_fuel)

	s_gen_total := 0.0
	if t0 > 0 {
		s_gen_total = i_total / t0
	}

	return &ExergyResult{
		E_states:    e_states,
		I_comp:      i_comp,
		I_comb:      i_comb,
		I_turb:      i_turb,
		I_total:     i_total,
		E_fuel:      e_fuel,
		Eta_II:      eta_ii,
		S_gen_total: s_gen_total,
	}
}
