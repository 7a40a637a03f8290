package main

// reference pressure for the pinch feasibility proxy, kPa.
// The low-pressure evaporation end of the HRSG is taken at
// atmospheric pressure rather than sweeping the full profile.
const hrsg_pinch_ref_p = 101.325

/*
HRSGResult holds the heat-recovery balance of one solve. Heat terms
are in kW.
*/
type HRSGResult struct {
	Q_available    float64 `json:"q_available"`    // kW
	Q_recovered    float64 `json:"q_recovered"`    // kW
	M_steam        float64 `json:"m_steam"`        // kg/s
	T_stack_actual float64 `json:"t_stack_actual"` // K
	Pinch_ok       bool    `json:"pinch_ok"`
}

/*
Couple the gas-turbine exhaust to steam generation.

    Args:
        t_exhaust: turbine exhaust temperature, K
        t_stack: target stack temperature, K
        m_gas: exhaust gas mass flow, kg/s
        cp_avg_gas: mean exhaust specific heat, kJ/(kg K)
        eta_hrsg: HRSG effectiveness, dimensionless
        pinch_dt: minimum pinch approach, K
        q_boiler_per_kg: steam-side heat duty per unit mass, kJ/kg
        st: steam property table (pinch reference saturation point)

    Returns:
        HRSG result

    Notes:
        Pinch feasibility is a simplified proxy: the actual stack
        temperature must clear the water saturation temperature at the
        reference pressure by at least the minimum approach.
*/
func calculate_hrsg(
	t_exhaust, t_stack, m_gas, cp_avg_gas, eta_hrsg, pinch_dt, q_boiler_per_kg float64,
	st *SteamTable,
) *HRSGResult {
	mc := m_gas * cp_avg_gas

	q_available := mc * (t_exhaust - t_stack)
	q_recovered := eta_hrsg * q_available

	m_steam := 0.0
	if q_boiler_per_kg > 0 {
		m_steam = q_recovered / q_boiler_per_kg
	}

	t_stack_actual := t_exhaust
	if mc > 0 {
		t_stack_actual = t_exhaust - q_recovered/mc
	}

	t_sat_ref := st.t_sat(hrsg_pinch_ref_p)
	pinch_ok := t_stack_actual-t_sat_ref >= pinch_dt

	return &HRSGResult{
		Q_available:    q_available,
		Q_recovered:    q_recovered,
		M_steam:        m_steam,
		T_stack_actual: t_stack_actual,
		Pinch_ok:       pinch_ok,
	}
}
