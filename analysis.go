package main

/*
CombinedResult aggregates both cycles under the HRSG coupling into
plant-level shaft powers. Power terms are in MW.
*/
type CombinedResult struct {
	W_gt        float64 `json:"w_gt"`        // gas turbine, MW
	W_comp      float64 `json:"w_comp"`      // compressor, MW
	W_net_gas   float64 `json:"w_net_gas"`   // MW
	W_st        float64 `json:"w_st"`        // steam turbine, MW
	W_pump      float64 `json:"w_pump"`      // feed pump, MW
	W_net_steam float64 `json:"w_net_steam"` // MW
	W_net       float64 `json:"w_net"`       // combined net, MW
	Q_in        float64 `json:"q_in"`        // gas heat input, MW
	Eta         float64 `json:"eta"`         // combined efficiency, %
}

/*
AnalysisResult is the complete output of one solve: every component
result, the combined performance block and the advisory warnings.
Owned exclusively by the caller; nothing is retained across calls.
*/
type AnalysisResult struct {
	Source   string              `json:"steam_source"`
	Gas      *GasCycleResult     `json:"gas"`
	Steam    *SteamCycleResult   `json:"steam"`
	Hrsg     *HRSGResult         `json:"hrsg"`
	Ad       *ADBalanceResult    `json:"ad"`
	Exergy   *ExergyResult       `json:"exergy"`
	Combined CombinedResult      `json:"combined"`
	Warnings []ValidationWarning `json:"warnings"`
}

/*
Run the full combined-cycle analysis.

    Args:
        p: input parameter set
        st: steam property table

    Returns:
        the complete result bundle, or an error

    Notes:
        Inputs are screened first; the solve is never attempted on
        invalid parameters. The solve is atomic: the first
        unrecoverable error aborts it and no partial result is
        returned. Non-physical outcomes (negative net work, infeasible
        pinch, fuel deficit) are not errors; they come back as
        advisory warnings so parameter sweeps can show a design that
        does not work.

        Order: gas cycle -> steam cycle -> HRSG coupling -> AD-HTC
        balance -> exergy analysis -> result validation.
*/
func RunAnalysis(p Parameters, st *SteamTable) (*AnalysisResult, error) {
	if err := p.check(); err != nil {
		return nil, err
	}

	warns := validate_inputs(p)

	gas, err := calculate_gas_cycle(p)
	if err != nil {
		return nil, err
	}

	steam, err := calculate_steam_cycle(p, st)
	if err != nil {
		return nil, err
	}

	cp_exh := gas_cp_avg(gas.T_exhaust, p.T1)
	hrsg := calculate_hrsg(
		gas.T_exhaust, p.T_stack, p.M_air, cp_exh,
		p.Eta_hrsg, p.Pinch_dT, steam.Q_boiler, st,
	)

	ad := calculate_ad_htc(p, gas.M_fuel)
	exergy := calculate_exergy(gas, p)

	warns = append(warns, validate_results(gas, steam, ad, hrsg)...)

	return &AnalysisResult{
		Source:   st.SourceName(),
		Gas:      gas,
		Steam:    steam,
		Hrsg:     hrsg,
		Ad:       ad,
		Exergy:   exergy,
		Combined: _combine(gas, steam, hrsg, p),
		Warnings: warns,
	}, nil
}

// Plant-level powers in MW. The combined net power is the exact sum
// of the two cycle net powers; no implicit loss term.
func _combine(gas *GasCycleResult, steam *SteamCycleResult, hrsg *HRSGResult, p Parameters) CombinedResult {
	m_air := p.M_air
	m_steam := hrsg.M_steam

	c := CombinedResult{
		W_gt:        gas.W_t * m_air / 1000.0,
		W_comp:      gas.W_c * m_air / 1000.0,
		W_net_gas:   gas.W_net * m_air / 1000.0,
		W_st:        steam.W_st * m_steam / 1000.0,
		W_pump:      steam.W_fp * m_steam / 1000.0,
		W_net_steam: steam.W_net * m_steam / 1000.0,
		Q_in:        gas.Q_in * m_air / 1000.0,
	}
	c.W_net = c.W_net_gas + c.W_net_steam

	if c.Q_in > 0 {
		c.Eta = c.W_net / c.Q_in * 100.0
	}
	return c
}
