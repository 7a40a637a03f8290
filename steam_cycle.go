package main

// specific heat of liquid water used for the feed-pump exit
// temperature estimate, kJ/(kg K)
const steam_cp_liquid = 4.18

/*
SteamCycleResult owns the four Rankine state points plus the derived
scalars of one solve. Work and heat terms are specific values, kJ/kg of
steam.
*/
type SteamCycleResult struct {
	States []ThermodynamicState `json:"states"`

	W_st     float64 `json:"w_st"`     // turbine work, kJ/kg
	W_fp     float64 `json:"w_fp"`     // feed-pump work, kJ/kg
	Q_boiler float64 `json:"q_boiler"` // boiler heat duty, kJ/kg
	Q_cond   float64 `json:"q_cond"`   // condenser rejection, kJ/kg
	W_net    float64 `json:"w_net"`    // net work, kJ/kg
	Eta      float64 `json:"eta"`      // thermal efficiency, %
}

/*
Solve the four-state Rankine cycle.

    Args:
        p: input parameter set
        st: steam property table

    Returns:
        steam cycle result

    Notes:
        Sequence: boiler exit (superheated) -> turbine exit ->
        condenser exit (saturated liquid) -> feed-pump exit.

        The turbine exit branches twice. First on the isentropic exit
        state: below the saturated-vapour entropy it lies inside the
        dome and is solved through quality, otherwise through the
        superheated bisection. Then again on the actual exit state:
        efficiency losses raise the exit enthalpy, and a quality
        recomputed from it above 1 means the actual state moved back
        into the superheated region, where entropy must come from the
        superheated relation instead of the wet-mixture one.
*/
func calculate_steam_cycle(p Parameters, st *SteamTable) (*SteamCycleResult, error) {
	pa, ta, pb := p.P_boiler, p.T_steam, p.P_cond
	eta_st, eta_fp := p.Eta_st, p.Eta_fp

	states := make([]ThermodynamicState, 0, 4)

	// state a: boiler exit, superheated
	ha := st.h_super(pa, ta)
	sa := st.s_super(pa, ta)
	states = append(states, ThermodynamicState{
		State: "a", Location: "Boiler Exit (SH)",
		T: ta, P: pa, H: ha, S: sa, X: x_not_applicable,
	})

	// state b: turbine exit
	sb_s := sa
	sg_c := st.sg(pb)
	sf_c := st.sf(pb)

	var hb_s, tb float64
	if sb_s < sg_c {
		// isentropic exit inside the dome
		xb_s := st.x_from_s(pb, sb_s)
		hb_s = st.h_from_x(pb, xb_s)
		tb = st.t_sat(pb)
	} else {
		// isentropic exit stays superheated
		tb = st.t_from_s_super(pb, sb_s)
		hb_s = st.h_super(pb, tb)
	}

	hb := ha - eta_st*(ha-hb_s)

	hf_c := st.hf(pb)
	hfg_c := st.hfg(pb)
	xb := 1.0
	if hfg_c > 0 {
		xb = (hb - hf_c) / hfg_c
	}

	var sb float64
	var xb_str string
	if xb <= 1.0 {
		sb = sf_c + xb*(sg_c-sf_c)
		tb = st.t_sat(pb)
		xb_str = format_quality(xb)
	} else {
		sb = st.s_super(pb, tb)
		xb_str = x_not_applicable
	}
	states = append(states, ThermodynamicState{
		State: "b", Location: "ST Exit",
		T: tb, P: pb, H: hb, S: sb, X: xb_str,
	})

	// state c: condenser exit, saturated liquid at condenser pressure
	tc := st.t_sat(pb)
	hc := st.hf(pb)
	sc := st.sf(pb)
	states = append(states, ThermodynamicState{
		State: "c", Location: "Condenser Exit",
		T: tc, P: pb, H: hc, S: sc, X: format_quality(0.0),
	})

	// state d: feed-pump exit, incompressible-liquid work approximation
	vf_val := st.vf(pb)
	wp_s := vf_val * (pa - pb)
	wp := wp_s / eta_fp
	hd := hc + wp
	sd := sc + 0.001
	td := tc + wp/steam_cp_liquid
	states = append(states, ThermodynamicState{
		State: "d", Location: "Feed Pump Exit",
		T: td, P: pa, H: hd, S: sd, X: x_not_applicable,
	})

	if err := check_states_finite("steam", states); err != nil {
		return nil, err
	}

	w_st := ha - hb
	w_fp := wp
	q_boiler := ha - hd
	q_cond := hb - hc
	w_net := w_st - w_fp

	eta := 0.0
	if q_boiler > 0 {
		eta = w_net / q_boiler * 100.0
	}

	return &SteamCycleResult{
		States:   states,
		W_st:     w_st,
		W_fp:     w_fp,
		Q_boiler: q_boiler,
		Q_cond:   q_cond,
		W_net:    w_net,
		Eta:      eta,
	}, nil
}
