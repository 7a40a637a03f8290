package main

import (
	"gonum.org/v1/gonum/floats"
)

/*
SteamTable is the single steam/water property API used by the cycle
solvers. It wraps exactly one SteamSource, chosen once by the
capability probe (or supplied explicitly), and adds the
backend-independent derived operations.
*/
type SteamTable struct {
	source SteamSource
}

/*
NewSteamTable resolves the property backend by probing in fixed
priority order and returns a table bound to it for the rest of the run.
*/
func NewSteamTable() (*SteamTable, error) {
	src, err := resolve_steam_source()
	if err != nil {
		return nil, err
	}
	return &SteamTable{source: src}, nil
}

/*
NewSteamTableWithSource binds the table to an explicit backend,
bypassing the probe. Used by tests and by callers that need a
deterministic tier.
*/
func NewSteamTableWithSource(src SteamSource) *SteamTable {
	return &SteamTable{source: src}
}

// SourceName reports the active backend for display surfaces.
func (st *SteamTable) SourceName() string { return st.source.name() }

func (st *SteamTable) t_sat(p float64) float64      { return st.source.t_sat(p) }
func (st *SteamTable) p_sat(t float64) float64      { return st.source.p_sat(t) }
func (st *SteamTable) hf(p float64) float64         { return st.source.hf(p) }
func (st *SteamTable) hg(p float64) float64         { return st.source.hg(p) }
func (st *SteamTable) sf(p float64) float64         { return st.source.sf(p) }
func (st *SteamTable) sg(p float64) float64         { return st.source.sg(p) }
func (st *SteamTable) vf(p float64) float64         { return st.source.vf(p) }
func (st *SteamTable) h_super(p, t float64) float64 { return st.source.h_super(p, t) }
func (st *SteamTable) s_super(p, t float64) float64 { return st.source.s_super(p, t) }

// hfg is the latent heat of vaporisation at pressure p, kJ/kg.
func (st *SteamTable) hfg(p float64) float64 {
	return st.source.hg(p) - st.source.hf(p)
}

/*
Vapour quality from entropy inside the saturation dome.

    Args:
        p: pressure, kPa
        s: entropy, kJ/(kg K)

    Returns:
        quality, clamped to [0, 1] at the dome boundaries
*/
func (st *SteamTable) x_from_s(p, s float64) float64 {
	sfv := st.sf(p)
	sgv := st.sg(p)

	if s <= sfv {
		return 0.0
	}
	if s >= sgv {
		return 1.0
	}
	return (s - sfv) / (sgv - sfv)
}

/*
Mixture enthalpy from vapour quality.

    Args:
        p: pressure, kPa
        x: quality, dimensionless

    Returns:
        enthalpy, kJ/kg
*/
func (st *SteamTable) h_from_x(p, x float64) float64 {
	return st.hf(p) + x*st.hfg(p)
}

/*
Temperature for a given entropy in the superheated region.

    Args:
        p: pressure, kPa
        s_target: entropy, kJ/(kg K)

    Returns:
        temperature, K

    Notes:
        80-iteration bisection over [T_sat(p)+0.1, 1200 K]; entropy
        increases monotonically with temperature along an isobar in
        the superheated region.
*/
func (st *SteamTable) t_from_s_super(p, s_target float64) float64 {
	lo := st.t_sat(p) + 0.1
	hi := 1200.0

	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2.0
		if st.s_super(p, mid) < s_target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2.0
}

// DomePoint is one saturation-dome sample for h-s diagram overlays.
type DomePoint struct {
	P  float64 `csv:"P(kPa)" json:"p_kpa"`
	Sf float64 `csv:"sf(kJ/kgK)" json:"sf"`
	Hf float64 `csv:"hf(kJ/kg)" json:"hf"`
	Sg float64 `csv:"sg(kJ/kgK)" json:"sg"`
	Hg float64 `csv:"hg(kJ/kg)" json:"hg"`
}

/*
Sample the saturation dome over a pressure sweep from 5 kPa to
18000 kPa for diagram overlays.

    Args:
        n: number of pressure samples

    Returns:
        dome samples in sweep order

    Notes:
        Pressures where any property evaluation fails to produce a
        finite value are skipped rather than aborting the sweep.
*/
func (st *SteamTable) saturation_dome(n int) []DomePoint {
	pressures := floats.Span(make([]float64, n), 5.0, 18000.0)

	dome := make([]DomePoint, 0, n)
	for _, p := range pressures {
		pt := DomePoint{
			P:  p,
			Sf: st.sf(p),
			Hf: st.hf(p),
			Sg: st.sg(p),
			Hg: st.hg(p),
		}
		if !_finite(pt.Sf) || !_finite(pt.Hf) || !_finite(pt.Sg) || !_finite(pt.Hg) {
			continue
		}
		dome = append(dome, pt)
	}

	return dome
}
