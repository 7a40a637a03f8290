package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

/*
Parameters is the flat set of named numeric inputs to one solve.
Units are fixed: K, kPa, kJ/kg, kJ/(kg K), kg/s, m3/kg and
dimensionless fractions.
*/
type Parameters struct {
	// gas cycle
	T1     float64 `json:"T1"`     // ambient temperature, K
	P1     float64 `json:"P1"`     // ambient pressure, kPa
	Rp     float64 `json:"rp"`     // pressure ratio
	TIT    float64 `json:"TIT"`    // turbine inlet temperature, K
	Eta_c  float64 `json:"eta_c"`  // compressor efficiency
	Eta_t  float64 `json:"eta_t"`  // turbine efficiency
	Eta_cc float64 `json:"eta_cc"` // combustion efficiency
	LHV    float64 `json:"LHV"`    // biogas lower heating value, kJ/kg
	M_air  float64 `json:"m_air"`  // air mass flow, kg/s

	// steam cycle
	P_boiler float64 `json:"P_boiler"` // boiler pressure, kPa
	T_steam  float64 `json:"T_steam"`  // steam temperature, K
	P_cond   float64 `json:"P_cond"`   // condenser pressure, kPa
	Eta_st   float64 `json:"eta_st"`   // steam turbine efficiency
	Eta_fp   float64 `json:"eta_fp"`   // feed pump efficiency

	// HRSG coupling
	T_stack  float64 `json:"T_stack"`  // target stack temperature, K
	Eta_hrsg float64 `json:"eta_hrsg"` // HRSG effectiveness
	Pinch_dT float64 `json:"pinch_dT"` // minimum pinch approach, K

	// biomass / AD
	M_biomass      float64 `json:"m_biomass"`      // biomass feed, kg/s
	Moisture_split float64 `json:"moisture_split"` // moisture-rich fraction
	Ad_yield       float64 `json:"ad_yield"`       // AD yield, m3/kg
	Htc_temp       float64 `json:"htc_temp"`       // HTC reactor temperature, K
}

// DefaultParameters mirrors the analyser's initial design point.
func DefaultParameters() Parameters {
	return Parameters{
		T1:     298.0,
		P1:     101.325,
		Rp:     10.0,
		TIT:    1400.0,
		Eta_c:  0.86,
		Eta_t:  0.89,
		Eta_cc: 0.98,
		LHV:    20000.0,
		M_air:  50.0,

		P_boiler: 4000.0,
		T_steam:  673.0,
		P_cond:   10.0,
		Eta_st:   0.85,
		Eta_fp:   0.80,

		T_stack:  420.0,
		Eta_hrsg: 0.85,
		Pinch_dT: 15.0,

		M_biomass:      5.0,
		Moisture_split: 0.6,
		Ad_yield:       0.4,
		Htc_temp:       523.0,
	}
}

/*
Load a parameter JSON file over the defaults.

    Args:
        path: parameter file path

    Returns:
        the merged parameter set

    Notes:
        Missing keys keep their default values; the merged set is
        screened before it is returned, so a solve is never attempted
        on invalid inputs.
*/
func LoadParameters(path string) (Parameters, error) {
	p := DefaultParameters()

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read parameter file: %w", err)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse parameter file `%s`: %w", path, err)
	}

	if err := p.check(); err != nil {
		return p, err
	}
	return p, nil
}

/*
Screen the inputs before any solve begins.

    Returns:
        an invalid-input error naming the first offending parameter,
        or nil

    Notes:
        Only mathematical validity is enforced here (finite values,
        required positives). Engineering-range concerns are advisory
        and belong to the validator.
*/
func (p Parameters) check() error {
	named := []struct {
		key      string
		val      float64
		positive bool
	}{
		{"T1", p.T1, true},
		{"P1", p.P1, true},
		{"rp", p.Rp, true},
		{"TIT", p.TIT, true},
		{"eta_c", p.Eta_c, true},
		{"eta_t", p.Eta_t, true},
		{"eta_cc", p.Eta_cc, true},
		{"LHV", p.LHV, true},
		{"m_air", p.M_air, true},
		{"P_boiler", p.P_boiler, true},
		{"T_steam", p.T_steam, true},
		{"P_cond", p.P_cond, true},
		{"eta_st", p.Eta_st, true},
		{"eta_fp", p.Eta_fp, true},
		{"T_stack", p.T_stack, true},
		{"eta_hrsg", p.Eta_hrsg, true},
		{"pinch_dT", p.Pinch_dT, false},
		{"m_biomass", p.M_biomass, false},
		{"moisture_split", p.Moisture_split, false},
		{"ad_yield", p.Ad_yield, false},
		{"htc_temp", p.Htc_temp, true},
	}

	for _, f := range named {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("invalid input: %s is not a finite number", f.key)
		}
		if f.positive && f.val <= 0 {
			return fmt.Errorf("invalid input: %s must be positive, got %g", f.key, f.val)
		}
		if !f.positive && f.val < 0 {
			return fmt.Errorf("invalid input: %s must not be negative, got %g", f.key, f.val)
		}
	}

	if p.Moisture_split > 1.0 {
		return fmt.Errorf("invalid input: moisture_split must be a fraction in [0, 1], got %g", p.Moisture_split)
	}
	if p.P_cond >= p.P_boiler {
		return fmt.Errorf("invalid input: condenser pressure %g kPa must be below boiler pressure %g kPa", p.P_cond, p.P_boiler)
	}

	return nil
}
