package main

import "fmt"

// Severity classifies an advisory message.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// ValidationWarning is one advisory message. Warnings never alter the
// numeric results.
type ValidationWarning struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// input rule thresholds
const (
	tit_danger_limit    = 1600.0 // K
	tit_warning_limit   = 1500.0 // K
	t_steam_limit       = 873.0  // K
	p_cond_floor        = 3.0    // kPa
	rp_range_lo         = 4.0
	rp_range_hi         = 40.0
)

/*
Check the raw inputs against engineering limits.

    Args:
        p: input parameter set

    Returns:
        advisory warnings, one per violated rule, in rule order

    Notes:
        Rules are independent; no deduplication or early exit.
*/
func validate_inputs(p Parameters) []ValidationWarning {
	var warns []ValidationWarning

	if p.TIT > tit_danger_limit {
		warns = append(warns, ValidationWarning{SeverityDanger,
			fmt.Sprintf("Turbine inlet temperature %.0f K exceeds the %.0f K metallurgical limit", p.TIT, tit_danger_limit)})
	} else if p.TIT > tit_warning_limit {
		warns = append(warns, ValidationWarning{SeverityWarning,
			fmt.Sprintf("Turbine inlet temperature %.0f K is above %.0f K; advanced blade cooling required", p.TIT, tit_warning_limit)})
	}

	if p.T_steam > t_steam_limit {
		warns = append(warns, ValidationWarning{SeverityDanger,
			fmt.Sprintf("Steam temperature %.0f K exceeds the %.0f K boiler material limit", p.T_steam, t_steam_limit)})
	}

	if p.P_cond < p_cond_floor {
		warns = append(warns, ValidationWarning{SeverityWarning,
			fmt.Sprintf("Condenser pressure %.1f kPa is below %.1f kPa; vacuum system may be impractical", p.P_cond, p_cond_floor)})
	}

	if p.Rp < rp_range_lo || p.Rp > rp_range_hi {
		warns = append(warns, ValidationWarning{SeverityWarning,
			fmt.Sprintf("Pressure ratio %.1f is outside the typical range [%.0f, %.0f]", p.Rp, rp_range_lo, rp_range_hi)})
	}

	if p.Eta_cc > 1.0 {
		warns = append(warns, ValidationWarning{SeverityDanger,
			fmt.Sprintf("Combustion efficiency %.2f exceeds 100%%", p.Eta_cc)})
	}

	return warns
}

/*
Check the computed results for non-physical or infeasible outcomes.

    Args:
        gas, steam, ad, hrsg: solved component results

    Returns:
        advisory warnings, one per violated rule, in rule order
*/
func validate_results(
	gas *GasCycleResult,
	steam *SteamCycleResult,
	ad *ADBalanceResult,
	hrsg *HRSGResult,
) []ValidationWarning {
	var warns []ValidationWarning

	if gas.W_net <= 0 {
		warns = append(warns, ValidationWarning{SeverityDanger,
			"Gas cycle net work is non-positive; the design does not produce power"})
	}

	if steam.W_net <= 0 {
		warns = append(warns, ValidationWarning{SeverityDanger,
			"Steam cycle net work is non-positive; the design does not produce power"})
	}

	if ad.Surplus < 0 && gas.M_fuel > 0 {
		deficit := (gas.M_fuel - ad.M_biogas) / gas.M_fuel * 100.0
		warns = append(warns, ValidationWarning{SeverityWarning,
			fmt.Sprintf("Biogas supply covers only part of the turbine fuel demand (deficit %.1f%%)", deficit)})
	}

	if !hrsg.Pinch_ok {
		warns = append(warns, ValidationWarning{SeverityWarning,
			"HRSG pinch constraint violated; the stack temperature is too close to the steam saturation temperature"})
	}

	return warns
}
