package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteamCycleBenchmarkCase(t *testing.T) {
	p := benchmark_parameters()
	st := new_test_steam_table(t)

	res, err := calculate_steam_cycle(p, st)
	require.NoError(t, err)
	require.Len(t, res.States, 4)

	assert_between(t, "turbine work", res.W_st, 850.0, 960.0)
	assert_between(t, "feed-pump work", res.W_fp, 3.0, 6.0)
	assert_between(t, "boiler duty", res.Q_boiler, 2900.0, 3150.0)
	assert_between(t, "thermal efficiency", res.Eta, 27.0, 33.0)

	assert.InDelta(t, res.W_st-res.W_fp, res.W_net, 1e-9)
	// first-law closure of the loop
	assert.InDelta(t, res.W_net, res.Q_boiler-res.Q_cond, 1e-9)

	// the exit stays wet at this condenser pressure
	exit := res.States[1]
	require.NotEqual(t, x_not_applicable, exit.X)
	xb, err := strconv.ParseFloat(exit.X, 64)
	require.NoError(t, err)
	assert_between(t, "exit quality", xb, 0.80, 0.95)
	assert.InDelta(t, st.t_sat(p.P_cond), exit.T, 1e-9)
}

func TestSteamCycleSuperheatedExitBranch(t *testing.T) {
	p := benchmark_parameters()
	p.Eta_st = 0.5
	st := new_test_steam_table(t)

	res, err := calculate_steam_cycle(p, st)
	require.NoError(t, err)

	// heavy turbine losses push the actual exit back out of the dome
	exit := res.States[1]
	assert.Equal(t, x_not_applicable, exit.X)
	assert.Greater(t, exit.H, st.hg(p.P_cond))
	assert.GreaterOrEqual(t, exit.S, st.sg(p.P_cond)-1e-9)
}

func TestSteamCycleCondenserExitPressure(t *testing.T) {
	st := new_test_steam_table(t)

	for _, pc := range []float64{5.0, 10.0, 20.0, 50.0} {
		p := benchmark_parameters()
		p.P_cond = pc

		res, err := calculate_steam_cycle(p, st)
		require.NoError(t, err)

		assert.Equal(t, pc, res.States[1].P, "turbine exit at P_cond=%g", pc)
		assert.Equal(t, pc, res.States[2].P, "condenser exit at P_cond=%g", pc)
		assert.Equal(t, p.P_boiler, res.States[3].P, "feed-pump exit at P_cond=%g", pc)

		assert.Equal(t, format_quality(0.0), res.States[2].X)
	}
}

func TestSteamCyclePumpExitState(t *testing.T) {
	p := benchmark_parameters()
	st := new_test_steam_table(t)

	res, err := calculate_steam_cycle(p, st)
	require.NoError(t, err)

	cond := res.States[2]
	pump := res.States[3]

	wp_s := st.vf(p.P_cond) * (p.P_boiler - p.P_cond)
	assert.InDelta(t, wp_s/p.Eta_fp, res.W_fp, 1e-9)
	assert.InDelta(t, cond.H+res.W_fp, pump.H, 1e-9)
	assert.InDelta(t, cond.T+res.W_fp/steam_cp_liquid, pump.T, 1e-9)
	assert.InDelta(t, cond.S+0.001, pump.S, 1e-12)
}
