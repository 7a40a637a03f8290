package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHRSGHeatBalance(t *testing.T) {
	st := new_test_steam_table(t)

	res := calculate_hrsg(850.0, 420.0, 40.0, 1.1, 0.85, 15.0, 3000.0, st)

	assert.InDelta(t, 40.0*1.1*(850.0-420.0), res.Q_available, 1e-9)
	assert.InDelta(t, 0.85*res.Q_available, res.Q_recovered, 1e-9)
	assert.InDelta(t, res.Q_recovered/3000.0, res.M_steam, 1e-12)

	// stack identity: only the recovered duty leaves the gas stream
	assert.InDelta(t, 850.0-res.Q_recovered/(40.0*1.1), res.T_stack_actual, 1e-9)
	assert.Greater(t, res.T_stack_actual, 420.0, "effectiveness below one leaves the stack above target")
	assert.True(t, res.Pinch_ok)
}

func TestHRSGBenchmarkCoupling(t *testing.T) {
	p := benchmark_parameters()
	st := new_test_steam_table(t)

	gas, err := calculate_gas_cycle(p)
	assert.NoError(t, err)
	steam, err := calculate_steam_cycle(p, st)
	assert.NoError(t, err)

	cp_exh := gas_cp_avg(gas.T_exhaust, p.T1)
	res := calculate_hrsg(
		gas.T_exhaust, p.T_stack, p.M_air, cp_exh,
		p.Eta_hrsg, p.Pinch_dT, steam.Q_boiler, st,
	)

	assert_between(t, "available exhaust heat", res.Q_available/1e3, 14.0, 21.0)
	assert_between(t, "recovered heat", res.Q_recovered/1e3, 12.0, 18.0)
	assert_between(t, "steam generation", res.M_steam, 3.5, 6.5)
	assert.True(t, res.Pinch_ok, "benchmark stack clears the pinch approach")

	// the bottoming cycle cannot out-produce its heat source
	assert.Less(t, res.M_steam*steam.W_net, res.Q_recovered)
}

func TestHRSGZeroGuards(t *testing.T) {
	st := new_test_steam_table(t)

	no_duty := calculate_hrsg(850.0, 420.0, 40.0, 1.1, 0.85, 15.0, 0.0, st)
	assert.Equal(t, 0.0, no_duty.M_steam)

	no_flow := calculate_hrsg(850.0, 420.0, 0.0, 1.1, 0.85, 15.0, 3000.0, st)
	assert.Equal(t, 0.0, no_flow.Q_available)
	assert.Equal(t, 850.0, no_flow.T_stack_actual)
}

func TestHRSGPinchViolation(t *testing.T) {
	st := new_test_steam_table(t)

	// full recovery down to the saturation line cannot hold the approach
	res := calculate_hrsg(850.0, 373.0, 40.0, 1.1, 1.0, 15.0, 3000.0, st)
	assert.False(t, res.Pinch_ok)
}
