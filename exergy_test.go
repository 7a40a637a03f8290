package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExergyFlowGas(t *testing.T) {
	// (500-298) - 298*(0.5-0) = 53.0
	assert.InDelta(t, 53.0, exergy_flow_gas(500.0, 0.5, 298.0, 0.0, 298.0), 1e-9)

	// the dead state has zero flow exergy
	assert.Equal(t, 0.0, exergy_flow_gas(298.0, 1.2, 298.0, 1.2, 298.0))
}

func TestExergyDestructionComponent(t *testing.T) {
	// adiabatic, positive entropy generation
	assert.InDelta(t, 298.0*2.0*0.05, exergy_destruction_component(2.0, 0.55, 0.50, 0, 0, 298.0), 1e-9)

	// heat-exchange term reduces the generation
	with_q := exergy_destruction_component(2.0, 0.55, 0.50, 10.0, 1000.0, 298.0)
	assert.InDelta(t, 298.0*(2.0*0.05-10.0/1000.0), with_q, 1e-9)

	// non-physical negative generation is floored
	assert.Equal(t, 0.0, exergy_destruction_component(2.0, 0.50, 0.55, 0, 0, 298.0))
}

func TestFuelExergy(t *testing.T) {
	assert.InDelta(t, 41600.0, fuel_exergy(2.0, 20000.0), 1e-9)
}

func TestSecondLawEfficiencyGuard(t *testing.T) {
	assert.Equal(t, 0.0, second_law_efficiency(100.0, 0.0))
	assert.Equal(t, 0.0, second_law_efficiency(100.0, -5.0))
	assert.InDelta(t, 25.0, second_law_efficiency(100.0, 400.0), 1e-12)
}

func TestExergyBenchmarkAnalysis(t *testing.T) {
	p := benchmark_parameters()

	gas, err := calculate_gas_cycle(p)
	require.NoError(t, err)

	res := calculate_exergy(gas, p)
	require.Len(t, res.E_states, 5)

	// the inlet is the dead state
	assert.InDelta(t, 0.0, res.E_states[0], 1e-9)
	for i := 1; i < len(res.E_states); i++ {
		assert.Greater(t, res.E_states[i], 0.0, "state %d", i)
	}

	assert.Greater(t, res.I_comp, 0.0)
	assert.GreaterOrEqual(t, res.I_comb, 0.0)
	assert.Greater(t, res.I_turb, 0.0)
	assert.InDelta(t, res.I_comp+res.I_comb+res.I_turb, res.I_total, 1e-9)
	assert.InDelta(t, res.I_total/p.T1, res.S_gen_total, 1e-12)

	assert.Greater(t, res.E_fuel, 0.0)
	assert_between(t, "second-law efficiency", res.Eta_II, 0.0, 100.0)
}
