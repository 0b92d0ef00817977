package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemType(t *testing.T) {
	tokens := []string{"HP", "tp", " Uv ", "TV", "adiabatic"}
	flags := []ProblemType{Problem_HP, Problem_TP, Problem_UV, Problem_TV, Problem_HP}
	for i, token := range tokens {
		pt, err := NewProblemType(token)
		require.NoError(t, err)
		assert.Equal(t, flags[i], pt)
	}
	_, err := NewProblemType("SP")
	assert.Error(t, err)

	assert.Equal(t, "UV", Problem_UV.String())
	assert.Equal(t, "ProblemType(9)", ProblemType(9).String())

	assert.True(t, Problem_HP.ConstantPressure())
	assert.True(t, Problem_TP.ConstantPressure())
	assert.False(t, Problem_UV.ConstantPressure())
	assert.True(t, Problem_TV.ConstantVolume())
	assert.True(t, Problem_TP.FixedTemperature())
	assert.True(t, Problem_TV.FixedTemperature())
	assert.False(t, Problem_HP.FixedTemperature())
	assert.False(t, Problem_None.ConstantPressure() || Problem_None.ConstantVolume())
}
