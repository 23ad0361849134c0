package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The column registry and the struct field list must stay in lockstep; the
// store builds its DDL, inserts and scans from them positionally.
func TestScoreRegistryParity(t *testing.T) {
	var a StudentAssessment
	require.Equal(t, len(ScoreColumns), len(a.ScoreFields()))

	seen := map[string]bool{}
	for _, col := range ScoreColumns {
		assert.False(t, seen[col], "duplicate score column %s", col)
		seen[col] = true
	}
}

func TestScoreFieldsAddressStruct(t *testing.T) {
	a := &StudentAssessment{}
	v := 7.5
	*a.ScoreFields()[0] = &v

	require.NotNil(t, a.GeochoHyungIlBu)
	assert.Equal(t, 7.5, *a.GeochoHyungIlBu)
}

func TestIsScoreColumn(t *testing.T) {
	assert.True(t, IsScoreColumn("low_block"))
	assert.True(t, IsScoreColumn("bassai_dae"))
	assert.False(t, IsScoreColumn("status"))
	assert.False(t, IsScoreColumn("overall_score"))
}

func TestValidAssessmentStatus(t *testing.T) {
	assert.True(t, ValidAssessmentStatus("in_progress"))
	assert.True(t, ValidAssessmentStatus("completed"))
	assert.True(t, ValidAssessmentStatus("cancelled"))
	assert.False(t, ValidAssessmentStatus("done"))
}
