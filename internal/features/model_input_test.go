package features

import (
	"errors"
	"testing"

	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildModelInput_Ordered(t *testing.T) {
	f := types.SlideFeatures{NumTextBlocks: 2, NumImages: 1, HasTable: true, SlideDensity: 0.4}

	row, err := BuildModelInput(ToMap(f), FeatureColumns)
	require.NoError(t, err)
	require.Len(t, row, len(FeatureColumns))

	assert.Equal(t, 2.0, row[0])
	assert.Equal(t, 1.0, row[3])
	assert.Equal(t, 1.0, row[7])
	assert.Equal(t, 0.4, row[11])
}

func TestBuildModelInput_MissingColumn(t *testing.T) {
	values := ToMap(types.SlideFeatures{})
	delete(values, "has_quote")

	row, err := BuildModelInput(values, FeatureColumns)
	assert.Nil(t, row)
	require.Error(t, err)

	var missing *MissingFeatureError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "has_quote", missing.Feature)
	assert.Equal(t, "missing feature: has_quote", err.Error())
}

func TestToMap_CoversAllColumns(t *testing.T) {
	values := ToMap(types.SlideFeatures{})
	for _, col := range FeatureColumns {
		_, ok := values[col]
		assert.True(t, ok, "column %s should be present", col)
	}
}
