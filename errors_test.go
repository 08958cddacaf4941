package bezier

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexError(t *testing.T) {
	err := checkIndex("Anchor", 3, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.NotErrorIs(t, err, ErrEmptySpline)

	wrapped := fmt.Errorf("moving point: %w", err)
	var ierr *IndexError
	require.ErrorAs(t, wrapped, &ierr)
	assert.Equal(t, 3, ierr.Index)
	assert.Equal(t, 3, ierr.Len)

	assert.NoError(t, checkIndex("Anchor", 0, 1))
	assert.Error(t, checkIndex("Anchor", 0, 0))
}

func TestParamError(t *testing.T) {
	for _, tt := range []float64{0, 0.5, 1} {
		assert.NoError(t, checkParam("PositionAt", tt))
	}
	for _, tt := range []float64{-1e-300, 1 + 1e-15, math.NaN(), math.Inf(1)} {
		err := checkParam("PositionAt", tt)
		assert.ErrorIs(t, err, ErrOutOfRange, "t = %v", tt)
		var perr *ParamError
		if assert.True(t, errors.As(err, &perr)) && !math.IsNaN(tt) {
			assert.Equal(t, tt, perr.T)
		}
	}
}
