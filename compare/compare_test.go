// SPDX-License-Identifier: MIT

package compare_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/distcmp/compare"
	"github.com/katalvlaran/distcmp/matrix"
)

// CompareSuite exercises the comparator's validation order and arithmetic.
type CompareSuite struct {
	suite.Suite
	a *matrix.Dense // upper triangle {1,2,3}, mean 2
	b *matrix.Dense // upper triangle {2,4,6}, mean 4
}

func (s *CompareSuite) SetupTest() {
	s.a = s.dense([][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	s.b = s.dense([][]float64{{0, 2, 4}, {2, 0, 6}, {4, 6, 0}})
}

func (s *CompareSuite) dense(rows [][]float64) *matrix.Dense {
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(s.T(), err)
	return m
}

// requireOperand asserts err is an *InputError for the given operand.
func (s *CompareSuite) requireOperand(err error, want compare.Operand) {
	var ie *compare.InputError
	require.True(s.T(), errors.As(err, &ie), "want *InputError, got %v", err)
	require.Equal(s.T(), want, ie.Operand)
}

// TestMeanAndRatio checks means of the known fixtures and the 50% ratio.
func (s *CompareSuite) TestMeanAndRatio() {
	res, err := compare.Compare(s.a, s.b, 1.5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, res.MeanA)
	require.Equal(s.T(), 4.0, res.MeanB)
	require.Equal(s.T(), 3.0, res.OverallMean)
	require.Equal(s.T(), 50.0, res.RelativePercent)
}

// TestSameMatrixTwice uses one matrix for both operands.
func (s *CompareSuite) TestSameMatrixTwice() {
	res, err := compare.Compare(s.a, s.a, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, res.OverallMean)
	require.Zero(s.T(), res.RelativePercent)
}

// TestLargeFiniteMeans keeps the overall mean finite near the float64 limit.
func (s *CompareSuite) TestLargeFiniteMeans() {
	a := s.dense([][]float64{{0, 1e308}, {1e308, 0}})
	b := s.dense([][]float64{{0, 1.5e308}, {1.5e308, 0}})

	res, err := compare.Compare(a, b, 1.25e308)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), 1.25e308, res.OverallMean, 1e-12)
	require.InEpsilon(s.T(), 100.0, res.RelativePercent, 1e-12)
}

// TestDeterminism calls Compare repeatedly with identical inputs.
func (s *CompareSuite) TestDeterminism() {
	c := compare.New()
	first, err := c.Compare(s.a, s.b, 1.1933)
	require.NoError(s.T(), err)
	for i := 0; i < 10; i++ {
		again, err := c.Compare(s.a, s.b, 1.1933)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again)
	}
}

// TestInputsNotMutated verifies Compare only reads its operands.
func (s *CompareSuite) TestInputsNotMutated() {
	before := s.a.String()
	_, err := compare.Compare(s.a, s.b, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, s.a.String())
}

// TestShapeMismatch covers differing shapes and non-square operands.
func (s *CompareSuite) TestShapeMismatch() {
	two := s.dense([][]float64{{0, 1}, {1, 0}})
	_, err := compare.Compare(s.a, two, 1)
	require.ErrorIs(s.T(), err, compare.ErrShapeMismatch)

	rectA := s.dense([][]float64{{0, 1, 2}, {1, 0, 3}})
	rectB := s.dense([][]float64{{0, 1, 2}, {1, 0, 3}})
	_, err = compare.Compare(rectA, rectB, 1)
	require.ErrorIs(s.T(), err, compare.ErrShapeMismatch)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
	s.requireOperand(err, compare.OperandA)
}

// TestAsymmetricNamesOperand checks that the failing operand is reported.
func (s *CompareSuite) TestAsymmetricNamesOperand() {
	skewed := s.dense([][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3.5, 0}})

	_, err := compare.Compare(skewed, s.b, 1)
	require.ErrorIs(s.T(), err, compare.ErrAsymmetricMatrix)
	require.ErrorIs(s.T(), err, matrix.ErrAsymmetry)
	s.requireOperand(err, compare.OperandA)

	_, err = compare.Compare(s.a, skewed, 1)
	require.ErrorIs(s.T(), err, compare.ErrAsymmetricMatrix)
	s.requireOperand(err, compare.OperandB)

	// A is reported first when both fail.
	_, err = compare.Compare(skewed, skewed, 1)
	s.requireOperand(err, compare.OperandA)
}

// TestToleranceOptions relaxes and tightens the symmetry check.
func (s *CompareSuite) TestToleranceOptions() {
	noisy := s.dense([][]float64{{0, 1, 2}, {1.001, 0, 3}, {2, 3, 0}})

	_, err := compare.Compare(noisy, s.b, 1)
	require.ErrorIs(s.T(), err, compare.ErrAsymmetricMatrix)

	_, err = compare.Compare(noisy, s.b, 1, compare.WithAbsTol(1e-2))
	require.NoError(s.T(), err)

	_, err = compare.Compare(noisy, s.b, 1, compare.WithRelTol(1e-2))
	require.NoError(s.T(), err)

	tiny := s.dense([][]float64{{0, 1, 2}, {1 + 1e-7, 0, 3}, {2, 3, 0}})
	_, err = compare.Compare(tiny, s.b, 1)
	require.NoError(s.T(), err, "default tolerances absorb 1e-7")
	_, err = compare.Compare(tiny, s.b, 1, compare.WithRelTol(0), compare.WithAbsTol(0))
	require.ErrorIs(s.T(), err, compare.ErrAsymmetricMatrix)
}

// TestInsufficientSize rejects 1×1 inputs.
func (s *CompareSuite) TestInsufficientSize() {
	one := s.dense([][]float64{{0}})
	_, err := compare.Compare(one, one, 1)
	require.ErrorIs(s.T(), err, compare.ErrInsufficientSize)
}

// TestDegenerateMean rejects all-zero upper triangles instead of returning Inf.
func (s *CompareSuite) TestDegenerateMean() {
	zero := s.dense([][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	res, err := compare.Compare(zero, zero, 1.5)
	require.ErrorIs(s.T(), err, compare.ErrDegenerateMean)
	require.Equal(s.T(), compare.Result{}, res)

	// Means that cancel out are degenerate too.
	neg := s.dense([][]float64{{0, -2, -4}, {-2, 0, -6}, {-4, -6, 0}})
	_, err = compare.Compare(s.b, neg, 1.5)
	require.ErrorIs(s.T(), err, compare.ErrDegenerateMean)
}

// TestNilOperands reports the missing operand.
func (s *CompareSuite) TestNilOperands() {
	_, err := compare.Compare(nil, s.b, 1)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
	s.requireOperand(err, compare.OperandA)

	var typedNil *matrix.Dense
	_, err = compare.Compare(s.a, typedNil, 1)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
	s.requireOperand(err, compare.OperandB)
}

// TestValidationOrder checks shape is reported before symmetry.
func (s *CompareSuite) TestValidationOrder() {
	skewed2 := s.dense([][]float64{{0, 1}, {5, 0}})
	_, err := compare.Compare(skewed2, s.b, 1)
	require.ErrorIs(s.T(), err, compare.ErrShapeMismatch)
	require.False(s.T(), errors.Is(err, compare.ErrAsymmetricMatrix))
}

func TestCompareSuite(t *testing.T) {
	suite.Run(t, new(CompareSuite))
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		v := v
		require.Panics(t, func() { compare.WithRelTol(v) })
		require.Panics(t, func() { compare.WithAbsTol(v) })
	}
	require.NotPanics(t, func() { compare.New(compare.WithRelTol(0), compare.WithAbsTol(0), nil) })
}

func TestInputError_Message(t *testing.T) {
	t.Parallel()

	err := &compare.InputError{Operand: compare.OperandB, Err: compare.ErrAsymmetricMatrix}
	require.Equal(t, "compare: matrix B: compare: matrix is not symmetric", err.Error())
	require.ErrorIs(t, err, compare.ErrAsymmetricMatrix)
}
