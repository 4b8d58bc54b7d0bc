package linsolve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var (
	classA = [][]float64{{4, 1, -1}, {5, 1, 2}, {6, 1, 1}}
	classB = []float64{-2, 4, 6}
)

func mustSystem(t testing.TB, a [][]float64, b []float64) linsolve.System {
	t.Helper()
	sys, err := linsolve.NewSystem(a, b)
	require.NoError(t, err)

	return sys
}

// randDominant returns a strictly diagonally dominant n×n system, which is
// non-singular and needs no pivoting.
func randDominant(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = 2*rng.Float64() - 1
		}
		a[i][i] += float64(n + 1)
		b[i] = 10*rng.Float64() - 5
	}

	return a, b
}

// oracle solves a·x = b with gonum.
func oracle(t testing.TB, a [][]float64, b []float64) []float64 {
	t.Helper()
	n := len(a)
	data := make([]float64, 0, n*n)
	for _, row := range a {
		data = append(data, row...)
	}
	var x mat.VecDense
	err := x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, append([]float64(nil), b...)))
	require.NoError(t, err)

	return append([]float64(nil), x.RawVector().Data...)
}
