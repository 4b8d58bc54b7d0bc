package linsolve_test

import (
	"testing"

	"github.com/katalvlaran/numlab/linsolve"
)

func benchSolver(b *testing.B, n int, solve func(linsolve.System, ...linsolve.Option) error) {
	a, rhs := randDominant(n, 42)
	sys := mustSystem(b, a, rhs)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := solve(sys); err != nil {
			b.Fatal(err)
		}
	}
}

func gauss(s linsolve.System, o ...linsolve.Option) error {
	_, err := linsolve.Gauss(s, o...)

	return err
}

func lu(s linsolve.System, o ...linsolve.Option) error {
	_, err := linsolve.LU(s, o...)

	return err
}

func BenchmarkGauss_3(b *testing.B)  { benchSolver(b, 3, gauss) }
func BenchmarkGauss_32(b *testing.B) { benchSolver(b, 32, gauss) }
func BenchmarkLU_3(b *testing.B)     { benchSolver(b, 3, lu) }
func BenchmarkLU_32(b *testing.B)    { benchSolver(b, 32, lu) }
