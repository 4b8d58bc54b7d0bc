package roots_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/roots"
)

func ExampleBisection() {
	res, err := roots.Bisection(roots.BracketRequest{
		Expr:          "4*x**3 - 6*x**2 + 7*x - 2.3",
		XL:            0,
		XU:            1,
		Tolerance:     1,
		MaxIterations: 50,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.8f iterations=%d status=%s\n", res.Root, res.Iterations, res.Status)
	// Output:
	// root=0.44921875 iterations=8 status=converged
}

func ExampleNewton() {
	res, err := roots.Newton(roots.NewtonRequest{
		Expr:          "-0.9*x**2 + 1.7*x + 2.5",
		Deriv:         "-1.8*x + 1.7",
		X0:            5,
		Tolerance:     0.7,
		MaxIterations: 100,
	}, roots.WithObserver(func(r roots.Record) {
		fmt.Printf("i=%d x=%.4f\n", r.Iteration, r.X)
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.4f\n", res.Root)
	// Output:
	// i=0 x=5.0000
	// i=1 x=3.4247
	// i=2 x=2.9244
	// i=3 x=2.8611
	// i=4 x=2.8601
	// root=2.8601
}

func ExampleSecant_identicalGuesses() {
	_, err := roots.Secant(roots.SecantRequest{Expr: "x", XPrev: 1, X: 1, MaxIterations: 10})
	fmt.Println(errors.Is(err, numerr.ErrDomain), numerr.Kind(err))
	// Output:
	// true domain
}
