// SPDX-License-Identifier: MIT

// Command numlab runs the numerical-methods engines from a terminal and
// serves them over HTTP.
//
//	numlab bisect --preset bisection
//	numlab newton --f "x**2 - 2" --df "2*x" --x0 1 --tol 0.01 --follow
//	numlab gauss --a=4,1,-1,5,1,2,6,1,1 --b=-2,4,6
//	numlab golden --f "2*sin(x) - x**2/10" --xl 0 --xu 4
//	numlab serve --config numlab.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
