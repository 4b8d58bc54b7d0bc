// SPDX-License-Identifier: MIT

// Package optimize implements golden-section search for the maximum or
// minimum of a unimodal f(x) over [xl, xu].
//
// The search keeps two interior points x1 = xl + d and x2 = xu - d with
// d = R·(xu - xl), R = (√5 - 1)/2. Each pass compares f(x1) with f(x2), drops
// the sub-interval beyond the loser and reuses the winner, so only one new
// evaluation is needed. The interval shrinks by exactly R per pass.
//
// There is no tolerance: GoldenSection always runs MaxIterations passes and
// reports the winner of the last one with Status numerr.StatusCompleted.
package optimize
