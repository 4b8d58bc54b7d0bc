// SPDX-License-Identifier: MIT

package numerr

import (
	"errors"
	"fmt"
)

var (
	// ErrExpression marks malformed formulas, unknown identifiers and
	// non-finite evaluation results.
	ErrExpression = errors.New("numlab: expression error")

	// ErrDomain marks violated method preconditions.
	ErrDomain = errors.New("numlab: domain error")

	// ErrNumerical marks division instability (near-zero denominator,
	// derivative or pivot).
	ErrNumerical = errors.New("numlab: numerical error")

	// ErrInput marks invalid request fields and invalid options.
	ErrInput = errors.New("numlab: input error")
)

// Kind names the taxonomy entry err belongs to: "expression", "domain",
// "numerical", "input", or "" when err is none of them.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrExpression):
		return "expression"
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrNumerical):
		return "numerical"
	case errors.Is(err, ErrInput):
		return "input"
	default:
		return ""
	}
}

// Errorf builds "<op>: <message>: <kind>" and keeps kind reachable for errors.Is.
// kind must be one of the package sentinels (or any non-nil error).
func Errorf(op string, kind error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), kind)
}

// Wrap tags err with op, preserving the chain. Returns nil for a nil err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
