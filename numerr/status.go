// SPDX-License-Identifier: MIT

package numerr

import "fmt"

// Status reports how an iterative engine stopped. It is never an error:
// exhausting the iteration budget still yields a best-effort estimate.
type Status int

const (
	// StatusConverged means the error metric met the tolerance.
	StatusConverged Status = iota + 1

	// StatusMaxIterations means the budget ran out first; the result holds
	// the last estimate.
	StatusMaxIterations

	// StatusCompleted means a fixed-pass method ran every pass it was asked to.
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusConverged:     "converged",
	StatusMaxIterations: "max_iterations",
	StatusCompleted:     "completed",
}

// String returns the snake_case name used in logs, JSON and metrics labels.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText encodes s by name.
func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("numerr: unknown status %d", int(s))
	}

	return []byte(s.String()), nil
}
