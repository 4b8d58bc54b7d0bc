// SPDX-License-Identifier: MIT

// Package narrate turns engine traces into text for people: iteration tables
// drawn with lipgloss/table and numbered arithmetic steps that spell out every
// substitution the way a worked example on a whiteboard would.
//
// A Renderer is stateless after construction and safe for concurrent use.
// WithPlain drops colour and switches to ASCII borders for pipes and tests.
package narrate
