// SPDX-License-Identifier: MIT

package narrate

import (
	"strings"

	"github.com/katalvlaran/numlab/presets"
)

// PresetList renders the preset catalog as a name/method/title table.
func (r *Renderer) PresetList(ps []presets.Preset) string {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, []string{p.Name, p.Method, p.Title})
	}

	var sb strings.Builder
	sb.WriteString(r.st.title.Render("Presets"))
	sb.WriteByte('\n')
	sb.WriteString(r.grid([]string{"Name", "Method", "Title"}, rows))
	sb.WriteByte('\n')

	return sb.String()
}
