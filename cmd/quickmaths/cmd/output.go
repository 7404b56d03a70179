// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quickmaths/internal/config"
)

// render writes rows in format; text uses line to render each row.
func render[R any](w io.Writer, format string, rows []R, line func(R) string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rows)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}

		return enc.Close()
	default:
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, line(r)); err != nil {
				return err
			}
		}

		return nil
	}
}
