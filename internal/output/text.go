// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteText prints one TSV line per row, optionally preceded by the header
// and followed by a pretty block rendered by render.
func WriteText(w io.Writer, rows []Row, header bool, render func(Row) string) error {
	if header {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(r)); err != nil {
				return err
			}
		}
	}
	return nil
}
