package options

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatICS  = "ics"
)

// TransferOptions locate an export or import file.
type TransferOptions struct {
	Out    string
	Format string
}

func AddExportArgs(cmd *cobra.Command, o *TransferOptions) {
	cmd.Flags().StringVarP(&o.Out, "out", "o", "",
		`File to write, "-" for stdout. Defaults to a dated backup name in the working directory.`)
	cmd.Flags().StringVarP(&o.Format, "format", "f", "",
		`Export format, one of "json" or "ics". Defaults to the --out extension, then json.`)
}

// ResolveFormat picks the export format from the flag or the file extension.
func (o *TransferOptions) ResolveFormat() (string, error) {
	f := strings.ToLower(strings.TrimSpace(o.Format))
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.Out)), ".")
		if f != FormatICS {
			f = FormatJSON
		}
	}
	switch f {
	case FormatJSON, FormatICS:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", o.Format)
	}
}
