package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/circle"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your circle as JSON",
		Long:  "Export the full person collection as a pretty-printed JSON array. Writes to stdout, or to a dated file with -o.",
		Run:   runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Output directory (writes kokoro_export_<date>.json)")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	outDir, _ := cmd.Flags().GetString("out")

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if outDir == "" {
		if err := c.Export(os.Stdout); err != nil {
			exitErr("export", err)
		}
		return
	}

	path := filepath.Join(outDir, circle.ExportFilename(time.Now()))
	f, err := os.Create(path)
	if err != nil {
		exitErr("export", err)
	}
	defer f.Close()

	if err := c.Export(f); err != nil {
		exitErr("export", err)
	}

	fmt.Printf(`{"ok":true,"file":%q}`+"\n", path)
}
