package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planrun-cli/planrun/internal/envprobe"
	"github.com/planrun-cli/planrun/internal/ui"
)

var probeOutputPath string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Detect the host environment for plan generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := envprobe.Probe()

		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding environment report: %w", err)
		}
		if err := os.WriteFile(probeOutputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing environment report: %w", err)
		}

		if jsonOutput {
			fmt.Println(string(data))
			return nil
		}

		managers := make([]string, 0, len(rep.PackageManagers))
		for _, pm := range rep.PackageManagers {
			managers = append(managers, pm.Name)
		}
		tools := make([]string, 0, len(rep.Tools))
		for tool := range rep.Tools {
			tools = append(tools, tool)
		}
		sort.Strings(tools)

		fmt.Println(ui.Banner("Environment"))
		fmt.Print(ui.KeyValues("  ",
			ui.KV("system", rep.OS.System),
			ui.KV("architecture", rep.OS.Architecture),
			ui.KV("distro", rep.OS.DistroName),
			ui.KV("shell", rep.Shell),
			ui.KV("sudo", fmt.Sprintf("%t", rep.HasSudo)),
			ui.KV("package managers", strings.Join(managers, ", ")),
			ui.KV("tools", strings.Join(tools, ", ")),
		))
		fmt.Println(ui.Muted("Environment report saved to: " + probeOutputPath))
		return nil
	},
}

func init() {
	probeCmd.Flags().StringVar(&probeOutputPath, "output", "environment.json", "Output environment report file")
	rootCmd.AddCommand(probeCmd)
}
