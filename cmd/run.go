package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planrun-cli/planrun/internal/artifact"
	"github.com/planrun-cli/planrun/internal/config"
	"github.com/planrun-cli/planrun/internal/engine"
	"github.com/planrun-cli/planrun/internal/plan"
	"github.com/planrun-cli/planrun/internal/report"
	"github.com/planrun-cli/planrun/internal/ui"
)

var (
	runPlanPath   string
	runOutputPath string
	runDryRun     bool
	runConfigPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute an installation plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if runConfigPath != "" {
			var err error
			cfg, err = config.Load(runConfigPath)
			if err != nil {
				return err
			}
		}

		p, err := plan.LoadFile(runPlanPath)
		if err != nil {
			return fmt.Errorf("plan file %s: %w", runPlanPath, err)
		}

		log := newLogger()
		eng := engine.New(log)
		eng.CommandTimeout = cfg.CommandTimeout
		eng.VerifyTimeout = cfg.VerifyTimeout

		fmt.Println(ui.Banner("Installing " + p.Target))
		fmt.Print(ui.KeyValues("  ",
			ui.KV("platform", p.Platform),
			ui.KV("architecture", p.Architecture),
			ui.KV("package manager", p.PackageManager),
			ui.KV("steps", fmt.Sprintf("%d", len(p.Steps))),
		))
		if runDryRun {
			fmt.Println(ui.WarnMsg("dry run: no commands will be executed"))
		}
		fmt.Println()

		rep := eng.Execute(p, runDryRun)

		if _, err := artifact.SaveRun(rep, cfg.ArtifactDir); err != nil {
			log.Warn().Err(err).Msg("could not persist run artifacts")
		}

		outPath := runOutputPath
		if jsonOutput {
			outPath = withJSONSuffix(outPath)
		}
		if err := writeReport(rep, outPath); err != nil {
			return err
		}

		printSummary(rep)
		fmt.Println(ui.Muted("Report saved to: " + outPath))

		if !rep.Success {
			os.Exit(1)
		}
		return nil
	},
}

func writeReport(rep *report.ExecutionReport, path string) error {
	var data []byte
	if jsonOutput {
		var err error
		data, err = report.JSON(rep)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	} else {
		data = []byte(report.Markdown(rep))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func printSummary(rep *report.ExecutionReport) {
	fmt.Println()
	for _, sr := range rep.Steps {
		switch sr.Status {
		case report.StatusSuccess:
			fmt.Println(ui.SuccessMsg("step %d: %s", sr.Number, sr.Name))
		case report.StatusSkipped:
			fmt.Println(ui.InfoMsg("step %d: %s (skipped)", sr.Number, sr.Name))
		case report.StatusVerifyFailed:
			fmt.Println(ui.WarnMsg("step %d: %s (verification failed)", sr.Number, sr.Name))
		default:
			fmt.Println(ui.ErrorMsg("step %d: %s (%s)", sr.Number, sr.Name, sr.Status))
		}
	}
	fmt.Println()
	if rep.Success {
		fmt.Println(ui.SuccessMsg("%s installed successfully", rep.Target))
	} else if rep.FailedStep != nil {
		fmt.Println(ui.ErrorMsg("installation failed at step %d", *rep.FailedStep))
	} else {
		fmt.Println(ui.ErrorMsg("installation failed"))
	}
}

func withJSONSuffix(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
}

func init() {
	runCmd.Flags().StringVar(&runPlanPath, "plan", "installation_plan.yaml", "Installation plan file")
	runCmd.Flags().StringVar(&runOutputPath, "output", "install_report.md", "Output report file")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Report every step as skipped without executing")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Optional planrun.toml settings file")
	rootCmd.AddCommand(runCmd)
}
