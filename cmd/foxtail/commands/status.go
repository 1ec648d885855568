package commands

import (
	"fmt"
	"time"

	"github.com/heph2/foxtail/internal/core/domain"
	"github.com/heph2/foxtail/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the environment's cache freshness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Status(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}

			renderStatus(cmd, report)

			if !report.Fresh() {
				return &domain.ExitError{Code: 1, Err: domain.ErrEnvironmentStale}
			}
			return nil
		},
	}
}

func renderStatus(cmd *cobra.Command, report *domain.StatusReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, style.Header.Render("foxtail status"))
	fmt.Fprintf(out, "  root        %s %s\n", report.Root, presence(report.RootExists))
	fmt.Fprintf(out, "  marker      %s %s\n", report.MarkerPath, presence(report.MarkerExists))
	if report.MarkerExists {
		fmt.Fprintf(out, "  marker time %s\n", report.MarkerTime.Format(time.RFC3339Nano))
	}
	fmt.Fprintf(out, "  fingerprint %s\n", style.Muted.Render(report.Fingerprint))

	if len(report.CacheFiles) == 0 {
		fmt.Fprintln(out, style.Muted.Render("  no cache files"))
	}
	for _, cf := range report.CacheFiles {
		icon := style.Good.Render(style.Check)
		if !cf.Fresh {
			icon = style.Bad.Render(style.Cross)
		}
		fmt.Fprintf(out, "  %s %s (%s)\n", icon, cf.Path, cf.ModTime.Format(time.RFC3339Nano))
	}

	if report.Fresh() {
		fmt.Fprintln(out, style.Good.Render("up to date"))
	} else {
		fmt.Fprintln(out, style.Bad.Render("stale"))
	}
}

func presence(exists bool) string {
	if exists {
		return style.Good.Render(style.Dot)
	}
	return style.Bad.Render("missing")
}
