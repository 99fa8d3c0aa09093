package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/ja-nei/itinerary"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plan as text, calendar or Word document without opening the page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := []string{format}
			if format == "all" {
				if outDir == "-" {
					return fmt.Errorf("--format all needs an output directory, not stdout")
				}
				formats = itinerary.Formats()
			}
			if outDir == "" {
				outDir = ctx.cfg.Itinerary.OutDir
			}

			for _, f := range formats {
				exporter, err := itinerary.Lookup(f)
				if err != nil {
					return fmt.Errorf("%w (available: %s, all)", err, strings.Join(itinerary.Formats(), ", "))
				}
				artifact, err := itinerary.Generate(exporter, ctx.plan)
				if err != nil {
					return err
				}

				if outDir == "-" {
					_, err := cmd.OutOrStdout().Write(artifact.Data)
					return err
				}

				path, err := itinerary.WriteArtifact(outDir, artifact)
				if err != nil {
					return err
				}
				ctx.logger.Info("plan exported", zap.String("format", f), zap.String("path", path))
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "all", "txt, ics, docx or all")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory, or - for stdout (default from config)")
	return cmd
}
