package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/ja-nei/app"
	"github.com/lixenwraith/ja-nei/config"
	"github.com/lixenwraith/ja-nei/core"
	"github.com/lixenwraith/ja-nei/itinerary"
)

// commandContext carries the resolved flags and the state loaded once in
// PersistentPreRunE for every subcommand
// The caller closes it after Execute, whether or not the command failed
type commandContext struct {
	configPath string
	debug      bool
	color      string

	cfg     *config.Config
	plan    itinerary.Plan
	logger  *zap.Logger
	logFile *os.File
}

func (c *commandContext) load() error {
	c.logger, c.logFile = setupLogging(c.debug)

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	plan, err := cfg.Plan()
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	c.cfg, c.plan = cfg, plan
	c.logger.Debug("config loaded",
		zap.String("path", c.configPath),
		zap.Int("items", len(plan.Entries())),
		zap.Bool("music", cfg.Music.Enabled),
	)
	return nil
}

func (c *commandContext) close() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	if c.logFile != nil {
		c.logFile.Close()
		c.logFile = nil
	}
}

func newRootCommand() (*cobra.Command, *commandContext) {
	ctx := &commandContext{}

	root := &cobra.Command{
		Use:           "ja-nei",
		Short:         "Ask the question, dodge the no, celebrate the yes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// config init must work without a valid config on disk
			if cmd.Annotations["skipLoad"] == "true" {
				ctx.logger, ctx.logFile = setupLogging(ctx.debug)
				return nil
			}
			return ctx.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(ctx, plainColors(ctx.color, cmd.OutOrStdout()))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "path to a TOML config file (built-in defaults when empty)")
	flags.BoolVar(&ctx.debug, "debug", false, "write a debug log to "+logDir+"/"+logFileName)
	flags.StringVar(&ctx.color, "color", "auto", "color output: auto, always or never")

	root.AddCommand(
		newExportCommand(ctx),
		newPlanCommand(ctx),
		newConfigCommand(ctx),
	)
	return root, ctx
}

// runPage owns the terminal for the lifetime of the interactive page
func runPage(ctx *commandContext, plain bool) error {
	screen, err := app.OpenScreen()
	if err != nil {
		return err
	}

	game := app.New(screen, app.Options{
		Config: ctx.cfg,
		Plan:   ctx.plan,
		Logger: ctx.logger,
		Plain:  plain,
	})
	defer game.Close()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx.logger.Info("page started")
	game.Run()
	ctx.logger.Info("page closed")
	return nil
}
