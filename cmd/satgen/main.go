package main

import (
	"io"
	"math/rand/v2"
	"os"

	"github.com/limaJavier/satgen/internal/config"
	"github.com/limaJavier/satgen/pkg/generator"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "satgen",
		Short: "Generate a random DIMACS-CNF instance",
		Long: `Generate a random DIMACS-CNF instance.
Every variable is assigned a random inclusion probability. Each clause then
includes every variable with that probability and negates it one time in four.
Clauses with fewer than two literals are replaced by a random subset of
between 3 and N variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			logger := log.New()
			logger.SetOutput(stderr)
			logger.SetLevel(cfg.Level())

			return run(cfg, stdout, logger)
		},
	}
	config.AddFlags(cmd.Flags())
	return cmd
}

func run(cfg config.Config, stdout io.Writer, logger *log.Logger) (err error) {
	if cfg.Variables < generator.RepairMinSize {
		logger.WithField("variables", cfg.Variables).Warnf("fewer than %d variables: any clause needing repair will fail", generator.RepairMinSize)
	}

	out := stdout
	if cfg.Output != "" {
		file, createErr := os.Create(cfg.Output)
		if createErr != nil {
			return errors.Wrap(createErr, "cannot create output file")
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = errors.Wrap(closeErr, "cannot close output file")
			}
		}()
		out = file
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	stats, err := generator.New(rng, logger).Generate(out, cfg.Variables, cfg.Clauses)
	if err != nil {
		return errors.Wrap(err, "an error occurred during instance generation")
	}

	logger.WithFields(stats.Fields()).Info("instance generated")
	return nil
}
