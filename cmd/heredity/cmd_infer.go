package main

import (
	"context"
	"fmt"
	"log"

	"github.com/carbocation/heredity"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var inferFlags struct {
	format    string
	tablePath string
	maxPeople int
	parallel  int
}

var inferCmd = &cobra.Command{
	Use:   "infer <pedigree>...",
	Short: "Compute gene and trait distributions for each pedigree",
	Long: "Each pedigree is a CSV file (name,mother,father,trait; optionally .gz, .zlib\n" +
		"or .zst compressed, and optionally a gs:// or s3:// path) or a SQLite pedigree\n" +
		"database (.db, .sqlite, .sqlite3).",
	Args: cobra.MinimumNArgs(1),
	RunE: runInfer,
}

func init() {
	f := inferCmd.Flags()
	f.StringVar(&inferFlags.format, "format", "", "Output format: text, table or json (env HEREDITY_FORMAT, default text)")
	f.StringVar(&inferFlags.tablePath, "table", "", "YAML probability table (env HEREDITY_TABLE, default built-in)")
	f.IntVar(&inferFlags.maxPeople, "max-people", 0, "Largest pedigree to enumerate (env HEREDITY_MAX_PEOPLE, default 20)")
	f.IntVar(&inferFlags.parallel, "parallel", 0, "Pedigrees to infer at once (env HEREDITY_PARALLEL, default 1)")
}

func runInfer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = inferFlags.format
	}
	if flags.Changed("table") {
		cfg.TablePath = inferFlags.tablePath
	}
	if flags.Changed("max-people") {
		cfg.MaxPeople = inferFlags.maxPeople
	}
	if flags.Changed("parallel") {
		cfg.Parallel = inferFlags.parallel
	}

	format, err := heredity.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if cfg.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", cfg.Parallel)
	}

	table, err := loadTable(cfg.TablePath)
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}
	engine, err := heredity.New(table, heredity.WithMaxPeople(cfg.MaxPeople))
	if err != nil {
		return err
	}

	results, err := inferAll(cmd.Context(), engine, args, cfg.Parallel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, path := range args {
		if len(args) > 1 {
			fmt.Fprintf(out, "== %s ==\n", path)
		}
		if err := heredity.Write(out, results[i], format); err != nil {
			return err
		}
	}

	return nil
}

// inferAll runs every pedigree through the engine, up to parallel at a time,
// and returns the results in the order of paths.
func inferAll(ctx context.Context, engine *heredity.Engine, paths []string, parallel int) ([]heredity.Distributions, error) {
	results := make([]heredity.Distributions, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			pedigree, err := heredity.Open(gCtx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Printf("Loaded %d people from %s\n", len(pedigree), path)

			d, err := engine.Infer(gCtx, pedigree)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = d

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
