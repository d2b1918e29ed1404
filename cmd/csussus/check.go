package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Speykious/csussus/internal/diagfmt"
	"github.com/Speykious/csussus/internal/driver"
	"github.com/Speykious/csussus/internal/observ"
	"github.com/Speykious/csussus/internal/project"
	"github.com/Speykious/csussus/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Tokenize every source file in a csussus project",
	Long: `Check locates the project manifest (csussus.toml), tokenizes every
*.csus file under the project source root in parallel, and reports all
lexical diagnostics. Exits with status 1 if any file has errors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	checkCmd.Flags().String("ui", "auto", "interactive progress UI (auto|on|off)")
	checkCmd.Flags().Bool("no-cache", false, "skip the on-disk token cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	manifestPath, err := project.Find(startDir)
	if err != nil {
		return err
	}
	manifest, err := project.Load(manifestPath)
	if err != nil {
		return err
	}
	srcDir := filepath.Join(filepath.Dir(manifestPath), manifest.Root)
	if _, err := os.Stat(srcDir); err != nil {
		return fmt.Errorf("source root %q: %w", srcDir, err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !noCache {
		// Кеш опционален: не смогли открыть — работаем без него.
		cache, _ = driver.OpenDiskCache("csussus")
	}

	opts := driver.TokenizeDirOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	}

	timer := observ.NewTimer()
	phase := timer.Begin("lex")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var fs *source.FileSet
	var results []driver.TokenizeDirResult
	if shouldUseTUI(mode) && !quiet {
		files, listErr := driver.ListSourceFiles(srcDir)
		if listErr != nil {
			return listErr
		}
		fs, results, err = runTokenizeDirWithUI(ctx, "checking "+manifest.Name, srcDir, files, opts)
	} else {
		fs, results, err = driver.TokenizeDir(ctx, srcDir, opts)
	}
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	prettyOpts := diagfmt.PrettyOpts{Color: useColor, Context: 2}

	failed := 0
	tokens := 0
	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, res.Bag, fs, prettyOpts)
		}
		if res.Err != nil || res.Bag.HasErrors() {
			failed++
			continue
		}
		if res.Stream != nil {
			tokens += res.Stream.Len()
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if failed > 0 {
		return fmt.Errorf("check failed: %d of %d files have errors", failed, len(results))
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "ok: %d files, %d tokens\n", len(results), tokens)
	}
	return nil
}
