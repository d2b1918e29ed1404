package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Speykious/csussus/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new csussus project",
	Long: `Initialize a new csussus project by creating a project manifest
(csussus.toml) and a hello-world entry point (src/main.csus). If [path|name]
is omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Determine project name from directory basename
	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "csussus-project"
	}

	// Refuse to re-initialize
	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := project.WriteDefault(target, name); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	srcDir := filepath.Join(target, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create src directory: %w", err)
	}

	mainPath := filepath.Join(srcDir, "main"+project.SourceExt)
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainCsus()), 0o600); err != nil {
			return fmt.Errorf("failed to write main%s: %w", project.SourceExt, err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized csussus project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - src/main%s\n", project.SourceExt)
	} else {
		fmt.Fprintf(os.Stdout, "  - src/main%s (existing)\n", project.SourceExt)
	}
	return nil
}

// defaultMainCsus returns the placeholder program written by `csussus init`.
func defaultMainCsus() string {
	return `// csussus hello world (placeholder)

fn greeting() do
    $"Hello, {name}!"

pub fn main() do
    greeting()
`
}
