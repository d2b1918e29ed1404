package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Speykious/csussus/internal/diagfmt"
	"github.com/Speykious/csussus/internal/driver"
	"github.com/Speykious/csussus/internal/observ"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.csus",
	Short: "Tokenize a csussus source file",
	Long:  `Tokenize breaks down a csussus source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	timer := observ.NewTimer()

	// Выполняем токенизацию; stdin читаем через "-"
	phase := timer.Begin("lex")
	var result *driver.TokenizeResult
	if filePath == "-" {
		var src []byte
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		result = driver.TokenizeSource("<stdin>", src, maxDiagnostics)
	} else {
		result, err = driver.Tokenize(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}
	timer.End(phase, "")

	// Выводим диагностику в stderr, если есть
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
		opts := diagfmt.PrettyOpts{
			Color:   useColor,
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	// Фатальная ошибка лексера: токенов нет, выходим с ошибкой
	if result.Err != nil {
		return result.Err
	}

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Stream)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
