package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Speykious/csussus/internal/driver"
	"github.com/Speykious/csussus/internal/source"
	"github.com/Speykious/csussus/internal/ui"
)

type tokenizeOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

func runTokenizeDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.TokenizeDirOptions) (*source.FileSet, []driver.TokenizeDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan tokenizeOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = driver.ChannelSink{Ch: events}
		fs, results, err := driver.TokenizeDir(ctx, dir, optsCopy)
		outcomeCh <- tokenizeOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
