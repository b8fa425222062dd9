package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tangent-ml/tangent/internal/forward"
	"github.com/tangent-ml/tangent/internal/hclgraph"
)

// watchDebounce batches rapid editor writes into one re-evaluation.
const watchDebounce = 200 * time.Millisecond

func newEvalCmd() *cobra.Command {
	var (
		inputsFlag string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "eval <graph.hcl>",
		Short: "Evaluate a graph definition and print each output's value and gradient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseInputs(inputsFlag)
			if err != nil {
				return err
			}
			if watch {
				return watchAndEval(cmd.Context(), args[0], inputs)
			}
			return evalFile(cmd.OutOrStdout(), args[0], inputs)
		},
	}
	cmd.Flags().StringVar(&inputsFlag, "inputs", "", "comma-separated input values, in declaration order")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-evaluate whenever the file changes")
	return cmd
}

// parseInputs splits a comma-separated list of float64 values.
func parseInputs(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q: %w", p, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// evalFile loads the graph definition, evaluates it once, and prints one
// block per output: the value followed by the partial derivative with
// respect to each declared input.
func evalFile(w io.Writer, path string, inputs []float64) error {
	model, err := hclgraph.Load(path)
	if err != nil {
		return err
	}

	results, err := forward.New(model.Graph).Compute(inputs)
	if err != nil {
		return err
	}

	for i, res := range results {
		name := model.OutputNames[i]
		fmt.Fprintf(w, "%s = %.6f\n", name, res.Value)
		for j, d := range res.Gradient {
			fmt.Fprintf(w, "  d%s/d%s = %.6f\n", name, model.InputNames[j], d)
		}
	}
	return nil
}

// watchAndEval evaluates once, then re-evaluates on every change to the
// definition file until the context is cancelled.
func watchAndEval(ctx context.Context, path string, inputs []float64) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: many editors replace the
	// file on save, which would invalidate a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	run := func() {
		if err := evalFile(os.Stdout, path, inputs); err != nil {
			slog.Error("Evaluation failed", "path", path, "error", err)
			return
		}
	}
	run()
	slog.Info("Watching for changes", "path", path)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evPath, err := filepath.Abs(ev.Name)
			if err != nil || evPath != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}
