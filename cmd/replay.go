package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/constellation/internal/config"
	"github.com/philipparndt/constellation/internal/metrics"
	"github.com/philipparndt/constellation/internal/replay"
	"github.com/philipparndt/constellation/pkg/constellation"
	"github.com/philipparndt/constellation/pkg/watcher"
)

var (
	replayWatch   bool
	replayMetrics bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a pick script without a window",
	Long: `Run the events of a YAML script through a scene and print the outcome of
every event, the resulting edges and the line buffer contents.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayCmd,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "Rerun the script whenever it changes")
	replayCmd.Flags().BoolVarP(&replayMetrics, "metrics", "m", false, "Print the collected metrics after each run")
}

func runReplayCmd(c *cobra.Command, args []string) error {
	cfg, logger, err := LoadSettings(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	path := args[0]
	out := c.OutOrStdout()

	if err := runReplay(out, path, cfg, logger, replayMetrics); err != nil {
		if !replayWatch {
			return err
		}
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
	}
	if !replayWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchReplay(ctx, c, path, cfg, logger, replayMetrics)
}

// runReplay loads the script at path, runs it and prints the result
func runReplay(w io.Writer, path string, cfg config.Config, logger *zap.Logger, withMetrics bool) error {
	script, err := replay.Load(path)
	if err != nil {
		return err
	}

	var observer constellation.Observer
	var registry *metrics.Registry
	if withMetrics {
		registry = metrics.NewRegistry()
		observer = registry
	}

	sc := replay.NewScene(script, cfg, logger, observer)
	if registry != nil {
		registry.SetStars(sc.Cloud.Len())
	}

	replay.Run(script, sc).Print(w)

	if registry != nil {
		fmt.Fprintln(w, "\nMetrics:")
		if err := registry.Dump(w); err != nil {
			return fmt.Errorf("failed to dump metrics: %w", err)
		}
	}
	return nil
}

// watchReplay reruns the script on every change until ctx is cancelled
func watchReplay(ctx context.Context, c *cobra.Command, path string, cfg config.Config, logger *zap.Logger, withMetrics bool) error {
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, logger.Named("watcher"))
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(path); err != nil {
		return err
	}
	fw.Start(ctx)

	out := c.OutOrStdout()
	fmt.Fprintf(out, "\nWatching %s (Ctrl+C to stop)\n", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-fw.Changes():
			fmt.Fprintf(out, "\n%s changed, running again\n\n", changed)
			if err := runReplay(out, path, cfg, logger, withMetrics); err != nil {
				fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
			}
		}
	}
}
