package watch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/fsnotify/fsnotify"
	"github.com/gigurra/smurf/cmd/common"
	"github.com/gigurra/smurf/pkg/smurf"
	"github.com/spf13/cobra"
)

type Params struct {
	File  string  `pos:"true" required:"true" help:"File to watch and smurfify on every change."`
	Out   string  `short:"o" optional:"true" help:"Write the result to this file instead of stdout."`
	Chaos float64 `short:"c" help:"Probability that an unlisted word is smurfified anyway." default:"0.05"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "watch",
		Short:       "Watch a file and smurfify it on change",
		Long:        "Re-smurfify a file every time it is written to. Leave it running next to your notes.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := runWatch(cmd.Context(), params); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "watch: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runWatch(ctx context.Context, params *Params) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file itself: editors often
	// replace the file on save, which would drop a file-level watch.
	if err := watcher.Add(filepath.Dir(params.File)); err != nil {
		return err
	}

	smurfer := smurf.New(smurf.Options{ChaosChance: params.Chaos})

	if err := render(params, smurfer); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	target := filepath.Clean(params.File)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigChan:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := render(params, smurfer); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}

func render(params *Params, smurfer *smurf.Smurfifier) error {
	if params.Out == "" {
		return renderTo(params.File, smurfer, os.Stdout)
	}
	out, err := os.Create(params.Out)
	if err != nil {
		return err
	}
	if err := renderTo(params.File, smurfer, out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// renderTo reads the file line by line and writes the transformed lines.
func renderTo(path string, smurfer *smurf.Smurfifier, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, smurfer.Line(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}
