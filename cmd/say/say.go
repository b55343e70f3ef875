package say

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gigurra/smurf/cmd/common"
	"github.com/gigurra/smurf/pkg/smurf"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

type Params struct {
	Text  []string `pos:"true" optional:"true" help:"Text to smurfify. If none provided, reads from stdin."`
	File  string   `short:"f" optional:"true" help:"Smurfify a file line by line."`
	Chaos float64  `short:"c" help:"Probability that an unlisted word is smurfified anyway." default:"0.05"`
	Seed  int64    `short:"s" help:"Random seed. 0 seeds from the current time." default:"0"`
	Copy  bool     `help:"Also copy the output to the system clipboard." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "say",
		Short:       "Smurfify text",
		Long:        "Replace verbs, nouns, adjectives and exclamations with forms of \"smurf\". Pipe your standup notes through it.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "say: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout io.Writer) error {
	smurfer := smurf.New(smurf.Options{
		ChaosChance: params.Chaos,
		Rand:        newRand(params.Seed),
	})

	var copied strings.Builder
	emit := func(line string) {
		_, _ = fmt.Fprintln(stdout, line)
		if params.Copy {
			copied.WriteString(line)
			copied.WriteByte('\n')
		}
	}

	switch {
	case params.File != "":
		f, err := os.Open(params.File)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		if err := transformLines(f, smurfer, emit); err != nil {
			return fmt.Errorf("%s: %w", params.File, err)
		}
	case len(params.Text) > 0:
		emit(smurfer.Line(strings.Join(params.Text, " ")))
	default:
		if err := transformLines(stdin, smurfer, emit); err != nil {
			return err
		}
	}

	if params.Copy {
		if err := clipboardWriteAll(copied.String()); err != nil {
			return fmt.Errorf("failed to write to clipboard: %w", err)
		}
	}
	return nil
}

func transformLines(r io.Reader, smurfer *smurf.Smurfifier, emit func(string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		emit(smurfer.Line(scanner.Text()))
	}
	return scanner.Err()
}

// newRand returns nil for seed 0, which makes the engine pick a time-seeded
// source itself.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}
