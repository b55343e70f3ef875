package lexicon

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/smurf/cmd/common"
	"github.com/gigurra/smurf/pkg/smurf"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	All      bool   `short:"a" help:"List every word in each category." default:"false"`
	Category string `short:"c" optional:"true" help:"Only show one category." alts:"verb,noun,adjective,exclaim"`
}

type categoryInfo struct {
	name    string
	cat     smurf.Category
	becomes string
}

var categories = []categoryInfo{
	{"verb", smurf.Verb, "smurf"},
	{"noun", smurf.Noun, "smurf"},
	{"adjective", smurf.Adjective, "smurfy"},
	{"exclaim", smurf.Exclaim, smurf.ExclaimMarker},
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "lexicon",
		Short:       "Show the word categories",
		Long:        "List the words the substitution engine recognizes and what each category turns into.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdout); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "lexicon: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdout io.Writer) error {
	selected := categories
	if params.Category != "" {
		selected = lo.Filter(categories, func(c categoryInfo, _ int) bool {
			return c.name == strings.ToLower(params.Category)
		})
		if len(selected) == 0 {
			return fmt.Errorf("unknown category: %s", params.Category)
		}
	}

	if params.All {
		for _, c := range selected {
			_, _ = fmt.Fprintf(stdout, "%s (-> %s):\n", c.name, c.becomes)
			for _, word := range smurf.Words(c.cat) {
				_, _ = fmt.Fprintf(stdout, "  %s\n", word)
			}
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Words", "Becomes", "Sample"})
	for _, c := range selected {
		words := smurf.Words(c.cat)
		t.AppendRow(table.Row{c.name, len(words), c.becomes, sample(words, 4)})
	}
	t.Render()
	return nil
}

func sample(words []string, n int) string {
	if len(words) <= n {
		return strings.Join(words, ", ")
	}
	return strings.Join(words[:n], ", ") + ", ..."
}
