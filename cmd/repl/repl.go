package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/smurf/cmd/common"
	"github.com/gigurra/smurf/pkg/smurf"
	"github.com/spf13/cobra"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Params struct {
	Chaos float64 `short:"c" help:"Probability that an unlisted word is smurfified anyway." default:"0.05"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "repl",
		Short:       "Interactive smurfify loop",
		Long:        "Type a line, get it back smurfified. Ctrl+D to quit.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			Run(params)
		},
	}.ToCobra()
}

func Run(params *Params) {
	m := model{smurfer: smurf.New(smurf.Options{ChaosChance: params.Chaos})}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		os.Exit(1)
	}
}

type model struct {
	smurfer  *smurf.Smurfifier
	input    string
	history  []string
	quitting bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input)
			m.input = ""
			if line != "" {
				m.history = append(m.history,
					promptStyle.Render("> ")+line,
					outputStyle.Render(m.smurfer.Line(line)))
			}
			return m, nil
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				runes := []rune(m.input)
				m.input = string(runes[:len(runes)-1])
			}
			return m, nil
		case tea.KeySpace:
			m.input += " "
			return m, nil
		case tea.KeyRunes:
			m.input += string(msg.Runes)
			return m, nil
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Stay smurfy!\n"
	}
	var b strings.Builder
	b.WriteString(bannerStyle.Render("smurf repl"))
	b.WriteString(helpStyle.Render("  type a line, enter to smurf, ctrl+d to quit"))
	b.WriteString("\n\n")
	for _, line := range m.history {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(promptStyle.Render("> "))
	b.WriteString(m.input)
	return b.String()
}
