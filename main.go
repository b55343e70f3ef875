package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/smurf/cmd/lexicon"
	"github.com/gigurra/smurf/cmd/repl"
	"github.com/gigurra/smurf/cmd/say"
	"github.com/gigurra/smurf/cmd/watch"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "smurf",
		Short:   "Replace words with smurf-style language",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			say.Cmd(),
			repl.Cmd(),
			watch.Cmd(),
			lexicon.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
