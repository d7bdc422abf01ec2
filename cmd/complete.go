package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// fileFlags are flags that take a file name.
var fileFlags = map[string]bool{"inventory-file": true}

// completion describes the registered subcommands and their flags for shell completion.
func completion() *complete.Command {
	top := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		top.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	return top
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case fileFlags[f.Name]:
			flags[f.Name] = predict.Files("*")
		case isBoolFlag(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// Complete runs shell completion for the program name if the shell asked
// for it, in which case it exits. Otherwise it returns immediately.
// It must be called after Register.
func Complete(name string) {
	completion().Complete(name)
}
