package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/inventory/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env file is fine, configuration may come from the environment directly.
	_ = godotenv.Load()

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)
	cmd.Complete(name)

	flag.Parse()
	ctx := context.Background()

	if flag.NArg() == 0 {
		os.Exit(int(cmd.Menu(ctx)))
	}
	if sub := flag.Arg(0); !cmd.IsCommand(sub) {
		if ok, code := cmd.RunExtension(sub, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}
