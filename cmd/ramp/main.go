package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	// ramp is the operational tooling around the Tag Along API: the hosting
	// platform invokes `ramp deploy` as its build step, `ramp serve` exposes
	// the health/static surface, and `ramp worker` chews through post-deploy
	// tasks (warmup, demo seeding).

	parser := flags.NewParser(nil, flags.Default)
	parser.AddCommand("deploy", "Run the deployment bootstrap pipeline", docDeploy, &optsDeploy{})
	parser.AddCommand("serve", "Run the health & static asset server", docServe, &optsServe{})
	parser.AddCommand("worker", "Run the post-deploy task worker", docWorker, &optsWorker{})
	parser.AddCommand("seed", "Seed demo accounts", docSeed, &optsSeed{})

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
