package bootstrap

import (
	"context"
	"os"
	"os/exec"

	"github.com/tagalong/ramp/pkg/structs"
)

// DepsStage resolves & installs the production dependency set by invoking
// the configured installer (eg. "pip3 install -r requirements.txt").
//
// Output goes straight to our stdout/stderr so it lands in the build logs.
type DepsStage struct {
	command string
	args    []string
}

func NewDepsStage(command string, args ...string) *DepsStage {
	return &DepsStage{command: command, args: args}
}

func (s *DepsStage) Kind() structs.Stage {
	return structs.StageDependencies
}

func (s *DepsStage) Run(ctx context.Context) error {
	if s.command == "" {
		// nothing declared; an instance baked with deps pre-installed
		return nil
	}
	cmd := exec.CommandContext(ctx, s.command, s.args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
