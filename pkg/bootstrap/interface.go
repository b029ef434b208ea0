package bootstrap

import (
	"context"

	"github.com/tagalong/ramp/pkg/structs"
)

// Stage is one discrete step of the bootstrap pipeline.
type Stage interface {
	// Kind names the stage (for logs & the run record).
	Kind() structs.Stage

	// Run performs the stage, blocking until it completes.
	Run(ctx context.Context) error
}
