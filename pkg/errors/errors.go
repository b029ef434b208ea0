package errors

import (
	"fmt"
)

var (
	ErrStageFailed  = fmt.Errorf("bootstrap stage failed")
	ErrMissingCreds = fmt.Errorf("admin credentials not supplied")
	ErrInvalidArg   = fmt.Errorf("invalid arg")
	ErrNotReady     = fmt.Errorf("service not ready")
	ErrNotSupported = fmt.Errorf("not supported")
)
