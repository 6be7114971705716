package translate

import "errors"

// Sentinel errors surfaced at use-case boundaries, tested with errors.Is.
var (
	ErrUnknownService    = errors.New("translate: unknown service mapping")
	ErrCodebaseNotFound  = errors.New("translate: codebase not found")
	ErrPlanNotFound      = errors.New("translate: plan not found")
	ErrPlanNotExecutable = errors.New("translate: plan is not executable")
)
