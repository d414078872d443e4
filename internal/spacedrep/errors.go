package spacedrep

import "fmt"

// UnknownSchedulerError indicates Dispatch was given a name that matches
// no scheduling strategy.
type UnknownSchedulerError struct {
	Name string
}

func (e *UnknownSchedulerError) Error() string {
	return fmt.Sprintf("unknown scheduler: %q", e.Name)
}
