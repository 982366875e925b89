package mediainfo

import (
	"errors"
	"fmt"
)

// ErrUnreadableContainer matches every probe failure under errors.Is.
var ErrUnreadableContainer = errors.New("unreadable container")

// UnreadableContainerError reports a file that could not be probed.
type UnreadableContainerError struct {
	Path  string
	Cause error
}

func (e *UnreadableContainerError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrUnreadableContainer, e.Path, e.Cause)
}

func (e *UnreadableContainerError) Is(target error) bool {
	return target == ErrUnreadableContainer
}

func (e *UnreadableContainerError) Unwrap() error {
	return e.Cause
}
