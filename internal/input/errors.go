package input

import "errors"

// ErrUsage marks every resolver failure; callers map it to the usage exit code.
var ErrUsage = errors.New("usage error")

// usageError wraps a user-facing message so it matches ErrUsage while printing only msg.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Is(target error) bool { return target == ErrUsage }
