package domain

import "errors"

// ErrInvalidArgument marks user input that cannot be turned into a request.
var ErrInvalidArgument = errors.New("invalid argument")
