package topic

import "errors"

var ErrNotFound = errors.New("topic not found")
