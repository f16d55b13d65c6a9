package transaction

import "errors"

var ErrInvalidFilter = errors.New("invalid transaction filter")
