package moyulog

import "errors"

var ErrUnknownType = errors.New("unknown log type")
