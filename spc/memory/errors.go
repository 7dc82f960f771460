package memory

import "errors"

var errBadTimer = errors.New("timer state out of range")
