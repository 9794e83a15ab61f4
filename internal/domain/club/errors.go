package club

import "errors"

var ErrNotFound = errors.New("club not found")
