package memory

import "errors"

var errNotFound = errors.New("memory: record not found")
