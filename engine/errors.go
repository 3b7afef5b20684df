package engine

import "errors"

var errAlreadyRunning = errors.New("clock scheduler already running")
