package http

import "errors"

var errProcessorMissing = errors.New("request processor is not configured")
