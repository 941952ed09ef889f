package ask

import "errors"

// ErrNoRetrievalService is returned when the view has no retrieval service.
var ErrNoRetrievalService = errors.New("ask: retrieval service is not available")
