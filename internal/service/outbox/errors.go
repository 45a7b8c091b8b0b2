package outbox

import "errors"

var (
	ErrDuplicateEvent = errors.New("outbox event already exists")
	ErrInvalidBatch   = errors.New("invalid outbox batch size")
)
