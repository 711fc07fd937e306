package ports

import "errors"

// ErrTopicNotFound is returned by a Catalog when no topic carries the requested name
var ErrTopicNotFound = errors.New("topic not found")
