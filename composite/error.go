package composite

import "errors"

// ErrUnsupportedOperation a leaf node cannot hold children
var ErrUnsupportedOperation = errors.New("unsupported operation")
