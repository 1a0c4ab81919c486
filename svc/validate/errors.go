package validate

import "errors"

// ErrBodyTooLarge is reported when a request body exceeds MaxBodySize.
var ErrBodyTooLarge = errors.New("request body too large")
