package rates

import "errors"

var (
	ErrInvalidRate = errors.New("rate must be between 0 and 10000 basis points")
)
