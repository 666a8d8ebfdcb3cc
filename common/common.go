package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")
)
