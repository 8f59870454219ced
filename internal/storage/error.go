package storage

import "errors"

var ErrInvalidKey = errors.New("invalid storage key")
