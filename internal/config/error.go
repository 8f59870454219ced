package config

import "errors"

var ErrUnknownDriver = errors.New("unknown store driver, expected badger, file or memory")
