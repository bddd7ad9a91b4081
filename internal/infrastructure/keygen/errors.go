package keygen

import "errors"

// ErrUnknownKeyType ...
var ErrUnknownKeyType = errors.New("unknown key type")
