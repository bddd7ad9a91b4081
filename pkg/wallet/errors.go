package wallet

import "errors"

var (
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("text to encrypt must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher to decrypt must not be null")
	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher must be in base64 format")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrInvalidPassphrase is returned when the cypher can't be authenticated
	// with the given passphrase.
	ErrInvalidPassphrase = errors.New("passphrase is not valid")
	// ErrInvalidScryptCost ...
	ErrInvalidScryptCost = errors.New("scrypt cost must be a power of 2 and at least 1024")
)
