package domain

import "errors"

var (
	// ErrInvalidAlias is returned when the alias doesn't match the required
	// format.
	ErrInvalidAlias = errors.New(
		"the alias must be between 3 and 20 characters (letters, numbers and underscores)",
	)
	// ErrAliasNotAvailable ...
	ErrAliasNotAvailable = errors.New("alias is not available")
	// ErrPasskeyTooShort ...
	ErrPasskeyTooShort = errors.New("the password must be at least 8 characters long")
	// ErrPasskeyTooWeak ...
	ErrPasskeyTooWeak = errors.New(
		"the password must include at least one number and one letter",
	)
	// ErrPasskeyMismatch ...
	ErrPasskeyMismatch = errors.New("the passwords do not match")
	// ErrMissingProposalTitle ...
	ErrMissingProposalTitle = errors.New("title is required")
	// ErrProposalTitleTooShort ...
	ErrProposalTitleTooShort = errors.New("the title must be at least 5 characters")
	// ErrProposalTitleTooLong ...
	ErrProposalTitleTooLong = errors.New("the title must be at most 100 characters")
	// ErrMissingProposalDescription ...
	ErrMissingProposalDescription = errors.New("description is required")
	// ErrProposalDescriptionTooShort ...
	ErrProposalDescriptionTooShort = errors.New(
		"the description must be at least 20 characters",
	)
	// ErrProposalDescriptionTooLong ...
	ErrProposalDescriptionTooLong = errors.New(
		"the description must be at most 1000 characters",
	)
	// ErrNullPublicKey is returned when creating an identity without keys.
	ErrNullPublicKey = errors.New("public key must not be null")
	// ErrNullPrivateKey ...
	ErrNullPrivateKey = errors.New("private key must not be null")
)
