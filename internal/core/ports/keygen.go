package ports

// KeyPair is a hex encoded key pair.
type KeyPair interface {
	GetPublicKey() string
	GetPrivateKey() string
}

// KeyGenerator generates the wallet key pair.
type KeyGenerator interface {
	NewKeyPair() (KeyPair, error)
}
