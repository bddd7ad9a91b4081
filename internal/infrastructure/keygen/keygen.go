package keygen

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
	"github.com/thanhpk/randstr"
)

const (
	// TypeRandomHex generates placeholder keys made of random hex chars.
	TypeRandomHex = "hex"
	// TypeSecp256k1 generates a real secp256k1 key pair.
	TypeSecp256k1 = "secp256k1"

	keyPrefix = "0x"
	// randomKeyLen is the number of random bytes of a placeholder key.
	randomKeyLen = 32
)

var supportedTypes = map[string]func() ports.KeyGenerator{
	TypeRandomHex: NewRandomHexGenerator,
	TypeSecp256k1: NewSecp256k1Generator,
}

// NewKeyGenerator returns the generator for the given key type.
func NewKeyGenerator(keyType string) (ports.KeyGenerator, error) {
	factory, ok := supportedTypes[keyType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeyType, keyType)
	}
	return factory(), nil
}

type keyPair struct {
	publicKey  string
	privateKey string
}

func (k keyPair) GetPublicKey() string {
	return k.publicKey
}

func (k keyPair) GetPrivateKey() string {
	return k.privateKey
}

type randomHexGenerator struct{}

// NewRandomHexGenerator returns a generator of random, unrelated public and
// private keys. The keys are identifiers only and can't sign anything.
func NewRandomHexGenerator() ports.KeyGenerator {
	return randomHexGenerator{}
}

func (randomHexGenerator) NewKeyPair() (ports.KeyPair, error) {
	return keyPair{
		publicKey:  keyPrefix + randstr.Hex(randomKeyLen),
		privateKey: randstr.Hex(randomKeyLen),
	}, nil
}

type secp256k1Generator struct{}

// NewSecp256k1Generator returns a generator of secp256k1 key pairs. The
// public key is the 0x-prefixed compressed point.
func NewSecp256k1Generator() ports.KeyGenerator {
	return secp256k1Generator{}
}

func (secp256k1Generator) NewKeyPair() (ports.KeyPair, error) {
	prvkey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return keyPair{
		publicKey:  keyPrefix + hex.EncodeToString(prvkey.PubKey().SerializeCompressed()),
		privateKey: hex.EncodeToString(prvkey.Serialize()),
	}, nil
}
