package keypair

import (
	"errors"
)

var (
	// ErrKeyPairNotFound indica que o EC2 não conhece o par de chaves
	ErrKeyPairNotFound = errors.New("key pair not found")

	// ErrKeyNameRequired indica que nenhum nome foi informado
	ErrKeyNameRequired = errors.New("key name is required")
)

// KeyPair representa um par de chaves EC2 já registrado.
// O claves nunca cria nem altera pares de chaves; apenas os referencia.
type KeyPair struct {
	// KeyName é o nome do par de chaves
	KeyName string

	// KeyPairID é o ID do par de chaves na AWS
	KeyPairID string

	// KeyFingerprint é a impressão digital da chave
	KeyFingerprint string

	// KeyType é o tipo da chave (rsa, ed25519)
	KeyType string
}

// Validate valida a referência ao par de chaves
func (k *KeyPair) Validate() error {
	if k.KeyName == "" {
		return ErrKeyNameRequired
	}
	return nil
}
