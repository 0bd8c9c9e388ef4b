package ports

import (
	"context"

	"github.com/varseand/claves/internal/domain/keypair"
)

// KeyPairRepository define a interface de consulta a pares de chaves EC2
type KeyPairRepository interface {
	// Get recupera um par de chaves pelo nome.
	// Retorna keypair.ErrKeyPairNotFound quando ele não existe.
	Get(ctx context.Context, keyName string) (*keypair.KeyPair, error)
}

// KeyPairUseCase define a consulta de pares de chaves com erros de aplicação
type KeyPairUseCase interface {
	GetKeyPair(ctx context.Context, keyName string) (*keypair.KeyPair, error)
}
