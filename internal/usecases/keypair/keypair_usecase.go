package keypair

import (
	"context"
	"errors"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/varseand/claves/internal/domain/apperror"
	"github.com/varseand/claves/internal/domain/keypair"
	"github.com/varseand/claves/internal/ports"
)

// KeyPairUseCase implementa a consulta de pares de chaves usada pelo create
type KeyPairUseCase struct {
	repo ports.KeyPairRepository
}

// NewKeyPairUseCase cria uma nova instância do caso de uso
func NewKeyPairUseCase(repo ports.KeyPairRepository) *KeyPairUseCase {
	return &KeyPairUseCase{repo: repo}
}

// GetKeyPair busca o par de chaves pelo nome exato.
// Par inexistente vira apperror com código CodeKeyPairNotFound.
func (uc *KeyPairUseCase) GetKeyPair(ctx context.Context, keyName string) (*keypair.KeyPair, error) {
	ref := &keypair.KeyPair{KeyName: keyName}
	if err := ref.Validate(); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeKeyPairRequired,
			"You must specify a key pair. You can also configure your key pair by exporting CLAVES_KEYPAIR.")
	}

	kp, err := uc.repo.Get(ctx, keyName)
	if errors.Is(err, keypair.ErrKeyPairNotFound) {
		return nil, apperror.Wrap(err, apperror.CodeKeyPairNotFound, "The key pair %q does not exist.", keyName)
	}
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).V(1).Info("key pair resolved", "keyName", kp.KeyName, "keyPairId", kp.KeyPairID)
	return kp, nil
}
