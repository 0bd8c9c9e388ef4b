package ports

import (
	"context"

	"github.com/varseand/claves/internal/domain/codecommit"
	"github.com/varseand/claves/internal/domain/enclave"
	"github.com/varseand/claves/internal/domain/keypair"
)

// StackInput reúne tudo o que é enviado ao criar a stack de um enclave
type StackInput struct {
	Name         string
	Repository   *codecommit.Repository
	KeyPair      *keypair.KeyPair
	InstanceType string
	Git          enclave.GitIdentity
}

// StackRepository define a interface para operações de stack do CloudFormation
type StackRepository interface {
	// List retorna todas as stacks da região, sem filtro
	List(ctx context.Context) ([]enclave.Stack, error)

	// Create inicia a criação da stack e não espera sua conclusão
	Create(ctx context.Context, input *StackInput) error

	// Delete inicia a deleção da stack pelo nome exato
	Delete(ctx context.Context, stackName string) error
}

// EnclaveUseCase define os casos de uso de enclaves
type EnclaveUseCase interface {
	Create(ctx context.Context, req *enclave.CreateRequest) ([]enclave.Enclave, error)
	List(ctx context.Context, query enclave.Query) ([]enclave.Enclave, error)
	FindForDeletion(ctx context.Context, filter DeleteFilter) ([]enclave.Enclave, error)
	Delete(ctx context.Context, enclaves []enclave.Enclave) (int, error)
}

// DeleteFilter são os filtros curinga aceitos pelo comando delete
type DeleteFilter struct {
	Name       *string
	Repository *string
	Verbose    bool
}
