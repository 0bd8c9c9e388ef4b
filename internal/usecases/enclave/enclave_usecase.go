package enclave

import (
	"context"
	"errors"
	"slices"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/varseand/claves/internal/domain/apperror"
	"github.com/varseand/claves/internal/domain/enclave"
	"github.com/varseand/claves/internal/ports"
	"github.com/varseand/claves/pkg/metrics"
	"github.com/varseand/claves/pkg/pattern"
)

// EnclaveUseCase implementa os casos de uso de enclaves de código
type EnclaveUseCase struct {
	stacks       ports.StackRepository
	keyPairs     ports.KeyPairUseCase
	repositories ports.RepositoryUseCase
}

// NewEnclaveUseCase cria uma nova instância do caso de uso.
// repositories pode apontar para outra região que stacks e keyPairs.
func NewEnclaveUseCase(stacks ports.StackRepository, keyPairs ports.KeyPairUseCase, repositories ports.RepositoryUseCase) *EnclaveUseCase {
	return &EnclaveUseCase{
		stacks:       stacks,
		keyPairs:     keyPairs,
		repositories: repositories,
	}
}

// Create valida o pedido, resolve par de chaves e repositório, escolhe o
// nome e inicia a criação da stack. Retorna a visão resumida do enclave
// recém-criado.
func (uc *EnclaveUseCase) Create(ctx context.Context, req *enclave.CreateRequest) ([]enclave.Enclave, error) {
	logger := log.FromContext(ctx)

	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	kp, err := uc.keyPairs.GetKeyPair(ctx, req.KeyName)
	if err != nil {
		return nil, err
	}

	repo, err := uc.repositories.GetRepository(ctx, req.Repository)
	if err != nil {
		return nil, err
	}

	existing, err := uc.list(ctx, enclave.Query{Verbose: true})
	if err != nil {
		return nil, err
	}

	if !req.Force && slices.ContainsFunc(existing, func(e enclave.Enclave) bool {
		return e.HasParameter(enclave.ParamRepositoryArn, repo.Arn)
	}) {
		return nil, apperror.New(apperror.CodeEnclaveExists,
			"Code enclave for repository %q already exists (use --force to create anyway).", repo.Name)
	}

	reserved := enclave.Names(existing)
	name := req.Name
	if name == "" {
		var ok bool
		name, ok = pattern.NextFreeNameLike(enclave.NamePrefix+repo.Name, reserved)
		if !ok {
			return nil, apperror.New(apperror.CodeNamespaceExhausted, "Too much code enclaves for repository %q", repo.Name)
		}
	} else if slices.Contains(reserved, name) {
		return nil, apperror.New(apperror.CodeNameTaken, "Code enclave with the name %q already exists.", name)
	}

	logger.V(1).Info("creating stack", "stack", name, "repository", repo.Name, "instanceType", req.InstanceType())

	err = uc.stacks.Create(ctx, &ports.StackInput{
		Name:         name,
		Repository:   repo,
		KeyPair:      kp,
		InstanceType: req.InstanceType(),
		Git:          req.Git,
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordEnclaves(metrics.OperationCreated, 1)

	// A stack recém-criada fica para trás se esta releitura falhar
	return uc.list(ctx, enclave.Query{Name: pattern.Literal(&name)})
}

// List lista os enclaves que passam pelos filtros da query.
// Lista vazia é reportada como apperror com código 0.
func (uc *EnclaveUseCase) List(ctx context.Context, query enclave.Query) ([]enclave.Enclave, error) {
	enclaves, err := uc.list(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(enclaves) == 0 {
		return nil, apperror.New(apperror.CodeNothingToDo, "No code enclaves to list.")
	}

	metrics.RecordEnclaves(metrics.OperationListed, len(enclaves))
	return enclaves, nil
}

// FindForDeletion resolve os enclaves que um delete afetaria. O filtro é
// verificado antes de consultar a AWS.
func (uc *EnclaveUseCase) FindForDeletion(ctx context.Context, filter ports.DeleteFilter) ([]enclave.Enclave, error) {
	if err := CheckDeleteFilter(filter); err != nil {
		return nil, err
	}

	enclaves, err := uc.list(ctx, enclave.Query{
		Name:       pattern.Wildcard(nonBlank(filter.Name)),
		Repository: pattern.Wildcard(nonBlank(filter.Repository)),
		Verbose:    filter.Verbose,
	})
	if err != nil {
		return nil, err
	}
	if len(enclaves) == 0 {
		return nil, apperror.New(apperror.CodeNothingToDo, "No code enclaves to delete.")
	}
	return enclaves, nil
}

// Delete inicia a deleção de cada enclave, na ordem recebida. Retorna
// quantas deleções foram iniciadas antes de um eventual erro.
func (uc *EnclaveUseCase) Delete(ctx context.Context, enclaves []enclave.Enclave) (int, error) {
	logger := log.FromContext(ctx)

	deleted := 0
	for _, e := range enclaves {
		logger.V(1).Info("deleting stack", "stack", e.StackName)
		if err := uc.stacks.Delete(ctx, e.StackName); err != nil {
			metrics.RecordEnclaves(metrics.OperationDeleted, deleted)
			return deleted, err
		}
		deleted++
	}

	metrics.RecordEnclaves(metrics.OperationDeleted, deleted)
	return deleted, nil
}

func (uc *EnclaveUseCase) list(ctx context.Context, query enclave.Query) ([]enclave.Enclave, error) {
	stacks, err := uc.stacks.List(ctx)
	if err != nil {
		return nil, err
	}

	enclaves := query.Pipeline().Apply(stacks)
	log.FromContext(ctx).V(1).Info("stacks filtered", "total", len(stacks), "enclaves", len(enclaves), "verbose", query.Verbose)
	return enclaves, nil
}

// ValidateRequest faz as validações locais do create, que não dependem da
// AWS, e converte a primeira falha no erro de aplicação correspondente.
func ValidateRequest(req *enclave.CreateRequest) error {
	err := req.Validate()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, enclave.ErrKeyNameRequired):
		return apperror.Wrap(err, apperror.CodeKeyPairRequired,
			"You must specify a key pair. You can also configure your key pair by exporting CLAVES_KEYPAIR.")
	case errors.Is(err, enclave.ErrRepositoryRequired):
		return apperror.Wrap(err, apperror.CodeRepositoryRequired, "You must specify a repository.")
	case errors.Is(err, enclave.ErrUnsupportedFamily):
		return apperror.Wrap(err, apperror.CodeUnsupportedFamily, "EC2 family %q is not supported.", req.InstanceFamily)
	case errors.Is(err, enclave.ErrUnsupportedSize):
		return apperror.Wrap(err, apperror.CodeUnsupportedSize, "EC2 size %q is not supported.", req.InstanceSize)
	}
	return err
}

// CheckDeleteFilter exige ao menos um filtro não vazio
func CheckDeleteFilter(filter ports.DeleteFilter) error {
	if isBlank(filter.Name) && isBlank(filter.Repository) {
		return apperror.New(apperror.CodeDeleteFilterRequired, "You must specify either --name or --repository.")
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

func nonBlank(s *string) *string {
	if isBlank(s) {
		return nil
	}
	return s
}
