package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/varseand/claves/internal/domain/apperror"
	"github.com/varseand/claves/internal/domain/codecommit"
	"github.com/varseand/claves/internal/ports"
	"github.com/varseand/claves/pkg/pattern"
)

// RepositoryUseCase implementa as consultas de repositórios CodeCommit
type RepositoryUseCase struct {
	repo ports.CodeCommitRepository
}

// NewRepositoryUseCase cria uma nova instância do caso de uso
func NewRepositoryUseCase(repo ports.CodeCommitRepository) *RepositoryUseCase {
	return &RepositoryUseCase{repo: repo}
}

// ListRepositories lista os repositórios cujo nome casa por inteiro com
// namePattern, na ordem devolvida pelo serviço. Lista vazia é reportada
// como apperror com código 0.
func (uc *RepositoryUseCase) ListRepositories(ctx context.Context, namePattern *regexp.Regexp) ([]codecommit.Repository, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	repositories := make([]codecommit.Repository, 0, len(all))
	for _, r := range all {
		if pattern.Matches(namePattern, r.Name) {
			repositories = append(repositories, r)
		}
	}

	log.FromContext(ctx).V(1).Info("repositories listed", "total", len(all), "matched", len(repositories))

	if len(repositories) == 0 {
		return nil, apperror.New(apperror.CodeNothingToDo, "No repositories to list.")
	}
	return repositories, nil
}

// GetRepository recupera os metadados completos de um repositório
func (uc *RepositoryUseCase) GetRepository(ctx context.Context, repositoryName string) (*codecommit.Repository, error) {
	ref := &codecommit.Repository{Name: repositoryName}
	if err := ref.Validate(); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeRepositoryRequired, "You must specify a repository.")
	}

	r, err := uc.repo.Get(ctx, repositoryName)
	if errors.Is(err, codecommit.ErrRepositoryNotFound) {
		return nil, apperror.Wrap(err, apperror.CodeRepositoryNotFound, "Repository %q does not exist.", repositoryName)
	}
	if err != nil {
		return nil, err
	}

	// o template precisa do ARN para a role e da URL HTTP para o clone
	if !r.IsCloneable() {
		return nil, fmt.Errorf("repository %q has no ARN or HTTP clone URL", repositoryName)
	}
	return r, nil
}
