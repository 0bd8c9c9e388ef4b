package ports

import (
	"context"
	"regexp"

	"github.com/varseand/claves/internal/domain/codecommit"
)

// CodeCommitRepository defines the interface for CodeCommit operations
type CodeCommitRepository interface {
	// List returns every repository in the region, in service order
	List(ctx context.Context) ([]codecommit.Repository, error)

	// Get returns codecommit.ErrRepositoryNotFound for unknown names
	Get(ctx context.Context, repositoryName string) (*codecommit.Repository, error)
}

// RepositoryUseCase defines the use case interface for repository lookups
type RepositoryUseCase interface {
	ListRepositories(ctx context.Context, namePattern *regexp.Regexp) ([]codecommit.Repository, error)
	GetRepository(ctx context.Context, repositoryName string) (*codecommit.Repository, error)
}
