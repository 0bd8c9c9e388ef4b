package codecommit

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscodecommit "github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/codecommit/types"

	"github.com/varseand/claves/internal/domain/codecommit"
	"github.com/varseand/claves/internal/ports"
	"github.com/varseand/claves/pkg/metrics"
)

// API é o subconjunto do cliente CodeCommit usado por este adaptador
type API interface {
	awscodecommit.ListRepositoriesAPIClient
	GetRepository(ctx context.Context, params *awscodecommit.GetRepositoryInput, optFns ...func(*awscodecommit.Options)) (*awscodecommit.GetRepositoryOutput, error)
}

type Repository struct {
	client API
}

func NewRepository(awsConfig aws.Config) ports.CodeCommitRepository {
	return &Repository{client: awscodecommit.NewFromConfig(awsConfig)}
}

// NewRepositoryWithClient cria o repositório sobre um cliente já construído
func NewRepositoryWithClient(client API) *Repository {
	return &Repository{client: client}
}

// List percorre todas as páginas de ListRepositories
func (r *Repository) List(ctx context.Context) ([]codecommit.Repository, error) {
	var repositories []codecommit.Repository

	paginator := awscodecommit.NewListRepositoriesPaginator(r.client, &awscodecommit.ListRepositoriesInput{})
	for paginator.HasMorePages() {
		recorder := metrics.NewAWSAPIMetricsRecorder(metrics.ServiceCodeCommit, "ListRepositories")
		page, err := paginator.NextPage(ctx)
		recorder.Observe(err)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}

		for _, pair := range page.Repositories {
			repositories = append(repositories, codecommit.Repository{
				Name: aws.ToString(pair.RepositoryName),
				ID:   aws.ToString(pair.RepositoryId),
			})
		}
	}

	return repositories, nil
}

func (r *Repository) Get(ctx context.Context, repositoryName string) (*codecommit.Repository, error) {
	recorder := metrics.NewAWSAPIMetricsRecorder(metrics.ServiceCodeCommit, "GetRepository")
	output, err := r.client.GetRepository(ctx, &awscodecommit.GetRepositoryInput{
		RepositoryName: aws.String(repositoryName),
	})
	recorder.Observe(err)
	if err != nil {
		var notFoundErr *types.RepositoryDoesNotExistException
		if errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("%w: %s", codecommit.ErrRepositoryNotFound, repositoryName)
		}
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}

	if output.RepositoryMetadata == nil {
		return nil, fmt.Errorf("%w: %s", codecommit.ErrRepositoryNotFound, repositoryName)
	}

	return mapToRepository(output.RepositoryMetadata), nil
}

func mapToRepository(m *types.RepositoryMetadata) *codecommit.Repository {
	return &codecommit.Repository{
		Name:             aws.ToString(m.RepositoryName),
		ID:               aws.ToString(m.RepositoryId),
		Arn:              aws.ToString(m.Arn),
		AccountID:        aws.ToString(m.AccountId),
		CloneURLHTTP:     aws.ToString(m.CloneUrlHttp),
		CloneURLSSH:      aws.ToString(m.CloneUrlSsh),
		Description:      aws.ToString(m.RepositoryDescription),
		DefaultBranch:    aws.ToString(m.DefaultBranch),
		CreationDate:     m.CreationDate,
		LastModifiedDate: m.LastModifiedDate,
	}
}
