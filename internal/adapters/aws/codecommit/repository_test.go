package codecommit

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscodecommit "github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/codecommit/types"

	"github.com/varseand/claves/internal/domain/codecommit"
)

type fakeAPI struct {
	pages    []*awscodecommit.ListRepositoriesOutput
	metadata map[string]*types.RepositoryMetadata
	getErr   error
}

func (f *fakeAPI) ListRepositories(_ context.Context, _ *awscodecommit.ListRepositoriesInput, _ ...func(*awscodecommit.Options)) (*awscodecommit.ListRepositoriesOutput, error) {
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeAPI) GetRepository(_ context.Context, params *awscodecommit.GetRepositoryInput, _ ...func(*awscodecommit.Options)) (*awscodecommit.GetRepositoryOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	m, ok := f.metadata[aws.ToString(params.RepositoryName)]
	if !ok {
		return nil, &types.RepositoryDoesNotExistException{Message: aws.String("not found")}
	}
	return &awscodecommit.GetRepositoryOutput{RepositoryMetadata: m}, nil
}

func pair(name, id string) types.RepositoryNameIdPair {
	return types.RepositoryNameIdPair{RepositoryName: aws.String(name), RepositoryId: aws.String(id)}
}

func TestRepository_List(t *testing.T) {
	api := &fakeAPI{
		pages: []*awscodecommit.ListRepositoriesOutput{
			{Repositories: []types.RepositoryNameIdPair{pair("zeta", "1"), pair("alpha", "2")}, NextToken: aws.String("n")},
			{Repositories: []types.RepositoryNameIdPair{pair("mid", "3")}},
		},
	}

	repos, err := NewRepositoryWithClient(api).List(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if len(repos) != len(want) {
		t.Fatalf("Expected %d repositories, got %d", len(want), len(repos))
	}
	for i, name := range want {
		if repos[i].Name != name {
			t.Errorf("Expected repositories[%d] = %s, got %s", i, name, repos[i].Name)
		}
	}
	if repos[2].ID != "3" {
		t.Errorf("Expected ID 3, got %s", repos[2].ID)
	}
}

func TestRepository_Get(t *testing.T) {
	api := &fakeAPI{
		metadata: map[string]*types.RepositoryMetadata{
			"RepoX": {
				RepositoryName: aws.String("RepoX"),
				RepositoryId:   aws.String("id-x"),
				Arn:            aws.String("arn:aws:codecommit:eu-west-1:1:RepoX"),
				CloneUrlHttp:   aws.String("https://git/RepoX"),
				CloneUrlSsh:    aws.String("ssh://git/RepoX"),
				DefaultBranch:  aws.String("main"),
			},
		},
	}
	repo := NewRepositoryWithClient(api)

	t.Run("found", func(t *testing.T) {
		got, err := repo.Get(context.Background(), "RepoX")
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if got.Arn != "arn:aws:codecommit:eu-west-1:1:RepoX" || got.CloneURLHTTP != "https://git/RepoX" {
			t.Errorf("Unexpected repository: %+v", got)
		}
		if !got.IsCloneable() {
			t.Error("Expected repository to be cloneable")
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.Get(context.Background(), "missing")
		if !errors.Is(err, codecommit.ErrRepositoryNotFound) {
			t.Errorf("Expected ErrRepositoryNotFound, got: %v", err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		boom := errors.New("AccessDenied")
		_, err := NewRepositoryWithClient(&fakeAPI{getErr: boom}).Get(context.Background(), "RepoX")
		if !errors.Is(err, boom) || errors.Is(err, codecommit.ErrRepositoryNotFound) {
			t.Errorf("Expected wrapped provider error, got: %v", err)
		}
	})
}
