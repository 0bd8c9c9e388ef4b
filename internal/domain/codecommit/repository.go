package codecommit

import (
	"errors"
	"time"
)

var (
	// ErrRepositoryNotFound indica que o CodeCommit não possui o repositório
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrRepositoryNameRequired indica que nenhum nome foi informado
	ErrRepositoryNameRequired = errors.New("repository name cannot be empty")
)

// Repository represents a CodeCommit repository in the domain model.
// Listing only fills Name and ID; Get fills the whole metadata.
type Repository struct {
	// Identification
	Name      string `yaml:"repositoryName"`
	ID        string `yaml:"repositoryId,omitempty"`
	Arn       string `yaml:"Arn,omitempty"`
	AccountID string `yaml:"accountId,omitempty"`

	// Clone endpoints
	CloneURLHTTP string `yaml:"cloneUrlHttp,omitempty"`
	CloneURLSSH  string `yaml:"cloneUrlSsh,omitempty"`

	// Metadata
	Description   string `yaml:"repositoryDescription,omitempty"`
	DefaultBranch string `yaml:"defaultBranch,omitempty"`

	// State
	CreationDate     *time.Time `yaml:"creationDate,omitempty"`
	LastModifiedDate *time.Time `yaml:"lastModifiedDate,omitempty"`
}

// Validate checks that the repository can be referenced by an enclave
func (r *Repository) Validate() error {
	if r.Name == "" {
		return ErrRepositoryNameRequired
	}
	return nil
}

// IsCloneable reports whether the metadata carries what an enclave needs
func (r *Repository) IsCloneable() bool {
	return r.Arn != "" && r.CloneURLHTTP != ""
}
