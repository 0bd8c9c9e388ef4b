package clients

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	awscfn "github.com/varseand/claves/internal/adapters/aws/cloudformation"
	awscodecommit "github.com/varseand/claves/internal/adapters/aws/codecommit"
	awsec2 "github.com/varseand/claves/internal/adapters/aws/ec2"
	awskeypair "github.com/varseand/claves/internal/adapters/aws/keypair"
	"github.com/varseand/claves/internal/ports"
	enclaveuc "github.com/varseand/claves/internal/usecases/enclave"
	kpuc "github.com/varseand/claves/internal/usecases/keypair"
	repouc "github.com/varseand/claves/internal/usecases/repository"
)

// AWSConfig holds the settings used to build an aws.Config
type AWSConfig struct {
	Endpoint        string // LocalStack
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Profile         string
}

// NewAWSConfigFromEnv reads the AWS settings that are not handled by the
// SDK default chain. The region is left to the chain on purpose.
func NewAWSConfigFromEnv() AWSConfig {
	return AWSConfig{
		Endpoint:        os.Getenv("AWS_ENDPOINT_URL"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Profile:         os.Getenv("AWS_PROFILE"),
	}
}

// GetAWSConfig loads an aws.Config for region. An empty region falls back to
// the SDK default chain; when that yields nothing an *aws.MissingRegionError
// is returned.
func (c AWSConfig) GetAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		// Chamadas que falham não são repetidas
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}

	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		))
	} else if c.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(c.Profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Region == "" {
		return aws.Config{}, fmt.Errorf("failed to resolve region: %w", &aws.MissingRegionError{})
	}

	if c.Endpoint != "" {
		cfg.BaseEndpoint = aws.String(c.Endpoint)
	}

	return cfg, nil
}

// ConfigLoader builds the aws.Config of one region
type ConfigLoader func(ctx context.Context, region string) (aws.Config, error)

// Handle bundles the use cases bound to the resolved regions of one run
type Handle struct {
	Enclaves     ports.EnclaveUseCase
	Repositories ports.RepositoryUseCase
}

// Factory creates region-scoped clients
type Factory interface {
	// Regions returns the catalog used to validate region flags
	Regions(ctx context.Context) (ports.RegionCatalog, error)

	// ForRegion wires enclaves to instanceRegion and repository lookups to
	// repositoryRegion. Empty regions use the SDK default.
	ForRegion(ctx context.Context, instanceRegion, repositoryRegion string) (*Handle, error)
}

// AWSClientFactory creates AWS SDK clients, one aws.Config per region
type AWSClientFactory struct {
	load ConfigLoader
}

// NewAWSClientFactory creates a new factory
func NewAWSClientFactory(load ConfigLoader) *AWSClientFactory {
	return &AWSClientFactory{load: load}
}

// Regions returns a region catalog pinned to the reference region
func (f *AWSClientFactory) Regions(ctx context.Context) (ports.RegionCatalog, error) {
	cfg, err := f.load(ctx, awsec2.ReferenceRegion)
	if err != nil {
		return nil, err
	}
	return awsec2.NewRepository(cfg), nil
}

// ForRegion builds the adapters and use cases for one invocation
func (f *AWSClientFactory) ForRegion(ctx context.Context, instanceRegion, repositoryRegion string) (*Handle, error) {
	instanceCfg, err := f.load(ctx, instanceRegion)
	if err != nil {
		return nil, err
	}

	repositoryCfg, err := f.load(ctx, repositoryRegion)
	if err != nil {
		return nil, err
	}

	repositories := repouc.NewRepositoryUseCase(awscodecommit.NewRepository(repositoryCfg))
	enclaves := enclaveuc.NewEnclaveUseCase(
		awscfn.NewRepository(instanceCfg),
		kpuc.NewKeyPairUseCase(awskeypair.NewRepository(instanceCfg)),
		repositories,
	)

	return &Handle{
		Enclaves:     enclaves,
		Repositories: repositories,
	}, nil
}
