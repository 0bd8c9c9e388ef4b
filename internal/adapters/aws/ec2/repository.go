package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/varseand/claves/pkg/metrics"
)

// ReferenceRegion é a região usada para consultar o catálogo global de regiões
const ReferenceRegion = "us-east-1"

// API é o subconjunto do cliente EC2 usado por este adaptador
type API interface {
	DescribeRegions(ctx context.Context, params *awsec2.DescribeRegionsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRegionsOutput, error)
}

// Repository implementa o catálogo de regiões usando AWS SDK
type Repository struct {
	client API
}

// NewRepository cria o repositório fixando a região de referência
func NewRepository(cfg aws.Config) *Repository {
	cfg = cfg.Copy()
	cfg.Region = ReferenceRegion
	return &Repository{client: awsec2.NewFromConfig(cfg)}
}

// NewRepositoryWithClient cria o repositório sobre um cliente já construído
func NewRepositoryWithClient(client API) *Repository {
	return &Repository{client: client}
}

// ListRegions retorna os nomes das regiões habilitadas para a conta
func (r *Repository) ListRegions(ctx context.Context) ([]string, error) {
	recorder := metrics.NewAWSAPIMetricsRecorder(metrics.ServiceEC2, "DescribeRegions")
	output, err := r.client.DescribeRegions(ctx, &awsec2.DescribeRegionsInput{})
	recorder.Observe(err)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regiões: %w", err)
	}

	regions := make([]string, 0, len(output.Regions))
	for _, region := range output.Regions {
		regions = append(regions, aws.ToString(region.RegionName))
	}
	return regions, nil
}
