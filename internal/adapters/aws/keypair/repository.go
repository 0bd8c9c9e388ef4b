package keypair

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"

	"github.com/varseand/claves/internal/domain/keypair"
	"github.com/varseand/claves/pkg/metrics"
)

// ErrCodeNotFound é o código devolvido pelo EC2 para pares de chaves inexistentes
const ErrCodeNotFound = "InvalidKeyPair.NotFound"

// API é o subconjunto do cliente EC2 usado por este adaptador
type API interface {
	DescribeKeyPairs(ctx context.Context, params *awsec2.DescribeKeyPairsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeKeyPairsOutput, error)
}

// Repository implementa o repositório de par de chaves usando AWS SDK
type Repository struct {
	client API
}

// NewRepository cria uma nova instância do repositório
func NewRepository(cfg aws.Config) *Repository {
	return &Repository{client: awsec2.NewFromConfig(cfg)}
}

// NewRepositoryWithClient cria o repositório sobre um cliente já construído
func NewRepositoryWithClient(client API) *Repository {
	return &Repository{client: client}
}

// Get recupera um par de chaves pelo nome
func (r *Repository) Get(ctx context.Context, keyName string) (*keypair.KeyPair, error) {
	recorder := metrics.NewAWSAPIMetricsRecorder(metrics.ServiceEC2, "DescribeKeyPairs")
	output, err := r.client.DescribeKeyPairs(ctx, &awsec2.DescribeKeyPairsInput{
		KeyNames: []string{keyName},
	})
	recorder.Observe(err)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == ErrCodeNotFound {
			return nil, fmt.Errorf("%w: %s", keypair.ErrKeyPairNotFound, keyName)
		}
		return nil, fmt.Errorf("falha ao consultar par de chaves: %w", err)
	}
	if len(output.KeyPairs) == 0 {
		return nil, fmt.Errorf("%w: %s", keypair.ErrKeyPairNotFound, keyName)
	}

	kp := output.KeyPairs[0]
	return &keypair.KeyPair{
		KeyName:        aws.ToString(kp.KeyName),
		KeyPairID:      aws.ToString(kp.KeyPairId),
		KeyFingerprint: aws.ToString(kp.KeyFingerprint),
		KeyType:        string(kp.KeyType),
	}, nil
}
