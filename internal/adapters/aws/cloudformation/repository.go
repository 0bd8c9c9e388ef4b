package cloudformation

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfn "github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/varseand/claves/internal/domain/enclave"
	"github.com/varseand/claves/internal/ports"
	"github.com/varseand/claves/pkg/metrics"
)

// TemplateBody é o template de provisionamento do enclave, enviado sem alterações
//
//go:embed templates/enclave.yaml
var TemplateBody string

// API é o subconjunto do cliente CloudFormation usado por este adaptador
type API interface {
	awscfn.DescribeStacksAPIClient
	CreateStack(ctx context.Context, params *awscfn.CreateStackInput, optFns ...func(*awscfn.Options)) (*awscfn.CreateStackOutput, error)
	DeleteStack(ctx context.Context, params *awscfn.DeleteStackInput, optFns ...func(*awscfn.Options)) (*awscfn.DeleteStackOutput, error)
}

// Repository implementa o StackRepository usando AWS SDK
type Repository struct {
	client API
}

// NewRepository cria uma nova instância do repositório
func NewRepository(awsConfig aws.Config) ports.StackRepository {
	return &Repository{client: awscfn.NewFromConfig(awsConfig)}
}

// NewRepositoryWithClient cria o repositório sobre um cliente já construído
func NewRepositoryWithClient(client API) *Repository {
	return &Repository{client: client}
}

// List retorna todas as stacks da região, percorrendo todas as páginas
func (r *Repository) List(ctx context.Context) ([]enclave.Stack, error) {
	var stacks []enclave.Stack

	paginator := awscfn.NewDescribeStacksPaginator(r.client, &awscfn.DescribeStacksInput{})
	for paginator.HasMorePages() {
		recorder := metrics.NewAWSAPIMetricsRecorder(metrics.ServiceCloudFormation, "DescribeStacks")
		page, err := paginator.NextPage(ctx)
		recorder.Observe(err)
		if err != nil {
			return nil, fmt.Errorf("falha ao listar stacks: %w", err)
		}

		for i := range page.Stacks {
			stacks = append(stacks, mapToStack(&page.Stacks[i]))
		}
	}

	return stacks, nil
}

// Create inicia a criação da stack do enclave. Não espera a conclusão.
func (r *Repository) Create(ctx context.Context, input *ports.StackInput) error {
	if input.Repository == nil || input.KeyPair == nil {
		return fmt.Errorf("stack %s: repositório e par de chaves são obrigatórios", input.Name)
	}

	recorder := metrics.NewAWSAPIMetricsRecorder(metrics.ServiceCloudFormation, "CreateStack")
	_, err := r.client.CreateStack(ctx, buildCreateStackInput(input))
	recorder.Observe(err)
	if err != nil {
		return fmt.Errorf("falha ao criar stack %s: %w", input.Name, err)
	}
	return nil
}

// Delete inicia a deleção da stack. Não espera a conclusão.
func (r *Repository) Delete(ctx context.Context, stackName string) error {
	recorder := metrics.NewAWSAPIMetricsRecorder(metrics.ServiceCloudFormation, "DeleteStack")
	_, err := r.client.DeleteStack(ctx, &awscfn.DeleteStackInput{
		StackName: aws.String(stackName),
	})
	recorder.Observe(err)
	if err != nil {
		return fmt.Errorf("falha ao deletar stack %s: %w", stackName, err)
	}
	return nil
}

func buildCreateStackInput(input *ports.StackInput) *awscfn.CreateStackInput {
	repo := input.Repository

	parameters := []types.Parameter{
		parameter(enclave.ParamRepositoryName, repo.Name),
		parameter(enclave.ParamRepositoryArn, repo.Arn),
		parameter(enclave.ParamRepositoryURL, repo.CloneURLHTTP),
		parameter(enclave.ParamKeyName, input.KeyPair.KeyName),
		parameter(enclave.ParamInstanceType, input.InstanceType),
		parameter(enclave.ParamGitUsername, input.Git.Name),
		parameter(enclave.ParamGitEmail, input.Git.Email),
	}

	return &awscfn.CreateStackInput{
		StackName:    aws.String(input.Name),
		TemplateBody: aws.String(TemplateBody),
		Parameters:   parameters,
		Capabilities: []types.Capability{types.CapabilityCapabilityIam},
		Tags: []types.Tag{
			{Key: aws.String(enclave.TagRepository), Value: aws.String(repo.Name)},
			{Key: aws.String(enclave.TagCreatedBy), Value: aws.String(enclave.CreatedByValue)},
		},
	}
}

func parameter(key, value string) types.Parameter {
	return types.Parameter{
		ParameterKey:   aws.String(key),
		ParameterValue: aws.String(value),
	}
}

func mapToStack(s *types.Stack) enclave.Stack {
	stack := enclave.Stack{
		StackID:                     aws.ToString(s.StackId),
		StackName:                   aws.ToString(s.StackName),
		ChangeSetID:                 aws.ToString(s.ChangeSetId),
		Description:                 aws.ToString(s.Description),
		StackStatus:                 string(s.StackStatus),
		StackStatusReason:           aws.ToString(s.StackStatusReason),
		CreationTime:                s.CreationTime,
		LastUpdatedTime:             s.LastUpdatedTime,
		DeletionTime:                s.DeletionTime,
		NotificationARNs:            s.NotificationARNs,
		DisableRollback:             s.DisableRollback,
		TimeoutInMinutes:            s.TimeoutInMinutes,
		RoleARN:                     aws.ToString(s.RoleARN),
		EnableTerminationProtection: s.EnableTerminationProtection,
		ParentID:                    aws.ToString(s.ParentId),
		RootID:                      aws.ToString(s.RootId),
	}

	for _, c := range s.Capabilities {
		stack.Capabilities = append(stack.Capabilities, string(c))
	}

	for _, p := range s.Parameters {
		stack.Parameters = append(stack.Parameters, enclave.Parameter{
			ParameterKey:   aws.ToString(p.ParameterKey),
			ParameterValue: aws.ToString(p.ParameterValue),
		})
	}

	for _, o := range s.Outputs {
		stack.Outputs = append(stack.Outputs, enclave.Output{
			OutputKey:   aws.ToString(o.OutputKey),
			OutputValue: aws.ToString(o.OutputValue),
			Description: aws.ToString(o.Description),
			ExportName:  aws.ToString(o.ExportName),
		})
	}

	for _, t := range s.Tags {
		stack.Tags = append(stack.Tags, enclave.Tag{
			Key:   aws.ToString(t.Key),
			Value: aws.ToString(t.Value),
		})
	}

	if s.RollbackConfiguration != nil {
		rc := &enclave.RollbackConfiguration{
			MonitoringTimeInMinutes: s.RollbackConfiguration.MonitoringTimeInMinutes,
		}
		for _, trigger := range s.RollbackConfiguration.RollbackTriggers {
			rc.RollbackTriggers = append(rc.RollbackTriggers, aws.ToString(trigger.Arn))
		}
		stack.RollbackConfiguration = rc
	}

	if s.DriftInformation != nil {
		stack.DriftInformation = &enclave.DriftInformation{
			StackDriftStatus:   string(s.DriftInformation.StackDriftStatus),
			LastCheckTimestamp: s.DriftInformation.LastCheckTimestamp,
		}
	}

	return stack
}
