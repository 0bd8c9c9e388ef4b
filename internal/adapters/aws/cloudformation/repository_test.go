package cloudformation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfn "github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/varseand/claves/internal/domain/codecommit"
	"github.com/varseand/claves/internal/domain/enclave"
	"github.com/varseand/claves/internal/domain/keypair"
	"github.com/varseand/claves/internal/ports"
)

type fakeAPI struct {
	pages     []*awscfn.DescribeStacksOutput
	tokens    []*string
	created   *awscfn.CreateStackInput
	deleted   []string
	createErr error
	deleteErr error
}

func (f *fakeAPI) DescribeStacks(_ context.Context, params *awscfn.DescribeStacksInput, _ ...func(*awscfn.Options)) (*awscfn.DescribeStacksOutput, error) {
	f.tokens = append(f.tokens, params.NextToken)
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeAPI) CreateStack(_ context.Context, params *awscfn.CreateStackInput, _ ...func(*awscfn.Options)) (*awscfn.CreateStackOutput, error) {
	f.created = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &awscfn.CreateStackOutput{StackId: aws.String("arn:stack/" + aws.ToString(params.StackName))}, nil
}

func (f *fakeAPI) DeleteStack(_ context.Context, params *awscfn.DeleteStackInput, _ ...func(*awscfn.Options)) (*awscfn.DeleteStackOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, aws.ToString(params.StackName))
	return &awscfn.DeleteStackOutput{}, nil
}

func TestRepository_ListFollowsPages(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	api := &fakeAPI{
		pages: []*awscfn.DescribeStacksOutput{
			{
				Stacks: []types.Stack{{
					StackId:      aws.String("arn:aws:cloudformation:eu-west-1:1:stack/CodeEnclaveForRepoX/1"),
					StackName:    aws.String("CodeEnclaveForRepoX"),
					StackStatus:  types.StackStatusCreateComplete,
					CreationTime: &created,
					Capabilities: []types.Capability{types.CapabilityCapabilityIam},
					Description:  aws.String("enclave"),
					Parameters: []types.Parameter{
						{ParameterKey: aws.String("RepositoryUrl"), ParameterValue: aws.String("https://git/RepoX")},
					},
					Outputs: []types.Output{
						{OutputKey: aws.String("PublicDNS"), OutputValue: aws.String("ec2.example"), Description: aws.String("dns")},
					},
					Tags: []types.Tag{
						{Key: aws.String("CreatedBy"), Value: aws.String("Claves")},
					},
					DriftInformation: &types.StackDriftInformation{StackDriftStatus: types.StackDriftStatusNotChecked},
					RollbackConfiguration: &types.RollbackConfiguration{
						RollbackTriggers: []types.RollbackTrigger{{Arn: aws.String("arn:alarm"), Type: aws.String("AWS::CloudWatch::Alarm")}},
					},
				}},
				NextToken: aws.String("page-2"),
			},
			{
				Stacks: []types.Stack{{StackName: aws.String("other")}},
			},
		},
	}

	stacks, err := NewRepositoryWithClient(api).List(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(stacks) != 2 {
		t.Fatalf("Expected 2 stacks, got %d", len(stacks))
	}
	if len(api.tokens) != 2 || aws.ToString(api.tokens[1]) != "page-2" {
		t.Errorf("Expected second call with token page-2, got %v", api.tokens)
	}

	s := stacks[0]
	if s.StackName != "CodeEnclaveForRepoX" || s.StackStatus != "CREATE_COMPLETE" {
		t.Errorf("Unexpected stack: %+v", s)
	}
	if !s.HasTag(enclave.TagCreatedBy, enclave.CreatedByValue) {
		t.Error("Expected CreatedBy tag to be mapped")
	}
	if url, ok := s.Parameter(enclave.ParamRepositoryURL); !ok || url != "https://git/RepoX" {
		t.Errorf("Expected RepositoryUrl parameter, got %q", url)
	}
	if len(s.Outputs) != 1 || s.Outputs[0].Description != "dns" {
		t.Errorf("Expected output with description, got %+v", s.Outputs)
	}
	if s.DriftInformation == nil || s.DriftInformation.StackDriftStatus != "NOT_CHECKED" {
		t.Errorf("Expected drift information, got %+v", s.DriftInformation)
	}
	if s.RollbackConfiguration == nil || s.RollbackConfiguration.RollbackTriggers[0] != "arn:alarm" {
		t.Errorf("Expected rollback trigger, got %+v", s.RollbackConfiguration)
	}
	if len(s.Capabilities) != 1 || s.Capabilities[0] != enclave.CapabilityIAM {
		t.Errorf("Expected CAPABILITY_IAM, got %v", s.Capabilities)
	}
}

func TestRepository_Create(t *testing.T) {
	api := &fakeAPI{}
	input := &ports.StackInput{
		Name: "CodeEnclaveForRepoX",
		Repository: &codecommit.Repository{
			Name:         "RepoX",
			Arn:          "arn:aws:codecommit:eu-west-1:1:RepoX",
			CloneURLHTTP: "https://git-codecommit.eu-west-1.amazonaws.com/v1/repos/RepoX",
		},
		KeyPair:      &keypair.KeyPair{KeyName: "dev"},
		InstanceType: "t3.nano",
		Git:          enclave.GitIdentity{Name: "Ada", Email: "ada@example.com"},
	}

	if err := NewRepositoryWithClient(api).Create(context.Background(), input); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	got := api.created
	if aws.ToString(got.StackName) != "CodeEnclaveForRepoX" {
		t.Errorf("Expected stack name CodeEnclaveForRepoX, got %s", aws.ToString(got.StackName))
	}
	if aws.ToString(got.TemplateBody) != TemplateBody {
		t.Error("Expected embedded template to be sent unchanged")
	}
	if len(got.Capabilities) != 1 || got.Capabilities[0] != types.CapabilityCapabilityIam {
		t.Errorf("Expected CAPABILITY_IAM, got %v", got.Capabilities)
	}

	want := map[string]string{
		"RepositoryName": "RepoX",
		"RepositoryArn":  "arn:aws:codecommit:eu-west-1:1:RepoX",
		"RepositoryUrl":  "https://git-codecommit.eu-west-1.amazonaws.com/v1/repos/RepoX",
		"KeyName":        "dev",
		"InstanceType":   "t3.nano",
		"GitUsername":    "Ada",
		"GitEmail":       "ada@example.com",
	}
	if len(got.Parameters) != len(want) {
		t.Fatalf("Expected %d parameters, got %d", len(want), len(got.Parameters))
	}
	for _, p := range got.Parameters {
		key := aws.ToString(p.ParameterKey)
		if want[key] != aws.ToString(p.ParameterValue) {
			t.Errorf("Parameter %s: expected %q, got %q", key, want[key], aws.ToString(p.ParameterValue))
		}
	}

	tags := map[string]string{}
	for _, tag := range got.Tags {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	if tags["Repository"] != "RepoX" || tags["CreatedBy"] != "Claves" || len(tags) != 2 {
		t.Errorf("Unexpected tags: %v", tags)
	}
}

func TestRepository_CreateWrapsError(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("AlreadyExistsException")}
	input := &ports.StackInput{
		Name:       "x",
		Repository: &codecommit.Repository{Name: "RepoX"},
		KeyPair:    &keypair.KeyPair{KeyName: "dev"},
	}

	err := NewRepositoryWithClient(api).Create(context.Background(), input)
	if !errors.Is(err, api.createErr) {
		t.Errorf("Expected wrapped provider error, got: %v", err)
	}
}

func TestRepository_Delete(t *testing.T) {
	api := &fakeAPI{}
	repo := NewRepositoryWithClient(api)

	if err := repo.Delete(context.Background(), "CodeEnclaveForRepoX"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != "CodeEnclaveForRepoX" {
		t.Errorf("Expected exact stack name to be deleted, got %v", api.deleted)
	}
}

func TestTemplateBody(t *testing.T) {
	for _, key := range []string{
		"RepositoryName:", "RepositoryArn:", "RepositoryUrl:", "KeyName:",
		"InstanceType:", "GitUsername:", "GitEmail:", "PublicDNS:",
	} {
		if !strings.Contains(TemplateBody, key) {
			t.Errorf("Expected template to declare %s", key)
		}
	}
}
