// Package enclave modela os enclaves de código e o pipeline que separa,
// filtra e resume as stacks do CloudFormation que os representam.
package enclave

import (
	"time"
)

// Marcadores fixos gravados em toda stack criada pelo claves
const (
	TagCreatedBy   = "CreatedBy"
	TagRepository  = "Repository"
	CreatedByValue = "Claves"

	ParamRepositoryName = "RepositoryName"
	ParamRepositoryArn  = "RepositoryArn"
	ParamRepositoryURL  = "RepositoryUrl"
	ParamKeyName        = "KeyName"
	ParamInstanceType   = "InstanceType"
	ParamGitUsername    = "GitUsername"
	ParamGitEmail       = "GitEmail"

	OutputPublicDNS = "PublicDNS"

	// NamePrefix prefixa os nomes gerados automaticamente
	NamePrefix = "CodeEnclaveFor"

	// CapabilityIAM é exigida porque o template cria um perfil de instância
	CapabilityIAM = "CAPABILITY_IAM"
)

// Parameter é um parâmetro de stack
type Parameter struct {
	ParameterKey   string `yaml:"ParameterKey"`
	ParameterValue string `yaml:"ParameterValue"`
}

// Tag é uma etiqueta de stack
type Tag struct {
	Key   string `yaml:"Key"`
	Value string `yaml:"Value"`
}

// Output é uma saída de stack como o CloudFormation a devolve
type Output struct {
	OutputKey   string
	OutputValue string
	Description string
	ExportName  string
}

// RollbackConfiguration resume a configuração de rollback da stack
type RollbackConfiguration struct {
	MonitoringTimeInMinutes *int32
	RollbackTriggers        []string
}

// DriftInformation resume o estado de drift da stack
type DriftInformation struct {
	StackDriftStatus   string
	LastCheckTimestamp *time.Time
}

// Stack é o registro completo de uma stack do CloudFormation, incluindo os
// campos de controle interno do provedor que nunca são exibidos.
type Stack struct {
	StackID           string
	StackName         string
	ChangeSetID       string
	Description       string
	StackStatus       string
	StackStatusReason string

	CreationTime    *time.Time
	LastUpdatedTime *time.Time
	DeletionTime    *time.Time

	Parameters []Parameter
	Outputs    []Output
	Tags       []Tag

	Capabilities                []string
	NotificationARNs            []string
	DisableRollback             *bool
	RollbackConfiguration       *RollbackConfiguration
	DriftInformation            *DriftInformation
	TimeoutInMinutes            *int32
	RoleARN                     string
	EnableTerminationProtection *bool
	ParentID                    string
	RootID                      string
}

// HasTag reporta se a stack possui a etiqueta key=value
func (s *Stack) HasTag(key, value string) bool {
	for _, tag := range s.Tags {
		if tag.Key == key && tag.Value == value {
			return true
		}
	}
	return false
}

// Parameter retorna o valor do parâmetro key
func (s *Stack) Parameter(key string) (string, bool) {
	return lookupParameter(s.Parameters, key)
}

func lookupParameter(parameters []Parameter, key string) (string, bool) {
	for _, p := range parameters {
		if p.ParameterKey == key {
			return p.ParameterValue, true
		}
	}
	return "", false
}
