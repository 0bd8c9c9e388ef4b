package enclave

import (
	"time"
)

// OutputView é uma saída de stack sem a descrição
type OutputView struct {
	OutputKey   string `yaml:"OutputKey"`
	OutputValue string `yaml:"OutputValue"`
	ExportName  string `yaml:"ExportName,omitempty"`
}

// Enclave é a visão impressa de uma stack do claves, já com os campos de
// controle do provedor removidos. Campos vazios são omitidos do YAML.
type Enclave struct {
	StackID           string       `yaml:"StackId,omitempty"`
	StackName         string       `yaml:"StackName"`
	ChangeSetID       string       `yaml:"ChangeSetId,omitempty"`
	Parameters        []Parameter  `yaml:"Parameters"`
	CreationTime      *time.Time   `yaml:"CreationTime,omitempty"`
	LastUpdatedTime   *time.Time   `yaml:"LastUpdatedTime,omitempty"`
	DeletionTime      *time.Time   `yaml:"DeletionTime,omitempty"`
	StackStatus       string       `yaml:"StackStatus"`
	StackStatusReason string       `yaml:"StackStatusReason,omitempty"`
	TimeoutInMinutes  *int32       `yaml:"TimeoutInMinutes,omitempty"`
	Outputs           []OutputView `yaml:"Outputs,omitempty"`
	RoleARN           string       `yaml:"RoleARN,omitempty"`
	Tags              []Tag        `yaml:"Tags,omitempty"`

	EnableTerminationProtection *bool  `yaml:"EnableTerminationProtection,omitempty"`
	ParentID                    string `yaml:"ParentId,omitempty"`
	RootID                      string `yaml:"RootId,omitempty"`
}

// HasParameter reporta se o enclave foi criado com key=value
func (e *Enclave) HasParameter(key, value string) bool {
	v, ok := lookupParameter(e.Parameters, key)
	return ok && v == value
}

// Names retorna os nomes de stack dos enclaves, na mesma ordem
func Names(enclaves []Enclave) []string {
	names := make([]string, 0, len(enclaves))
	for _, e := range enclaves {
		names = append(names, e.StackName)
	}
	return names
}
