package enclave

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Domain errors
var (
	ErrKeyNameRequired    = errors.New("key pair name is required")
	ErrRepositoryRequired = errors.New("repository name is required")
	ErrUnsupportedFamily  = errors.New("unsupported instance family")
	ErrUnsupportedSize    = errors.New("unsupported instance size")
)

// Famílias e tamanhos de instância aceitos
var (
	SupportedFamilies = []string{"t3", "t4g"}
	SupportedSizes    = []string{"nano", "micro", "small", "medium"}
)

var validate = validator.New()

// GitIdentity é a identidade git configurada dentro do enclave
type GitIdentity struct {
	Name  string
	Email string
}

// CreateRequest descreve um novo enclave. A ordem dos campos define a
// ordem em que as falhas de validação são reportadas.
type CreateRequest struct {
	KeyName        string `validate:"required"`
	Repository     string `validate:"required"`
	InstanceFamily string `validate:"oneof=t3 t4g"`
	InstanceSize   string `validate:"oneof=nano micro small medium"`

	// Name vazio gera um nome a partir do repositório
	Name  string
	Force bool
	Git   GitIdentity
}

// InstanceType monta o tipo EC2, ex: t3.nano
func (r *CreateRequest) InstanceType() string {
	return r.InstanceFamily + "." + r.InstanceSize
}

// Validate retorna a primeira falha encontrada, embrulhando o erro de domínio
func (r *CreateRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.StructField() {
	case "KeyName":
		return ErrKeyNameRequired
	case "Repository":
		return ErrRepositoryRequired
	case "InstanceFamily":
		return fmt.Errorf("%w: %q", ErrUnsupportedFamily, r.InstanceFamily)
	case "InstanceSize":
		return fmt.Errorf("%w: %q", ErrUnsupportedSize, r.InstanceSize)
	}
	return err
}
