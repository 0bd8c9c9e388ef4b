package enclave

import (
	"regexp"
)

// Parâmetros e saídas mantidos na visão resumida
var (
	basicParameters = map[string]struct{}{ParamRepositoryURL: {}}
	basicOutputs    = map[string]struct{}{OutputPublicDNS: {}}
)

// Predicate decide se uma stack segue no pipeline
type Predicate func(s *Stack) bool

// IsEnclave aceita apenas stacks marcadas com CreatedBy=Claves
func IsEnclave(s *Stack) bool {
	return s.HasTag(TagCreatedBy, CreatedByValue)
}

// NameMatches filtra pelo nome da stack. Um padrão nil aceita tudo.
func NameMatches(p *regexp.Regexp) Predicate {
	return func(s *Stack) bool {
		return p == nil || p.MatchString(s.StackName)
	}
}

// RepositoryMatches filtra pelo parâmetro RepositoryName. Um padrão nil aceita tudo.
func RepositoryMatches(p *regexp.Regexp) Predicate {
	return func(s *Stack) bool {
		if p == nil {
			return true
		}
		name, ok := s.Parameter(ParamRepositoryName)
		return ok && p.MatchString(name)
	}
}

// Query descreve uma listagem de enclaves
type Query struct {
	Name       *regexp.Regexp
	Repository *regexp.Regexp
	Verbose    bool
}

// Pipeline é a sequência ordenada de filtros seguida da redação
type Pipeline struct {
	Predicates []Predicate
	Verbose    bool
}

// Pipeline monta o pipeline padrão: marcador -> nome -> repositório
func (q Query) Pipeline() Pipeline {
	return Pipeline{
		Predicates: []Predicate{
			IsEnclave,
			NameMatches(q.Name),
			RepositoryMatches(q.Repository),
		},
		Verbose: q.Verbose,
	}
}

// Apply filtra stacks (AND de todos os predicados) e devolve as visões redigidas
func (p Pipeline) Apply(stacks []Stack) []Enclave {
	enclaves := make([]Enclave, 0, len(stacks))
	for i := range stacks {
		if !p.accepts(&stacks[i]) {
			continue
		}
		enclaves = append(enclaves, Redact(&stacks[i], p.Verbose))
	}
	return enclaves
}

func (p Pipeline) accepts(s *Stack) bool {
	for _, predicate := range p.Predicates {
		if !predicate(s) {
			return false
		}
	}
	return true
}

// Redact converte a stack na visão impressa. Capabilities, Description,
// DisableRollback, DriftInformation, NotificationARNs e
// RollbackConfiguration nunca são copiados. Sem verbose, Tags e StackId
// também somem e Outputs/Parameters ficam só com as chaves básicas.
func Redact(s *Stack, verbose bool) Enclave {
	e := Enclave{
		StackName:                   s.StackName,
		ChangeSetID:                 s.ChangeSetID,
		CreationTime:                s.CreationTime,
		LastUpdatedTime:             s.LastUpdatedTime,
		DeletionTime:                s.DeletionTime,
		StackStatus:                 s.StackStatus,
		StackStatusReason:           s.StackStatusReason,
		TimeoutInMinutes:            s.TimeoutInMinutes,
		RoleARN:                     s.RoleARN,
		EnableTerminationProtection: s.EnableTerminationProtection,
		ParentID:                    s.ParentID,
		RootID:                      s.RootID,
	}

	if verbose {
		e.StackID = s.StackID
		e.Tags = append([]Tag(nil), s.Tags...)
	}

	e.Parameters = make([]Parameter, 0, len(s.Parameters))
	for _, p := range s.Parameters {
		if _, ok := basicParameters[p.ParameterKey]; verbose || ok {
			e.Parameters = append(e.Parameters, p)
		}
	}

	for _, o := range s.Outputs {
		if _, ok := basicOutputs[o.OutputKey]; verbose || ok {
			e.Outputs = append(e.Outputs, OutputView{
				OutputKey:   o.OutputKey,
				OutputValue: o.OutputValue,
				ExportName:  o.ExportName,
			})
		}
	}

	return e
}
