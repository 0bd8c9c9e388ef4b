// Package pattern converte filtros de nome informados pelo usuário em
// expressões regulares e gera nomes livres para novos enclaves.
package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxSuffix é o maior sufixo numérico tentado por NextFreeNameLike
const MaxSuffix = 255

// Wildcard converte um padrão estilo shell (* e ?) em uma regex ancorada.
// Retorna nil quando name é nil, o que significa "sem filtro".
func Wildcard(name *string) *regexp.Regexp {
	if name == nil {
		return nil
	}

	quoted := regexp.QuoteMeta(*name)
	quoted = strings.ReplaceAll(quoted, `\*`, ".*")
	quoted = strings.ReplaceAll(quoted, `\?`, ".")

	return regexp.MustCompile("^" + quoted + "$")
}

// Literal retorna uma regex que encontra name literalmente em qualquer posição.
// Usado para reler um recurso recém-criado sem expandir curingas.
func Literal(name *string) *regexp.Regexp {
	if name == nil {
		return nil
	}
	return regexp.MustCompile(regexp.QuoteMeta(*name))
}

// NextFreeNameLike retorna wanted se ele não existir em existing; caso
// contrário tenta wanted2..wanted255. O segundo retorno é false quando
// todos os sufixos estão ocupados.
func NextFreeNameLike(wanted string, existing []string) (string, bool) {
	taken := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		taken[name] = struct{}{}
	}

	if _, ok := taken[wanted]; !ok {
		return wanted, true
	}

	for i := 2; i <= MaxSuffix; i++ {
		candidate := fmt.Sprintf("%s%d", wanted, i)
		if _, ok := taken[candidate]; !ok {
			return candidate, true
		}
	}

	return "", false
}

// Matches reporta se value satisfaz p. Um padrão nil aceita tudo.
func Matches(p *regexp.Regexp, value string) bool {
	return p == nil || p.MatchString(value)
}

// Ptr devolve nil para string vazia, útil para flags opcionais.
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
