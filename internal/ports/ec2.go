// Package ports define as interfaces de portas seguindo Clean Architecture.
//
// Este package contém as abstrações que desacoplam a lógica de negócio das
// implementações concretas, permitindo testabilidade e flexibilidade.
package ports

import (
	"context"
)

// RegionCatalog lista as regiões AWS habilitadas para a conta
type RegionCatalog interface {
	ListRegions(ctx context.Context) ([]string, error)
}
