package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"

	"github.com/varseand/claves/internal/domain/enclave"
	"github.com/varseand/claves/pkg/clients"
)

// Variáveis de ambiente lidas pelo claves
const (
	EnvKeyPair     = "CLAVES_KEYPAIR"
	EnvMetricsFile = "CLAVES_METRICS_FILE"
)

// Settings reúne os padrões coletados uma única vez na inicialização
type Settings struct {
	// KeyPair é o par de chaves padrão do create
	KeyPair string

	// MetricsFile recebe as métricas no formato textfile ao final da execução
	MetricsFile string

	// Git é a identidade configurada no git local
	Git enclave.GitIdentity

	AWS clients.AWSConfig
}

// LoadSettings carrega um .env opcional do diretório atual e lê o ambiente.
// Variáveis já definidas nunca são sobrescritas pelo .env.
func LoadSettings(ctx context.Context) (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, err
	}

	return Settings{
		KeyPair:     os.Getenv(EnvKeyPair),
		MetricsFile: os.Getenv(EnvMetricsFile),
		Git: enclave.GitIdentity{
			Name:  gitConfig(ctx, "user.name"),
			Email: gitConfig(ctx, "user.email"),
		},
		AWS: clients.NewAWSConfigFromEnv(),
	}, nil
}

// gitConfig lê uma chave do git config; git ausente ou chave vazia viram ""
func gitConfig(ctx context.Context, key string) string {
	out, err := exec.CommandContext(ctx, "git", "config", "--get", key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), "\r\n")
}
