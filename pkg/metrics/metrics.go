// Package metrics provides Prometheus metrics for the claves CLI.
//
// A CLI run is short-lived, so nothing is served over HTTP. The metrics are
// collected in a private registry and, when requested, written once at exit
// in the textfile format understood by the node_exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every claves metric
var Registry = prometheus.NewRegistry()

// Chamadas à AWS
var (
	// AWSAPICallsTotal conta chamadas por serviço, operação e resultado
	AWSAPICallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "claves",
		Subsystem: "aws_api",
		Name:      "calls_total",
		Help:      "AWS API calls by service, operation and result.",
	}, []string{"service", "operation", "result"})

	AWSAPICallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "claves",
		Subsystem: "aws_api",
		Name:      "call_duration_seconds",
		Help:      "Latency of AWS API calls.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2.5, 8),
	}, []string{"service", "operation"})

	// AWSAPIErrors usa o código devolvido pela AWS, ex: InvalidKeyPair.NotFound
	AWSAPIErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "claves",
		Subsystem: "aws_api",
		Name:      "errors_total",
		Help:      "AWS API errors by service, operation and error code.",
	}, []string{"service", "operation", "error_code"})

	AWSAPIThrottles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "claves",
		Subsystem: "aws_api",
		Name:      "throttles_total",
		Help:      "AWS API calls rejected by rate limiting.",
	}, []string{"service", "operation"})
)

// Comandos e enclaves
var (
	CommandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "claves",
		Name:      "commands_total",
		Help:      "Finished claves commands by exit code.",
	}, []string{"command", "exit_code"})

	// EnclavesAffected conta enclaves criados, deletados ou listados
	EnclavesAffected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "claves",
		Name:      "enclaves_total",
		Help:      "Code enclaves created, deleted or listed.",
	}, []string{"operation"})
)

// Result labels
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// AWS service labels
const (
	ServiceEC2            = "EC2"
	ServiceCloudFormation = "CloudFormation"
	ServiceCodeCommit     = "CodeCommit"
)

// Enclave operation labels
const (
	OperationCreated = "created"
	OperationDeleted = "deleted"
	OperationListed  = "listed"
)

func init() {
	Registry.MustRegister(
		AWSAPICallsTotal,
		AWSAPICallDuration,
		AWSAPIErrors,
		AWSAPIThrottles,
		CommandsTotal,
		EnclavesAffected,
	)
}

// WriteTextfile grava todas as métricas em path. path vazio não faz nada.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, Registry)
}
