package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/aws/smithy-go"
)

// unknownErrorCode rotula erros que não vieram de uma API da AWS
const unknownErrorCode = "Unknown"

// Códigos que a AWS usa para limite de requisições
var throttlingCodes = map[string]struct{}{
	"Throttling":               {},
	"ThrottlingException":      {},
	"RequestLimitExceeded":     {},
	"TooManyRequestsException": {},
}

// AWSAPIMetricsRecorder mede uma única chamada à AWS.
//
//	rec := metrics.NewAWSAPIMetricsRecorder(metrics.ServiceCloudFormation, "CreateStack")
//	out, err := r.client.CreateStack(ctx, input)
//	rec.Observe(err)
type AWSAPIMetricsRecorder struct {
	service   string
	operation string
	started   time.Time
}

// NewAWSAPIMetricsRecorder começa a cronometrar a chamada
func NewAWSAPIMetricsRecorder(service, operation string) *AWSAPIMetricsRecorder {
	return &AWSAPIMetricsRecorder{service: service, operation: operation, started: time.Now()}
}

// Observe registra duração e resultado da chamada. Erros também alimentam
// o contador por código e, quando for o caso, o de throttling.
func (a *AWSAPIMetricsRecorder) Observe(err error) {
	AWSAPICallDuration.WithLabelValues(a.service, a.operation).Observe(time.Since(a.started).Seconds())

	if err == nil {
		AWSAPICallsTotal.WithLabelValues(a.service, a.operation, ResultSuccess).Inc()
		return
	}

	code := ErrorCode(err)
	AWSAPICallsTotal.WithLabelValues(a.service, a.operation, ResultError).Inc()
	AWSAPIErrors.WithLabelValues(a.service, a.operation, code).Inc()
	if _, ok := throttlingCodes[code]; ok {
		AWSAPIThrottles.WithLabelValues(a.service, a.operation).Inc()
	}
}

// ErrorCode devolve o código de erro da AWS presente na cadeia de err
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if err != nil && errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return unknownErrorCode
}

// RecordCommand conta o código de saída de um comando finalizado
func RecordCommand(command string, exitCode int) {
	CommandsTotal.WithLabelValues(command, strconv.Itoa(exitCode)).Inc()
}

// RecordEnclaves soma n ao contador da operação
func RecordEnclaves(operation string, n int) {
	EnclavesAffected.WithLabelValues(operation).Add(float64(n))
}
