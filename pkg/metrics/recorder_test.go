package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "Unknown"},
		{"plain", errors.New("boom"), "Unknown"},
		{"api error", &smithy.GenericAPIError{Code: "InvalidKeyPair.NotFound", Message: "nope"}, "InvalidKeyPair.NotFound"},
		{"wrapped api error", errorsJoin(&smithy.GenericAPIError{Code: "Throttling"}), "Throttling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.want {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func errorsJoin(err error) error {
	return errors.Join(errors.New("describe failed"), err)
}

func TestAWSAPIMetricsRecorder_Observe(t *testing.T) {
	before := testutil.ToFloat64(AWSAPICallsTotal.WithLabelValues(ServiceEC2, "TestOp", ResultError))
	throttlesBefore := testutil.ToFloat64(AWSAPIThrottles.WithLabelValues(ServiceEC2, "TestOp"))

	NewAWSAPIMetricsRecorder(ServiceEC2, "TestOp").Observe(&smithy.GenericAPIError{Code: "RequestLimitExceeded"})
	NewAWSAPIMetricsRecorder(ServiceEC2, "TestOp").Observe(nil)

	if got := testutil.ToFloat64(AWSAPICallsTotal.WithLabelValues(ServiceEC2, "TestOp", ResultError)); got != before+1 {
		t.Errorf("Expected error counter %v, got %v", before+1, got)
	}
	if got := testutil.ToFloat64(AWSAPIThrottles.WithLabelValues(ServiceEC2, "TestOp")); got != throttlesBefore+1 {
		t.Errorf("Expected throttle counter %v, got %v", throttlesBefore+1, got)
	}
	if got := testutil.ToFloat64(AWSAPICallsTotal.WithLabelValues(ServiceEC2, "TestOp", ResultSuccess)); got < 1 {
		t.Errorf("Expected at least one success, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	if err := WriteTextfile(""); err != nil {
		t.Fatalf("Expected empty path to be a no-op, got: %v", err)
	}

	RecordCommand("list", 0)
	RecordEnclaves(OperationListed, 2)

	path := filepath.Join(t.TempDir(), "claves.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected textfile to exist, got: %v", err)
	}
	if !strings.Contains(string(data), "claves_commands_total") {
		t.Errorf("Expected claves_commands_total in textfile, got:\n%s", data)
	}
}
