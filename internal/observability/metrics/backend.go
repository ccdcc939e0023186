package metrics

import (
	"strconv"
	"time"

	apperrors "github.com/target/leave-ui/internal/errors"
	"github.com/target/leave-ui/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// BackendCall captures one round trip to the leave backend.
type BackendCall struct {
	Operation string
	Status    int
	Duration  time.Duration
	Err       error
}

// EmitBackendCall emits the request counter and latency for a backend call.
// Failed calls carry an error_code tag taken from the AppError code.
func EmitBackendCall(sink statsd.Sink, in BackendCall) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"op":     in.Operation,
		"status": strconv.Itoa(in.Status),
		"result": ResultSuccess,
	}
	if in.Err != nil {
		tags["result"] = ResultError
		if code := apperrors.GetCode(in.Err); code != "" {
			tags["error_code"] = string(code)
		}
	}

	sink.Count("backend.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("backend.request.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
