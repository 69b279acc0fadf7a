package observability

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/testutil/testlog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(packetsEncoded.WithLabelValues("request"))
	RecordPacketSent("request", 120)
	RecordPacketReceived("response", 96)
	RecordDecodeFailure("truncated")
	if got := testutil.ToFloat64(packetsEncoded.WithLabelValues("request")); got != before+1 {
		t.Fatalf("encoded counter = %v, want %v", got, before+1)
	}

	gauge := testutil.ToFloat64(pendingRequests)
	AddPendingRequests(2)
	AddPendingRequests(-1)
	if got := testutil.ToFloat64(pendingRequests); got != gauge+1 {
		t.Fatalf("pending gauge = %v, want %v", got, gauge+1)
	}
	AddPendingRequests(-1)
}

func TestFailureReason(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{protocol.ErrTruncated, "truncated"},
		{protocol.ErrUnsupportedFeature, "unsupported"},
		{protocol.ErrDuplicateField, "envelope"},
		{errors.New("socket closed"), "other"},
		{fmt.Errorf("wrapped: %w", protocol.ErrUnknownFieldID), "unknown_field"},
		{&protocol.DecodeError{Offset: 4, Err: protocol.ErrNestingTooDeep}, "too_deep"},
	}
	for _, tc := range cases {
		if got := FailureReason(tc.err); got != tc.want {
			t.Fatalf("FailureReason(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
