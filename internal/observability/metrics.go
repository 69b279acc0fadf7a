package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

var (
	registerOnce sync.Once

	packetsEncoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ghostwire",
			Subsystem: "packet",
			Name:      "encoded_total",
			Help:      "Packets encoded for sending, by packet kind.",
		},
		[]string{"kind"},
	)
	packetsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ghostwire",
			Subsystem: "packet",
			Name:      "decoded_total",
			Help:      "Packets decoded from peers, by packet kind.",
		},
		[]string{"kind"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ghostwire",
			Subsystem: "packet",
			Name:      "decode_failures_total",
			Help:      "Inbound packets rejected, by failure reason.",
		},
		[]string{"reason"},
	)
	packetBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ghostwire",
			Subsystem: "packet",
			Name:      "bytes",
			Help:      "Encoded packet size in bytes, header included.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{"direction"},
	)
	pendingRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ghostwire",
			Subsystem: "session",
			Name:      "pending_requests",
			Help:      "Requests sent and not yet answered or expired.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(packetsEncoded, packetsDecoded, decodeFailures, packetBytes, pendingRequests)
	})
}

func RecordPacketSent(kind string, size int) {
	RegisterMetrics()
	packetsEncoded.WithLabelValues(kind).Inc()
	packetBytes.WithLabelValues(DirectionOut).Observe(float64(size))
}

func RecordPacketReceived(kind string, size int) {
	RegisterMetrics()
	packetsDecoded.WithLabelValues(kind).Inc()
	packetBytes.WithLabelValues(DirectionIn).Observe(float64(size))
}

func RecordDecodeFailure(reason string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(reason).Inc()
}

// AddPendingRequests moves the pending gauge by delta. Every session shares
// one gauge, so trackers report changes rather than absolute counts.
func AddPendingRequests(delta int) {
	RegisterMetrics()
	pendingRequests.Add(float64(delta))
}
