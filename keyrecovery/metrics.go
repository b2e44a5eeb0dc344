package keyrecovery

import (
	"github.com/parlorchat/parlor/metrics"
)

const namespace = "keyrecovery"

var (
	scansRun = metrics.NewCounter(
		"scans_total",
		namespace,
		"number of recovery scans executed",
		[]string{},
	).WithLabelValues()

	requestsStarted = metrics.NewCounter(
		"requests_started_total",
		namespace,
		"number of key requests sent to peers",
		[]string{},
	).WithLabelValues()

	requestsFailed = metrics.NewCounter(
		"requests_failed_total",
		namespace,
		"number of key requests that failed to send",
		[]string{},
	).WithLabelValues()

	requestsTimedOut = metrics.NewCounter(
		"requests_timed_out_total",
		namespace,
		"number of key requests that got no response in time",
		[]string{},
	).WithLabelValues()

	requestsThrottled = metrics.NewCounter(
		"requests_throttled_total",
		namespace,
		"number of inbound key requests dropped by the rate limiter",
		[]string{},
	).WithLabelValues()

	keysServed = metrics.NewCounter(
		"keys_served_total",
		namespace,
		"number of key requests answered with forwarded room keys",
		[]string{},
	).WithLabelValues()

	keysImported = metrics.NewCounter(
		"keys_imported_total",
		namespace,
		"number of forwarded sessions imported into the local store",
		[]string{},
	).WithLabelValues()

	keysRejected = metrics.NewCounter(
		"keys_rejected_total",
		namespace,
		"number of forwarded sessions rejected as unsolicited",
		[]string{},
	).WithLabelValues()

	inflightRooms = metrics.NewGauge(
		"inflight_rooms",
		namespace,
		"rooms with a key request currently awaiting a response",
		[]string{},
	).WithLabelValues()
)
