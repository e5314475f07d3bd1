package node

import "github.com/spacemeshos/go-slashindicator/metrics"

const namespace = "node"

var (
	checkpointsTotal = metrics.NewCounter(
		"checkpoints",
		namespace,
		"Number of slashing state checkpoints",
		[]string{"outcome"},
	)
	checkpoints        = checkpointsTotal.WithLabelValues("ok")
	checkpointFailures = checkpointsTotal.WithLabelValues("failed")

	relayedPackages = metrics.NewCounter(
		"relayed_slash_packages",
		namespace,
		"Number of slash packages relayed to other networks",
		[]string{},
	).WithLabelValues()

	recordedSlashes = metrics.NewCounter(
		"recorded_slashes",
		namespace,
		"Number of slashes written to the history",
		[]string{"kind"},
	)

	paramChanges = metrics.NewCounter(
		"param_changes",
		namespace,
		"Number of applied governance updates",
		[]string{"key"},
	)

	compactions = metrics.NewCounter(
		"compactions",
		namespace,
		"Number of observed compactions",
		[]string{},
	).WithLabelValues()

	compactedIndicators = metrics.NewCounter(
		"compacted_indicators",
		namespace,
		"Number of indicators removed by compactions",
		[]string{},
	).WithLabelValues()
)
