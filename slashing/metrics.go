package slashing

import (
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/metrics"
)

const namespace = "slashing"

var (
	reports = metrics.NewCounter(
		"reports",
		namespace,
		"number of misbehavior reports",
		[]string{"outcome"},
	)
	reportAccepted  = reports.WithLabelValues("ok")
	reportStale     = reports.WithLabelValues("stale")
	reportNotMember = reports.WithLabelValues("not_member")

	escalations = metrics.NewCounter(
		"escalations",
		namespace,
		"number of escalations by kind",
		[]string{"kind"},
	)
	misdemeanors     = escalations.WithLabelValues(string(events.KindMisdemeanor))
	felonies         = escalations.WithLabelValues(string(events.KindFelony))
	finalityFelonies = escalations.WithLabelValues(string(events.KindFinality))

	compactionRemoved = metrics.NewCounter(
		"compaction_removed",
		namespace,
		"number of indicators removed by compaction",
		[]string{},
	).WithLabelValues()

	registrySize = metrics.NewGauge(
		"indicators",
		namespace,
		"number of validators with a misbehavior indicator",
		[]string{},
	).WithLabelValues()

	evidenceSubmitted = metrics.NewCounter(
		"evidence",
		namespace,
		"number of submitted finality evidence by outcome",
		[]string{"outcome"},
	)
	evidenceAccepted = evidenceSubmitted.WithLabelValues("ok")
)

func evidenceRejected(reason string) {
	evidenceSubmitted.WithLabelValues(reason).Inc()
}
