// Package analyze scans partition-healing metrics for failure signatures
// and aggregates per-scenario verdicts.
package analyze

import (
	"fmt"

	"meshcheck/internal/metrics"
)

// Delivery below this fraction on a healed row is a violation.
const minDeliveryRate = 0.95

// healed reports whether the mesh has unified into a single partition.
// Checks only judge healed rows; during an active partition the metrics
// are expected to be degraded.
func healed(rec metrics.Record) bool {
	v, ok := rec.Field(metrics.ColPartitionCount)
	return ok && v == "1"
}

// CheckFunc scans records and returns whether the check passed along with
// one violation line per offending healed row, in row order.
type CheckFunc func(rows []metrics.Record) (passed bool, violations []string)

// Check pairs a predicate with its report labels.
type Check struct {
	Name     string
	PassText string
	FailText string
	Run      CheckFunc
}

// Checks returns the three failure-signature checks, in report order.
func Checks() []Check {
	return []Check{
		{
			Name:     "bridge_count",
			PassText: "Bridge count correct",
			FailText: "Multiple bridges detected:",
			Run:      CheckBridgeCount,
		},
		{
			Name:     "message_delivery",
			PassText: "Message delivery good",
			FailText: "Low message delivery rate:",
			Run:      CheckMessageDelivery,
		},
		{
			Name:     "isolated_nodes",
			PassText: "No isolated nodes",
			FailText: "Isolated nodes detected:",
			Run:      CheckIsolatedNodes,
		},
	}
}

// CheckBridgeCount verifies exactly one bridge stays active once healed.
func CheckBridgeCount(rows []metrics.Record) (bool, []string) {
	var violations []string
	for _, rec := range rows {
		if !healed(rec) {
			continue
		}
		count, ok := rec.Int(metrics.ColActiveBridgeCount)
		if !ok {
			continue
		}
		switch {
		case count > 1:
			violations = append(violations,
				fmt.Sprintf("  Time %ss: %d bridges active (expected 1)", rec.Time(), count))
		case count == 0:
			violations = append(violations,
				fmt.Sprintf("  Time %ss: No bridge active (expected 1)", rec.Time()))
		}
	}
	return len(violations) == 0, violations
}

// CheckMessageDelivery verifies delivery stays at or above 95% once healed.
func CheckMessageDelivery(rows []metrics.Record) (bool, []string) {
	var violations []string
	for _, rec := range rows {
		if !healed(rec) {
			continue
		}
		rate, ok := rec.Float(metrics.ColDeliveryRate)
		if !ok {
			continue
		}
		if rate < minDeliveryRate {
			violations = append(violations,
				fmt.Sprintf("  Time %ss: Low delivery rate %.2f%% (expected >95%%)", rec.Time(), rate*100))
		}
	}
	return len(violations) == 0, violations
}

// CheckIsolatedNodes verifies no nodes remain isolated or unreachable once
// healed. The two columns are judged independently, so a single row can
// contribute up to two violations.
func CheckIsolatedNodes(rows []metrics.Record) (bool, []string) {
	var violations []string
	for _, rec := range rows {
		if !healed(rec) {
			continue
		}
		if isolated, ok := rec.Int(metrics.ColIsolatedNodes); ok && isolated > 0 {
			violations = append(violations,
				fmt.Sprintf("  Time %ss: %d nodes isolated (expected 0)", rec.Time(), isolated))
		}
		if unreachable, ok := rec.Int(metrics.ColUnreachableNodes); ok && unreachable > 0 {
			violations = append(violations,
				fmt.Sprintf("  Time %ss: %d nodes unreachable (expected 0)", rec.Time(), unreachable))
		}
	}
	return len(violations) == 0, violations
}
