package region

import "github.com/golang/glog"

// Logging level convention for the region package, following the same
// convention bringyour-connect uses for its own networking code:
//
// V(1): key lifecycle events with ids usable to trace a run -- sweep
//       start/end, fixpoint reached, graph finalized.
// V(2): per-event tracing -- every Begin/End/Intersect published on the
//       bus. Silent by default; only useful when debugging a specific run.
//
// Messages are tagged with the component in brackets, e.g. "[sweep]" or
// "[graph]", so V(2) traces from multiple components can be told apart.

func logSweepf(format string, a ...any) {
	glog.V(1).Infof("[sweep]"+format, a...)
}

func logSweepTracef(format string, a ...any) {
	glog.V(2).Infof("[sweep]"+format, a...)
}

func logGraphf(format string, a ...any) {
	glog.V(1).Infof("[graph]"+format, a...)
}

func logCyclef(format string, a ...any) {
	glog.V(1).Infof("[cyclesweep]"+format, a...)
}
