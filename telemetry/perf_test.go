package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few ticks
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseCollisions)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseBrains)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Verify we got timing data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}

	// Verify phases are tracked
	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseCollisions]; !ok {
		t.Error("expected collisions phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseBrains]; !ok {
		t.Error("expected brains phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	// Fill window completely
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseCollisions)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Should have data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}

	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate with uneven phase durations
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	fastPct := stats.PhasePct["fast"]
	slowPct := stats.PhasePct["slow"]

	// Slow phase should take more % than fast
	if slowPct <= fastPct {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", slowPct, fastPct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}

	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}

	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfCollector_SamplesCapAtWindow(t *testing.T) {
	pc := NewPerfCollector(4)
	for i := 0; i < 3; i++ {
		pc.StartTick()
		pc.EndTick()
	}
	if pc.Samples() != 3 {
		t.Errorf("Samples() = %d, want 3", pc.Samples())
	}
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.EndTick()
	}
	if pc.Samples() != 4 {
		t.Errorf("Samples() = %d, want window size 4", pc.Samples())
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 150 * time.Microsecond,
		MinTickDuration: 100 * time.Microsecond,
		MaxTickDuration: 300 * time.Microsecond,
		PhasePct: map[string]float64{
			PhaseCollisions: 20,
			PhaseBrains:     70,
			PhaseMovement:   10,
		},
		TicksPerSecond: 6666,
	}

	row := stats.ToCSV("run", 2500)
	if row.RunID != "run" || row.WindowEnd != 2500 {
		t.Errorf("identity = %q %d", row.RunID, row.WindowEnd)
	}
	if row.AvgTickUS != 150 || row.MinTickUS != 100 || row.MaxTickUS != 300 {
		t.Errorf("tick us = %d %d %d", row.AvgTickUS, row.MinTickUS, row.MaxTickUS)
	}
	if row.CollisionsPct != 20 || row.BrainsPct != 70 || row.MovementPct != 10 || row.EvolvePct != 0 {
		t.Errorf("phase pct = %+v", row)
	}
}
