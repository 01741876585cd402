package telemetry

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceHeaderWrittenOnce(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf)

	for i := 0; i < 3; i++ {
		if err := tw.Write(TraceRecord{Round: 1, Tick: i, Phase: "active", Score: i}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), buf.String())
	}
	want := "round,tick,time,phase,actor_y,actor_dy,obstacles,score"
	if lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if strings.Count(buf.String(), "round,") != 1 {
		t.Error("header repeated")
	}
	if tw.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", tw.Rows())
	}
}

func TestTraceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.csv")
	tw, err := CreateTrace(path)
	if err != nil {
		t.Fatalf("CreateTrace() error = %v", err)
	}

	in := []TraceRecord{
		{Round: 1, Tick: 1, Time: 0.5, Phase: "active", ActorY: -12.25, ActorDY: -35, Obstacles: 0, Score: 0},
		{Round: 1, Tick: 2, Time: 1, Phase: "terminated", ActorY: 301, ActorDY: 150, Obstacles: 2, Score: 4},
	}
	for _, r := range in {
		if err := tw.Write(r); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	out, err := ReadTrace(f)
	if err != nil {
		t.Fatalf("ReadTrace() error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("read %d records, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("record %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestNilTraceWriter(t *testing.T) {
	tw, err := CreateTrace("")
	if err != nil || tw != nil {
		t.Fatalf("CreateTrace(\"\") = %v, %v; want nil, nil", tw, err)
	}
	if err := tw.Write(TraceRecord{}); err != nil {
		t.Errorf("nil Write() error = %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Errorf("nil Close() error = %v", err)
	}
}

func TestSummarize(t *testing.T) {
	var rounds []Round
	for i := 1; i <= 10; i++ {
		reason := "collision"
		if i%5 == 0 {
			reason = "out of bounds"
		}
		rounds = append(rounds, Round{Score: i % 6, Survival: float64(i), Reason: reason})
	}

	s := Summarize(rounds)
	if s.Rounds != 10 {
		t.Errorf("Rounds = %d", s.Rounds)
	}
	if s.BestScore != 5 {
		t.Errorf("BestScore = %d, want 5", s.BestScore)
	}
	if math.Abs(s.MeanSurvival-5.5) > 1e-9 {
		t.Errorf("MeanSurvival = %v, want 5.5", s.MeanSurvival)
	}
	if s.P50Survival != 5 || s.P90Survival != 9 {
		t.Errorf("p50/p90 = %v/%v, want 5/9", s.P50Survival, s.P90Survival)
	}
	if s.Reasons["collision"] != 8 || s.Reasons["out of bounds"] != 2 {
		t.Errorf("Reasons = %v", s.Reasons)
	}
}

func TestSummarizeSpread(t *testing.T) {
	rounds := []Round{{Score: 1}, {Score: 2}, {Score: 3}, {Score: 4}, {Score: 5}}
	s := Summarize(rounds)

	if s.MeanScore != 3 {
		t.Errorf("MeanScore = %v, want 3", s.MeanScore)
	}
	if want := math.Sqrt(2.5); math.Abs(s.StdDevScore-want) > 1e-9 {
		t.Errorf("StdDevScore = %v, want %v", s.StdDevScore, want)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	if s := Summarize(nil); s.Rounds != 0 || s.MeanScore != 0 {
		t.Errorf("empty summary = %+v", s)
	}

	s := Summarize([]Round{{Score: 7, Survival: 3.5}})
	if s.MeanScore != 7 || s.StdDevScore != 0 || s.P90Survival != 3.5 {
		t.Errorf("single-round summary = %+v", s)
	}
	if !strings.Contains(s.String(), "ended by time limit: 1") {
		t.Errorf("String() missing time-limit line:\n%s", s)
	}
}
