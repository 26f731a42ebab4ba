package core

import "testing"

func TestFixedStepClampsRate(t *testing.T) {
	if got := NewFixedStep(0).TPS(); got != 60 {
		t.Fatalf("TPS after NewFixedStep(0) = %d, want 60", got)
	}
	fs := NewFixedStep(30)
	if got := fs.TPS(); got != 30 {
		t.Fatalf("TPS = %d, want 30", got)
	}
	fs.SetTPS(-5)
	if got := fs.TPS(); got != 60 {
		t.Fatalf("TPS after SetTPS(-5) = %d, want 60", got)
	}
}

func TestFixedStepFirstPollFires(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first poll did not fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second immediate poll fired before a full step elapsed")
	}
}

func TestFixedStepResetPrimes(t *testing.T) {
	fs := NewFixedStep(1)
	fs.ShouldStep()
	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("poll after Reset did not fire")
	}
}
