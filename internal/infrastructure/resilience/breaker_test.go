package resilience

import (
	"testing"
	"time"
)

func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	b := NewBreaker("guest", Settings{FailureThreshold: 3, Cooldown: time.Hour})

	for i := 0; i < 2; i++ {
		if !b.Allow() {
			t.Fatalf("call %d rejected while closed", i)
		}
		b.RecordFailure()
	}
	if b.State() != StateClosed {
		t.Fatalf("state = %v before threshold", b.State())
	}

	b.Allow()
	b.RecordFailure()
	if b.State() != StateOpen {
		t.Fatalf("state = %v after threshold", b.State())
	}
	if b.Allow() {
		t.Fatal("open breaker allowed a call before cooldown")
	}
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker("guest", Settings{FailureThreshold: 2, Cooldown: time.Hour})

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	if b.State() != StateClosed {
		t.Fatalf("state = %v, want closed", b.State())
	}
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	b := NewBreaker("guest", Settings{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})

	b.RecordFailure()
	if b.State() != StateOpen {
		t.Fatalf("state = %v, want open", b.State())
	}

	time.Sleep(20 * time.Millisecond)
	if !b.Allow() {
		t.Fatal("probe rejected after cooldown")
	}
	if b.Allow() {
		t.Fatal("second call allowed while probe in flight")
	}

	b.RecordSuccess()
	if b.State() != StateClosed {
		t.Fatalf("state = %v after probe success", b.State())
	}
	if !b.Allow() {
		t.Fatal("closed breaker rejected a call")
	}
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := NewBreaker("guest", Settings{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	if !b.Allow() {
		t.Fatal("probe rejected after cooldown")
	}
	b.RecordFailure()
	if b.State() != StateOpen {
		t.Fatalf("state = %v after probe failure", b.State())
	}
}

func TestBreakerStateChangeCallback(t *testing.T) {
	var transitions []string
	b := NewBreaker("guest", Settings{
		FailureThreshold: 1,
		Cooldown:         time.Hour,
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	b.RecordFailure()
	if len(transitions) != 1 || transitions[0] != "closed->open" {
		t.Fatalf("transitions = %v", transitions)
	}
}
