package parallel

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestForRangeCoversEveryIndex(t *testing.T) {
	p := New(4)
	defer p.Close()

	// Above the inline threshold so the pass actually fans out.
	const n = 10000
	hits := make([]int32, n)

	p.ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d touched %d times, want 1", i, h)
		}
	}
}

func TestForRangeSmallRunsInline(t *testing.T) {
	p := New(4)
	defer p.Close()

	var calls int
	p.ForRange(16, func(lo, hi int) {
		calls++
		if lo != 0 || hi != 16 {
			t.Errorf("inline chunk = [%d, %d), want [0, 16)", lo, hi)
		}
	})
	if calls != 1 {
		t.Errorf("small range split into %d chunks, want 1", calls)
	}
}

func TestForRangeZeroAndNegative(t *testing.T) {
	p := New(2)
	defer p.Close()

	p.ForRange(0, func(lo, hi int) {
		t.Error("callback invoked for empty range")
	})
	p.ForRange(-5, func(lo, hi int) {
		t.Error("callback invoked for negative range")
	})
}

func TestNilPoolRunsInline(t *testing.T) {
	var p *Pool
	done := false
	p.ForRange(8, func(lo, hi int) { done = lo == 0 && hi == 8 })
	if !done {
		t.Error("nil pool did not run the range inline")
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close() // idempotent

	var total atomic.Int64
	p.ForRange(5000, func(lo, hi int) {
		total.Add(int64(hi - lo))
	})
	if total.Load() != 5000 {
		t.Errorf("closed pool processed %d of 5000 indices", total.Load())
	}
}

func TestCloseDoesNotAbandonQueuedChunks(t *testing.T) {
	// A single worker blocks inside the first chunk while the remaining
	// chunks sit in the queue. Closing the pool at that point must not
	// strand them: the pass has to complete once the worker is released.
	p := New(1)

	release := make(chan struct{})
	var total atomic.Int64

	passDone := make(chan struct{})
	go func() {
		defer close(passDone)
		p.ForRange(4096, func(lo, hi int) {
			if lo == 0 {
				<-release
			}
			total.Add(int64(hi - lo))
		})
	}()

	// Give the worker time to enter the blocking chunk, then race a
	// shutdown against the in-flight pass.
	time.Sleep(10 * time.Millisecond)
	closeDone := make(chan struct{})
	go func() {
		defer close(closeDone)
		p.Close()
	}()
	time.Sleep(10 * time.Millisecond)
	close(release)

	select {
	case <-passDone:
	case <-time.After(2 * time.Second):
		t.Fatal("ForRange did not return after Close")
	}
	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
	if total.Load() != 4096 {
		t.Errorf("pass processed %d of 4096 indices", total.Load())
	}
}

func TestDefaultWorkers(t *testing.T) {
	if Default().Workers() < 1 {
		t.Error("default pool has no workers")
	}
	if Default() != Default() {
		t.Error("Default returned distinct pools")
	}
}
