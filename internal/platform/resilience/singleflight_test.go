package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoCollapsesConcurrentCalls(t *testing.T) {
	var g Group[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("getRandomPlayers?eventId=evt-1", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "player-7", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if v != "player-7" {
				t.Errorf("unexpected value %q", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DoRunsAgainAfterCompletion(t *testing.T) {
	var g Group[int]
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	v, err, shared := g.Do("k", func() (int, error) { return 2, nil })
	if err != nil || v != 2 || shared {
		t.Fatalf("unexpected second call result v=%d err=%v shared=%v", v, err, shared)
	}
}
