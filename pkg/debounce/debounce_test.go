package debounce

import (
	"testing"
	"time"
)

func TestDebouncer_ReemplazaLlamadasRapidas(t *testing.T) {
	d := New(30 * time.Millisecond)
	defer d.Stop()

	fired := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		i := i
		d.Call(func() { fired <- i })
	}

	select {
	case got := <-fired:
		if got != 3 {
			t.Fatalf("expected last call to win, got %d", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("debounced call never fired")
	}

	select {
	case got := <-fired:
		t.Fatalf("unexpected extra call %d", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_FlushEjecutaDeInmediato(t *testing.T) {
	d := New(time.Hour)
	defer d.Stop()

	fired := make(chan struct{}, 1)
	d.Call(func() { fired <- struct{}{} })
	d.Flush()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatalf("flush did not run the pending call")
	}

	// flush again without a pending call is a no-op
	d.Flush()
}

func TestDebouncer_StopDescartaPendientes(t *testing.T) {
	d := New(20 * time.Millisecond)

	fired := make(chan struct{}, 2)
	d.Call(func() { fired <- struct{}{} })
	d.Stop()

	// calls after Stop are ignored
	d.Call(func() { fired <- struct{}{} })

	select {
	case <-fired:
		t.Fatalf("stopped debouncer must not fire")
	case <-time.After(100 * time.Millisecond):
	}
}
