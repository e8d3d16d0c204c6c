package yahoo

import (
	"testing"
	"time"
)

func TestPacedTransportWait(t *testing.T) {
	p := &pacedTransport{min: 20 * time.Millisecond}

	start := time.Now()
	p.wait() // first call is free
	p.wait()
	p.wait()
	elapsed := time.Since(start)

	if elapsed < 40*time.Millisecond {
		t.Errorf("three paced calls took %v, want at least 40ms", elapsed)
	}
}

func TestPacedTransportZeroInterval(t *testing.T) {
	p := &pacedTransport{}

	start := time.Now()
	for range 100 {
		p.wait()
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("unpaced calls took %v, want no waiting", elapsed)
	}
}
