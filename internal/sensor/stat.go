package sensor

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sensorlab/relay/helpers/atomic_clock"
)

// Stat counts delivered ticks. Updated by the worker, read concurrently
// by the supervisor heartbeat.
type Stat struct {
	ticks    uint32
	bytes    uint64
	lastSend atomic_clock.Clock
}

func (st *Stat) register(n int) {
	atomic.AddUint32(&st.ticks, 1)
	atomic.AddUint64(&st.bytes, uint64(n))
	st.lastSend.SetNow()
}

func (st *Stat) Ticks() uint32 { return atomic.LoadUint32(&st.ticks) }
func (st *Stat) Bytes() uint64 { return atomic.LoadUint64(&st.bytes) }

func (st *Stat) String() string {
	idle := "never"
	if !st.lastSend.IsZero() {
		idle = atomic_clock.Since(&st.lastSend).Truncate(time.Millisecond).String()
	}
	return fmt.Sprintf("ticks=%d bytes=%d idle=%s", st.Ticks(), st.Bytes(), idle)
}
