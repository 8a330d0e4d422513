package trace

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Heartbeat periodically emits heartbeat events so a stuck run is visible:
// heartbeats without SpanEnd events between them point at a hung pass.
type Heartbeat struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartHeartbeat emits a heartbeat every interval until Stop is called or ctx
// is done. It returns nil when tracing is off or interval is not positive.
func StartHeartbeat(ctx context.Context, tracer Tracer, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Heartbeat{cancel: cancel, done: make(chan struct{})}
	go h.run(ctx, tracer, interval)
	return h
}

func (h *Heartbeat) run(ctx context.Context, tracer Tracer, interval time.Duration) {
	defer close(h.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	gid := getGoroutineID()
	var n uint64
	for {
		select {
		case <-ticker.C:
			n++
			tracer.Emit(&Event{
				Time:   time.Now(),
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				GID:    gid,
				Name:   "heartbeat",
				Detail: "#" + strconv.FormatUint(n, 10),
			})
		case <-ctx.Done():
			return
		}
	}
}

// Stop ends the heartbeat goroutine and waits for it. Safe on nil and safe to
// call twice.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(h.cancel)
	<-h.done
}
