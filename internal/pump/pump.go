// Package pump implements the Output Pump: a background goroutine that
// drains a PTY session into a Recorder and an Output Buffer, forwarding
// each chunk to the Recorder before the Buffer per the ordering guarantee
// in the concurrency model.
package pump

import (
	"errors"
	"time"

	"timewalker/internal/outputbuffer"
	"timewalker/internal/recorder"
	"timewalker/internal/twerr"
)

// reader is the subset of ptysession.Session the pump needs, declared
// narrowly to keep this package independent of process-lifecycle concerns.
type reader interface {
	Read(timeout time.Duration) ([]byte, error)
	IsRunning() bool
}

// drainReadTimeout is the short timeout used once the main loop exits, so
// the drain phase converges quickly instead of blocking on config.timeout.
const drainReadTimeout = 50 * time.Millisecond

// Pump owns the background goroutine. Start it once; Stop is cooperative
// and the goroutine always runs the drain phase before exiting, so
// post-exit bytes are not lost. Join waits for that up to its timeout.
type Pump struct {
	session  reader
	recorder *recorder.Recorder
	buffer   *outputbuffer.Buffer
	readTO   time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New constructs a Pump. Call Start to launch its goroutine.
func New(session reader, rec *recorder.Recorder, buf *outputbuffer.Buffer, readTimeout time.Duration) *Pump {
	return &Pump{
		session:  session,
		recorder: rec,
		buffer:   buf,
		readTO:   readTimeout,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the pump's background goroutine.
func (p *Pump) Start() {
	go p.run()
}

// Stop signals the goroutine to leave its main loop. The drain phase
// always completes before the goroutine exits regardless of Stop.
func (p *Pump) Stop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

// Join blocks until the goroutine has finished (main loop + drain), or
// timeout elapses, whichever comes first.
func (p *Pump) Join(timeout time.Duration) bool {
	select {
	case <-p.doneCh:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (p *Pump) run() {
	defer close(p.doneCh)

	for {
		select {
		case <-p.stopCh:
			goto drain
		default:
		}

		chunk, err := p.session.Read(p.readTO)
		if err != nil {
			if errors.Is(err, twerr.ErrTimeout) {
				if !p.session.IsRunning() {
					break
				}
				continue
			}
			// Any other read error (e.g. EIO once the slave side has
			// fully closed) is treated like EOF: stop if the child is
			// gone, otherwise keep trying.
			if !p.session.IsRunning() {
				break
			}
			continue
		}
		if len(chunk) == 0 {
			if !p.session.IsRunning() {
				break
			}
			continue
		}
		p.forward(chunk)
	}

drain:
	p.drain()
}

func (p *Pump) forward(chunk []byte) {
	_, _ = p.recorder.Append(chunk)
	p.buffer.Append(chunk)
}

// drain performs repeated short-timeout reads until a timeout or an
// empty/errored read, ensuring bytes written by the child between the last
// main-loop read and its exit are not lost.
func (p *Pump) drain() {
	for {
		chunk, err := p.session.Read(drainReadTimeout)
		if err != nil {
			return
		}
		if len(chunk) == 0 {
			return
		}
		p.forward(chunk)
	}
}
