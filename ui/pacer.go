package ui

import "time"

// Pacer holds a fixed frame rate for platforms that have no vsync of their
// own.
type Pacer struct {
	now   func() time.Time
	sleep func(time.Duration)
	next  time.Time
}

func NewPacer() *Pacer {
	return &Pacer{now: time.Now, sleep: time.Sleep}
}

// Wait blocks until one frame at ticksPerSecond has passed since the
// previous Wait. A caller that fell behind by more than a frame is not made
// to catch up.
func (p *Pacer) Wait(ticksPerSecond int) {
	if ticksPerSecond <= 0 {
		return
	}
	frame := time.Second / time.Duration(ticksPerSecond)

	now := p.now()
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(frame)

	if d := p.next.Sub(now); d > 0 {
		p.sleep(d)
		return
	}
	if now.Sub(p.next) > frame {
		p.next = now
	}
}
