package device

import "time"

// Loopback feeds each output buffer back as the next input buffer.
// Useful for exercising a transmit chain without hardware.
type Loopback struct {
	SampleRate float64 // pacing rate, 0 means run as fast as possible
	done       chan struct{}
}

func (d *Loopback) Start(callback func(in, out []int32)) {
	d.done = make(chan struct{})
	go func() {
		a := alloci32(BufferSize)
		b := alloci32(BufferSize)

		update := func() {
			callback(a, b)
			a, b = b, a
		}

		if d.SampleRate == 0 {
			for {
				select {
				case <-d.done:
					return
				default:
					update()
				}
			}
		}

		ticker := time.NewTicker(time.Second * BufferSize / time.Duration(d.SampleRate))
		defer ticker.Stop()
		for {
			select {
			case <-d.done:
				return
			case <-ticker.C:
				update()
			}
		}
	}()
}

func (d *Loopback) Stop() {
	close(d.done)
}
