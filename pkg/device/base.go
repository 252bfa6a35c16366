package device

// Device is a mono sample-synchronous audio endpoint. Start invokes
// the callback once per buffer period with the captured input and a
// writable output buffer; Stop tears the stream down.
type Device interface {
	Start(callback func(in, out []int32))
	Stop()
}

const BufferSize = 512
