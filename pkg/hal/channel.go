// Package hal provides the byte-exchange channel used to talk to the chip.
// The register model never opens hardware itself; it only needs something
// that can clock a frame out and the same number of bytes back in.
package hal

// Channel is a blocking, full-duplex byte exchange with the chip. Transfer
// clocks tx out and returns the bytes clocked in, one per byte sent, in FIFO
// order on a single logical connection. Errors are the transport's own and
// are propagated opaquely; callers must not interpret them.
type Channel interface {
	Transfer(tx []byte) ([]byte, error)
	Close() error
}
