package node

import (
	"context"
	"net"

	"go.uber.org/zap"
)

// udpMaxDatagram is large enough for the largest PDU the codec can produce
// (bitio.MTUBits bits = 1400 bytes) plus slack for a multi-PDU C-DIS
// datagram.
const udpMaxDatagram = 8192

// UDPIn listens on a UDP socket and publishes every datagram it receives,
// unmodified, to Out. The network-facing analogue of Node.Run's channel
// read — it has no inbound channel, only a socket.
type UDPIn struct {
	Name  string
	Addr  string
	Out   *Broadcast
	Stats *Stats
}

// NewUDPIn builds a UDPIn node with a fresh Stats counter.
func NewUDPIn(name, addr string, out *Broadcast) *UDPIn {
	return &UDPIn{Name: name, Addr: addr, Out: out, Stats: NewStats(name)}
}

// Run listens on Addr and fans out datagrams until ctx is canceled.
func (u *UDPIn) Run(ctx context.Context, logger *zap.SugaredLogger) error {
	conn, err := net.ListenPacket("udp", u.Addr)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	defer conn.Close()

	buf := make([]byte, udpMaxDatagram)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Warnf("udp_in %s: read: %v", u.Name, err)
			u.Stats.error()
			continue
		}
		msg := make([]byte, n)
		copy(msg, buf[:n])
		u.Stats.incoming()
		dropped := u.Out.Publish(msg)
		u.Stats.outgoing()
		if dropped > 0 {
			u.Stats.addDropped(dropped)
		}
	}
}

// UDPOut subscribes to In and writes every message it receives to Addr as a
// UDP datagram.
type UDPOut struct {
	Name  string
	Addr  string
	In    <-chan []byte
	Stats *Stats
}

// NewUDPOut builds a UDPOut node with a fresh Stats counter.
func NewUDPOut(name, addr string, in <-chan []byte) *UDPOut {
	return &UDPOut{Name: name, Addr: addr, In: in, Stats: NewStats(name)}
}

// Run dials Addr and writes every inbound message until ctx is canceled or
// In is closed.
func (u *UDPOut) Run(ctx context.Context, logger *zap.SugaredLogger) error {
	conn, err := net.Dial("udp", u.Addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-u.In:
			if !ok {
				return nil
			}
			u.Stats.incoming()
			if _, err := conn.Write(msg); err != nil {
				logger.Warnf("udp_out %s: write: %v", u.Name, err)
				u.Stats.error()
				continue
			}
			u.Stats.outgoing()
		}
	}
}
