// Package node implements the gateway's runtime pipeline: a graph of
// goroutines ("nodes") that lift DIS⇄C-DIS codec calls over channels of
// bytes, wired together from a config.Pipeline. Modeled on the teacher's
// Server.Start/handleConnection goroutine-per-connection loop and its
// periodicROAUpdater ticker, translated from one listener fanning out to
// per-client goroutines into a fixed graph of long-lived node goroutines.
package node

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Command is sent on a node's command channel to control its lifecycle.
type Command int

const (
	// Quit tells a node to stop its select loop and return.
	Quit Command = iota
)

// broadcastCapacity bounds every node's outgoing fan-out channel (spec.md
// §5: a full subscriber drops the message rather than blocking the
// producer).
const broadcastCapacity = 256

// Broadcast is a bounded multi-producer multi-consumer fan-out of []byte
// messages. A Publish to a subscriber whose channel is full is dropped for
// that subscriber and counted in Publish's return value rather than
// blocking the publisher.
type Broadcast struct {
	subs []chan []byte
}

// NewBroadcast returns an empty Broadcast with no subscribers.
func NewBroadcast() *Broadcast { return &Broadcast{} }

// Subscribe returns a new receive channel that will see every future
// Publish call.
func (b *Broadcast) Subscribe() <-chan []byte {
	ch := make(chan []byte, broadcastCapacity)
	b.subs = append(b.subs, ch)
	return ch
}

// Publish fans msg out to every subscriber, reporting how many subscribers
// had a full channel and therefore dropped the message.
func (b *Broadcast) Publish(msg []byte) (dropped int) {
	for _, ch := range b.subs {
		select {
		case ch <- msg:
		default:
			dropped++
		}
	}
	return dropped
}

// Processor converts one inbound message into zero or more outbound
// messages. Each node type (dis_receiver, cdis_sender, udp_in, ...)
// supplies one; errors are counted in node Stats and logged, never fatal
// to the node's loop.
type Processor func(msg []byte) ([][]byte, error)

// Node is one running goroutine in the pipeline: it reads from In, converts
// each message with Process, and publishes the results on Out.
type Node struct {
	Name    string
	In      <-chan []byte
	Out     *Broadcast
	Process Processor

	Stats *Stats

	statsAggregate time.Duration
	statsOutput    time.Duration
}

// NewNode builds a Node with the default stats intervals (1s aggregate,
// 10s log output), mirroring the teacher's 5-minute ROA refresh ticker
// scaled down to a per-message runtime cadence.
func NewNode(name string, in <-chan []byte, out *Broadcast, process Processor) *Node {
	return &Node{
		Name:           name,
		In:             in,
		Out:            out,
		Process:        process,
		Stats:          NewStats(name),
		statsAggregate: time.Second,
		statsOutput:    10 * time.Second,
	}
}

// Run drives the node's select loop until ctx is done or a Quit command
// arrives on cmdCh: inbound messages are processed and published, and two
// tickers aggregate and periodically log statistics — the node-runtime
// analogue of the teacher's Server.periodicROAUpdater.
func (n *Node) Run(ctx context.Context, cmdCh <-chan Command, logger *zap.SugaredLogger) {
	aggregateTicker := time.NewTicker(n.statsAggregate)
	defer aggregateTicker.Stop()
	outputTicker := time.NewTicker(n.statsOutput)
	defer outputTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-cmdCh:
			if !ok || cmd == Quit {
				return
			}
		case msg, ok := <-n.In:
			if !ok {
				return
			}
			n.Stats.incoming()
			outs, err := n.Process(msg)
			if err != nil {
				n.Stats.error()
				logger.Warnf("node %s: %v", n.Name, err)
				continue
			}
			for _, out := range outs {
				dropped := n.Out.Publish(out)
				n.Stats.outgoing()
				if dropped > 0 {
					n.Stats.addDropped(dropped)
				}
			}
		case <-aggregateTicker.C:
			n.Stats.aggregate()
		case <-outputTicker.C:
			n.Stats.log(logger)
		}
	}
}
