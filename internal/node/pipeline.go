package node

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sw-vish/cdisgw/internal/config"
)

// Pipeline is the running node graph built from a config.Pipeline: each
// NodeSpec becomes a goroutine, each LinkSpec subscribes one node's
// Broadcast to feed another node's inbound channel.
type Pipeline struct {
	outs  map[string]*Broadcast
	cmds  []chan Command
	nodes []*Node
	udpIn []*UDPIn
	udpOut []*UDPOut

	logger *zap.SugaredLogger
}

// Build constructs a Pipeline from spec without starting any goroutines.
// Every node gets an outgoing Broadcast; links then subscribe the "to"
// node's Processor input to the "from" node's Broadcast.
func Build(spec config.Pipeline, logger *zap.SugaredLogger) (*Pipeline, error) {
	p := &Pipeline{outs: make(map[string]*Broadcast), logger: logger}

	for _, n := range spec.Nodes {
		if _, exists := p.outs[n.Name]; exists {
			return nil, fmt.Errorf("node: duplicate node name %q", n.Name)
		}
		p.outs[n.Name] = NewBroadcast()
	}

	// inputs collects, per node name, the channel its Processor (or UDPOut)
	// will read from — the union of every Broadcast it is linked "to".
	inputs := make(map[string][]<-chan []byte)
	for _, l := range spec.Links {
		from, ok := p.outs[l.From]
		if !ok {
			return nil, fmt.Errorf("node: link references unknown node %q", l.From)
		}
		if _, ok := p.outs[l.To]; !ok {
			return nil, fmt.Errorf("node: link references unknown node %q", l.To)
		}
		inputs[l.To] = append(inputs[l.To], from.Subscribe())
	}

	for _, n := range spec.Nodes {
		in := mergeChannels(inputs[n.Name])
		out := p.outs[n.Name]

		switch n.Type {
		case "dis_receiver":
			p.nodes = append(p.nodes, NewNode(n.Name, in, out, disToCdis))
		case "cdis_receiver":
			p.nodes = append(p.nodes, NewNode(n.Name, in, out, cdisToDis))
		case "dis_sender", "cdis_sender":
			p.nodes = append(p.nodes, NewNode(n.Name, in, out, passthrough))
		case "udp_in":
			p.udpIn = append(p.udpIn, NewUDPIn(n.Name, n.Params["addr"], out))
		case "udp_out":
			p.udpOut = append(p.udpOut, NewUDPOut(n.Name, n.Params["addr"], in))
		default:
			return nil, fmt.Errorf("node: unknown node type %q for node %q", n.Type, n.Name)
		}
	}

	return p, nil
}

// mergeChannels fans multiple upstream Broadcast subscriptions into a
// single channel a Node can select over. Most nodes have exactly one
// upstream link; this still handles the general case of several.
func mergeChannels(subs []<-chan []byte) <-chan []byte {
	out := make(chan []byte, broadcastCapacity)
	if len(subs) == 0 {
		close(out)
		return out
	}
	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(sub <-chan []byte) {
			defer wg.Done()
			for msg := range sub {
				out <- msg
			}
		}(sub)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Run starts every node's goroutine and blocks until ctx is canceled, then
// sends Quit to every channel-based node and waits for the UDP adapters'
// sockets to close.
func (p *Pipeline) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	for _, n := range p.nodes {
		cmdCh := make(chan Command, 1)
		p.cmds = append(p.cmds, cmdCh)
		wg.Add(1)
		go func(n *Node, cmdCh chan Command) {
			defer wg.Done()
			n.Run(ctx, cmdCh, p.logger)
		}(n, cmdCh)
	}
	for _, u := range p.udpIn {
		wg.Add(1)
		go func(u *UDPIn) {
			defer wg.Done()
			if err := u.Run(ctx, p.logger); err != nil {
				p.logger.Errorf("udp_in %s: %v", u.Name, err)
			}
		}(u)
	}
	for _, u := range p.udpOut {
		wg.Add(1)
		go func(u *UDPOut) {
			defer wg.Done()
			if err := u.Run(ctx, p.logger); err != nil {
				p.logger.Errorf("udp_out %s: %v", u.Name, err)
			}
		}(u)
	}

	<-ctx.Done()
	for _, cmdCh := range p.cmds {
		cmdCh <- Quit
	}
	wg.Wait()
	return ctx.Err()
}
