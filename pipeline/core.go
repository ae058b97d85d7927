package pipeline

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// Core wraps a Datapath in a ticking component. Samples arrive as
// fir.SampleMsg on the In port; for every accepted sample the core
// first emits the currently registered output as a fir.ResultMsg, then
// advances the datapath. Emitting before stepping keeps the result
// stream exactly latency-aligned with the sample stream: the result
// carrying sequence number t is the convolution of the history as of
// tick t-Latency.
type Core struct {
	*sim.TickingComponent

	in, out   sim.Port
	collector sim.RemotePort

	dp  *Datapath
	seq uint64
}

// Tick processes at most one sample per cycle.
func (c *Core) Tick() (madeProgress bool) {
	item := c.in.PeekIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*fir.SampleMsg)
	if !ok {
		panic("filter core expects SampleMsg on In port")
	}

	result := fir.ResultMsgBuilder{}.
		WithSrc(c.out.AsRemote()).
		WithDst(c.collector).
		WithSeq(c.seq).
		WithValue(c.dp.Output()).
		Build()

	if err := c.out.Send(result); err != nil {
		// The collector has not drained the previous result yet. Leave
		// the sample in place and retry the whole tick.
		return false
	}

	c.in.RetrieveIncoming()
	c.dp.Step(msg.Value)
	c.seq++

	Trace("FilterTick",
		"Core", c.Name(),
		"Seq", result.Seq,
		"Sample", msg.Value,
		"Output", result.Value,
	)

	return true
}

// InputPort returns the port that accepts samples.
func (c *Core) InputPort() sim.Port {
	return c.in
}

// OutputPort returns the port that emits results.
func (c *Core) OutputPort() sim.Port {
	return c.out
}

// SetCollector sets the remote port that receives the result stream.
func (c *Core) SetCollector(port sim.RemotePort) {
	c.collector = port
}

// Reset clears all pipeline registers and restarts result numbering.
func (c *Core) Reset() {
	c.dp.Reset()
	c.seq = 0
}

// Config returns the filter parameters the core was built with.
func (c *Core) Config() fir.Config {
	return c.dp.Config()
}

// Datapath exposes the underlying registers for inspection.
func (c *Core) Datapath() *Datapath {
	return c.dp
}
