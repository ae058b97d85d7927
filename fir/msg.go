package fir

import "github.com/sarchlab/akita/v4/sim"

// SampleMsg carries one input sample into a filter lane.
type SampleMsg struct {
	sim.MsgMeta

	// Seq is the 0-based tick index of the sample within its stream.
	Seq uint64

	// Value is the sample, representable in the lane's data width.
	Value int64
}

// Meta returns the meta data of the msg.
func (m *SampleMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *SampleMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// SampleMsgBuilder is a factory for SampleMsg.
type SampleMsgBuilder struct {
	src, dst sim.RemotePort
	seq      uint64
	value    int64
}

// WithSrc sets the source port of the msg.
func (b SampleMsgBuilder) WithSrc(src sim.RemotePort) SampleMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b SampleMsgBuilder) WithDst(dst sim.RemotePort) SampleMsgBuilder {
	b.dst = dst
	return b
}

// WithSeq sets the tick index of the sample.
func (b SampleMsgBuilder) WithSeq(seq uint64) SampleMsgBuilder {
	b.seq = seq
	return b
}

// WithValue sets the sample value.
func (b SampleMsgBuilder) WithValue(value int64) SampleMsgBuilder {
	b.value = value
	return b
}

// Build creates a SampleMsg.
func (b SampleMsgBuilder) Build() *SampleMsg {
	return &SampleMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Seq:   b.seq,
		Value: b.value,
	}
}

// ResultMsg carries one filter output out of a lane.
type ResultMsg struct {
	sim.MsgMeta

	// Seq is the 0-based tick index the result was emitted on. Results
	// with Seq below the lane's latency are warmup values that a
	// consumer must discard.
	Seq uint64

	// Value is the full-precision convolution output.
	Value int64
}

// Meta returns the meta data of the msg.
func (m *ResultMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *ResultMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// ResultMsgBuilder is a factory for ResultMsg.
type ResultMsgBuilder struct {
	src, dst sim.RemotePort
	seq      uint64
	value    int64
}

// WithSrc sets the source port of the msg.
func (b ResultMsgBuilder) WithSrc(src sim.RemotePort) ResultMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b ResultMsgBuilder) WithDst(dst sim.RemotePort) ResultMsgBuilder {
	b.dst = dst
	return b
}

// WithSeq sets the tick index of the result.
func (b ResultMsgBuilder) WithSeq(seq uint64) ResultMsgBuilder {
	b.seq = seq
	return b
}

// WithValue sets the result value.
func (b ResultMsgBuilder) WithValue(value int64) ResultMsgBuilder {
	b.value = value
	return b
}

// Build creates a ResultMsg.
func (b ResultMsgBuilder) Build() *ResultMsg {
	return &ResultMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Seq:   b.seq,
		Value: b.value,
	}
}
