package pipeline

import (
	"sync"

	"github.com/sarchlab/akita/v4/sim"
)

// HookPosPortMsgSend marks when a message is sent out from the port.
var HookPosPortMsgSend = &sim.HookPos{Name: "Port Msg Send"}

// HookPosPortMsgRecvd marks when an inbound message arrives at the port.
var HookPosPortMsgRecvd = &sim.HookPos{Name: "Port Msg Recv"}

// streamPort is a one-reader, one-writer port with small incoming and
// outgoing buffers. The filter only ever streams one message per tick
// per direction, so there is no multi-channel machinery.
type streamPort struct {
	sim.HookableBase

	lock sync.Mutex
	name string
	comp sim.Component
	conn sim.Connection

	incomingBuf sim.Buffer
	outgoingBuf sim.Buffer
}

// NewPort creates a port for streaming samples or results.
func NewPort(
	comp sim.Component,
	incomingBufCap, outgoingBufCap int,
	name string,
) sim.Port {
	p := &streamPort{
		name: name,
		comp: comp,
	}
	p.incomingBuf = sim.NewBuffer(name+".IncomingBuf", incomingBufCap)
	p.outgoingBuf = sim.NewBuffer(name+".OutgoingBuf", outgoingBufCap)

	return p
}

func (p *streamPort) Name() string {
	return p.name
}

func (p *streamPort) AsRemote() sim.RemotePort {
	return sim.RemotePort(p.name)
}

func (p *streamPort) SetConnection(conn sim.Connection) {
	if p.conn != nil && p.conn != conn {
		panic("connection already set on port " + p.name)
	}
	p.conn = conn
}

func (p *streamPort) Component() sim.Component {
	return p.comp
}

// CanSend checks if the port can send a message without error.
func (p *streamPort) CanSend() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.outgoingBuf.CanPush()
}

// Send is used by the owning component to send a message out.
func (p *streamPort) Send(msg sim.Msg) *sim.SendError {
	p.lock.Lock()

	p.msgMustBeValid(msg)

	if !p.outgoingBuf.CanPush() {
		p.lock.Unlock()
		return sim.NewSendError()
	}

	wasEmpty := p.outgoingBuf.Size() == 0
	p.outgoingBuf.Push(msg)

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgSend,
		Item:   msg,
	})
	p.lock.Unlock()

	if p.conn != nil && wasEmpty {
		p.conn.NotifySend()
	}

	return nil
}

// Deliver is used by the connection to hand a message to the component.
func (p *streamPort) Deliver(msg sim.Msg) *sim.SendError {
	p.lock.Lock()

	if !p.incomingBuf.CanPush() {
		p.lock.Unlock()
		return sim.NewSendError()
	}

	wasEmpty := p.incomingBuf.Size() == 0
	p.incomingBuf.Push(msg)

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRecvd,
		Item:   msg,
	})
	p.lock.Unlock()

	if p.comp != nil && wasEmpty {
		p.comp.NotifyRecv(p)
	}

	return nil
}

// RetrieveIncoming takes a message from the incoming buffer.
func (p *streamPort) RetrieveIncoming() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.incomingBuf.Pop()
	if item == nil {
		return nil
	}

	if p.conn != nil &&
		p.incomingBuf.Size() == p.incomingBuf.Capacity()-1 {
		p.conn.NotifyAvailable(p)
	}

	return item.(sim.Msg)
}

// RetrieveOutgoing takes a message from the outgoing buffer.
func (p *streamPort) RetrieveOutgoing() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.outgoingBuf.Pop()
	if item == nil {
		return nil
	}

	if p.outgoingBuf.Size() == p.outgoingBuf.Capacity()-1 && p.comp != nil {
		p.comp.NotifyPortFree(p)
	}

	return item.(sim.Msg)
}

// PeekIncoming returns the head of the incoming buffer without removing
// it.
func (p *streamPort) PeekIncoming() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.incomingBuf.Peek()
	if item == nil {
		return nil
	}

	return item.(sim.Msg)
}

// PeekOutgoing returns the head of the outgoing buffer without removing
// it.
func (p *streamPort) PeekOutgoing() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.outgoingBuf.Peek()
	if item == nil {
		return nil
	}

	return item.(sim.Msg)
}

// NotifyAvailable is called by the connection when it can accept
// messages again.
func (p *streamPort) NotifyAvailable() {
	if p.comp != nil {
		p.comp.NotifyPortFree(p)
	}
}

func (p *streamPort) msgMustBeValid(msg sim.Msg) {
	if msg == nil {
		panic("sending nil msg")
	}

	if string(msg.Meta().Src) != p.name {
		panic("sending port is not msg src")
	}

	if msg.Meta().Dst == "" {
		panic("msg dst is not given")
	}

	if msg.Meta().Src == msg.Meta().Dst {
		panic("sending back to src")
	}
}
