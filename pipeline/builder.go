package pipeline

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/keshav011g/FIR-Filter-Hardware-Acc/fir"
)

// Builder can create filter cores.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	cfg    fir.Config
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithConfig sets the filter parameters.
func (b Builder) WithConfig(cfg fir.Config) Builder {
	b.cfg = cfg
	return b
}

// Build creates a core. It panics if the config is invalid; no filter
// state exists and no tick can ever run with a bad configuration.
func (b Builder) Build(name string) *Core {
	dp, err := NewDatapath(b.cfg)
	if err != nil {
		panic(err.Error())
	}

	c := &Core{dp: dp}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.in = NewPort(c, 1, 1, name+".In")
	c.out = NewPort(c, 1, 1, name+".Out")
	c.AddPort("In", c.in)
	c.AddPort("Out", c.out)

	return c
}
