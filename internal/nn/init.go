package nn

import (
	"math"
	"math/rand"
)

// Initializer fills freshly allocated parameters.
type Initializer interface {
	Init(p *Params)
}

// DefaultInit sets every weight and bias to 0.01.
//
// Because all hidden units start identical, they receive identical gradients
// on every step and never diverge from each other: the hidden layer behaves
// like a single unit. Use Xavier to break the symmetry.
var DefaultInit Initializer = Constant{Value: 0.01}

// Constant sets every entry of every parameter tensor to Value.
type Constant struct {
	Value float64
}

// Init implements Initializer.
func (c Constant) Init(p *Params) {
	data := p.WeightsInputHidden.Data()
	for i := range data {
		data[i] = c.Value
	}
	for i := range p.BiasHidden {
		p.BiasHidden[i] = c.Value
	}
	for i := range p.WeightsHiddenOutput {
		p.WeightsHiddenOutput[i] = c.Value
	}
	p.BiasOutput = c.Value
}

// Xavier (Glorot) initialization for weights, zero biases.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// The draw order is weights_input_hidden (row-major) then
// weights_hidden_output, so a given Seed always produces the same parameters.
type Xavier struct {
	Seed int64
}

// Init implements Initializer.
func (x Xavier) Init(p *Params) {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(x.Seed))

	bound := math.Sqrt(6.0 / float64(p.Features()+p.Hidden()))
	data := p.WeightsInputHidden.Data()
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}

	bound = math.Sqrt(6.0 / float64(p.Hidden()+1))
	for i := range p.WeightsHiddenOutput {
		p.WeightsHiddenOutput[i] = (rng.Float64()*2.0 - 1.0) * bound
	}

	for i := range p.BiasHidden {
		p.BiasHidden[i] = 0
	}
	p.BiasOutput = 0
}
