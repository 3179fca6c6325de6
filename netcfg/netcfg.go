// Package netcfg loads network configurations from JSON or YAML files and
// builds the topology they describe. It is deliberately thin: all cost
// semantics live in the topology package.
package netcfg

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/netsim/sim"
	"github.com/sarchlab/netsim/topology"
)

// Topology shape selectors accepted in configuration files.
const (
	ShapeFullyConnected = "FullyConnected"
	ShapeSwitch         = "Switch"
	ShapeRing           = "Ring"
	ShapeTorus2D        = "Torus2D"
	ShapeMultiDim       = "MultiDim"
)

// DimensionConfig is the on-disk form of one topology dimension.
type DimensionConfig struct {
	// Shape selects the topology of this dimension. For a Torus2D at the top
	// level, the first two dimension records give the two axes and their
	// Shape fields are ignored.
	Shape string `json:"shape" yaml:"shape"`

	NPUCount        int     `json:"npu-count" yaml:"npu-count"`
	LinkLatency     float64 `json:"link-latency" yaml:"link-latency"`
	LinkBandwidth   float64 `json:"link-bandwidth" yaml:"link-bandwidth"`
	NICLatency      float64 `json:"nic-latency" yaml:"nic-latency"`
	RouterLatency   float64 `json:"router-latency" yaml:"router-latency"`
	MemoryLatency   float64 `json:"memory-latency" yaml:"memory-latency"`
	MemoryBandwidth float64 `json:"memory-bandwidth" yaml:"memory-bandwidth"`
	MemoryScale     float64 `json:"memory-scale" yaml:"memory-scale"`
}

// NetworkConfig is the on-disk form of a whole network.
type NetworkConfig struct {
	// Shape is one of the Shape* selectors.
	Shape string `json:"shape" yaml:"shape"`

	// NPUCount is the declared total device count. It must equal the product
	// of the per-dimension counts.
	NPUCount int `json:"npus-count" yaml:"npus-count"`

	Dimensions []DimensionConfig `json:"dimensions" yaml:"dimensions"`
}

// ReadNetworkConfig deserializes a byte slice holding a network
// configuration. If dict is empty, the named file is read to acquire it.
func ReadNetworkConfig(
	filename string,
	useYAML bool,
	dict []byte,
) (*NetworkConfig, error) {
	var err error

	if len(dict) == 0 {
		dict, err = os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
	}

	cfg := NetworkConfig{}

	if useYAML {
		err = yaml.Unmarshal(dict, &cfg)
	} else {
		err = json.Unmarshal(dict, &cfg)
	}

	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// toTopologyConfig converts a dimension record, applying defaults.
func (d DimensionConfig) toTopologyConfig() topology.Config {
	scale := d.MemoryScale
	if scale == 0 {
		scale = 1
	}

	return topology.Config{
		NPUCount:        d.NPUCount,
		LinkLatency:     sim.VTimeInSec(d.LinkLatency),
		LinkBandwidth:   d.LinkBandwidth,
		NICLatency:      sim.VTimeInSec(d.NICLatency),
		RouterLatency:   sim.VTimeInSec(d.RouterLatency),
		MemoryLatency:   sim.VTimeInSec(d.MemoryLatency),
		MemoryBandwidth: d.MemoryBandwidth,
		MemoryScale:     scale,
	}
}

// Build creates the topology that the configuration describes. Structural
// problems (unknown shape, dimension-count mismatch) are reported as errors;
// invalid physical parameters panic inside the topology constructors, as any
// other programmatic misuse would.
func (c *NetworkConfig) Build() (topology.Topology, error) {
	if err := c.checkNPUCount(); err != nil {
		return nil, err
	}

	switch c.Shape {
	case ShapeFullyConnected, ShapeSwitch, ShapeRing:
		if len(c.Dimensions) != 1 {
			return nil, fmt.Errorf(
				"shape %s needs exactly 1 dimension, have %d",
				c.Shape, len(c.Dimensions))
		}
		return buildSingleDim(c.Shape, c.Dimensions[0])
	case ShapeTorus2D:
		if len(c.Dimensions) != 2 {
			return nil, fmt.Errorf(
				"shape Torus2D needs exactly 2 axis dimensions, have %d",
				len(c.Dimensions))
		}
		return topology.NewTorus2D(
			c.Dimensions[0].toTopologyConfig(),
			c.Dimensions[1].toTopologyConfig(),
		), nil
	case ShapeMultiDim:
		return c.buildMultiDim()
	default:
		return nil, fmt.Errorf("unsupported topology shape %q", c.Shape)
	}
}

func (c *NetworkConfig) checkNPUCount() error {
	if len(c.Dimensions) == 0 {
		return fmt.Errorf("network configuration has no dimensions")
	}

	product := 1
	for _, d := range c.Dimensions {
		product *= d.NPUCount
	}

	if product != c.NPUCount {
		return fmt.Errorf(
			"dimension NPU counts multiply to %d, but %d NPUs are declared",
			product, c.NPUCount)
	}

	return nil
}

func buildSingleDim(
	shape string,
	dim DimensionConfig,
) (topology.Topology, error) {
	cfg := dim.toTopologyConfig()

	switch shape {
	case ShapeFullyConnected:
		return topology.NewFullyConnected(cfg), nil
	case ShapeSwitch:
		return topology.NewSwitch(cfg), nil
	case ShapeRing:
		return topology.NewRing(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported dimension shape %q", shape)
	}
}

func (c *NetworkConfig) buildMultiDim() (topology.Topology, error) {
	dims := make([]topology.Topology, 0, len(c.Dimensions))

	for i, d := range c.Dimensions {
		if d.Shape == ShapeMultiDim {
			return nil, fmt.Errorf(
				"dimension %d: multi-dimensional topologies cannot nest", i)
		}

		dim, err := buildSingleDim(d.Shape, d)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}

		dims = append(dims, dim)
	}

	return topology.NewMultiDim(dims, c.NPUCount), nil
}
