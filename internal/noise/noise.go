package noise

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a coherent 2D noise primitive returning values roughly in [-1, 1].
// Implementations must be pure functions of their inputs.
type Source interface {
	Noise2D(x, y float64) float64
}

// Factory builds the Source used for one biome from that biome's seed.
type Factory func(seed int64) Source

// Backend names a coherent noise implementation.
type Backend string

const (
	// BackendPerlin is the built-in hash-lattice gradient noise.
	BackendPerlin Backend = "perlin"
	// BackendClassic is Ken Perlin's reference noise from aquilax/go-perlin.
	BackendClassic Backend = "classic"
	// BackendOpenSimplex is OpenSimplex noise from ojrac/opensimplex-go.
	BackendOpenSimplex Backend = "opensimplex"
)

// Parameters handed to go-perlin. A single octave keeps the fractal
// summation in the caller.
const (
	classicAlpha   = 2
	classicBeta    = 2
	classicOctaves = 1

	// go-perlin's lattice repeats every 256 units on each axis.
	classicPeriod = 256
)

var factories = map[Backend]Factory{
	BackendPerlin: func(seed int64) Source {
		return NewPerlin(seed)
	},
	BackendClassic: func(seed int64) Source {
		return classicSource{perlin.NewPerlin(classicAlpha, classicBeta, classicOctaves, seed)}
	},
	BackendOpenSimplex: func(seed int64) Source {
		return simplexSource{opensimplex.New(seed)}
	},
}

// classicSource folds coordinates into go-perlin's first period. Its lattice
// lookup truncates toward zero and is only correct for non-negative input.
type classicSource struct {
	p *perlin.Perlin
}

func (s classicSource) Noise2D(x, y float64) float64 {
	return s.p.Noise2D(fold(x), fold(y))
}

func fold(v float64) float64 {
	v = math.Mod(v, classicPeriod)
	if v < 0 {
		v += classicPeriod
	}
	return v
}

// simplexSource adapts opensimplex.Noise to Source.
type simplexSource struct {
	n opensimplex.Noise
}

func (s simplexSource) Noise2D(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

// ParseBackend resolves a backend name case-insensitively. An empty name
// selects BackendPerlin.
func ParseBackend(name string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(name)))
	if b == "" {
		b = BackendPerlin
	}
	if _, ok := factories[b]; !ok {
		return "", fmt.Errorf("unknown noise backend %q (available: %s)", name, strings.Join(Backends(), ", "))
	}
	return b, nil
}

// NewFactory returns the Factory registered for the named backend
func NewFactory(name string) (Factory, error) {
	b, err := ParseBackend(name)
	if err != nil {
		return nil, err
	}
	return factories[b], nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(factories))
	for b := range factories {
		names = append(names, string(b))
	}
	sort.Strings(names)
	return names
}
