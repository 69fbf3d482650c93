package erosion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Source is a fixed spring that trickles droplets from high terrain,
// carving river channels over repeated ticks. Flux may be fractional; whole
// droplets are released once enough stock accumulates.
type Source struct {
	Pos   mgl32.Vec2
	flux  float32
	stock float32
}

func NewSource(pos mgl32.Vec2, flux float32) *Source {
	return &Source{Pos: pos, flux: flux}
}

// Flow accrues one tick of flux and returns the number of whole droplets to
// release, keeping the fractional remainder for later ticks.
func (s *Source) Flow() int {
	s.stock += s.flux
	var drops = float32(math.Floor(float64(s.stock)))
	s.stock -= drops
	return int(drops)
}

// PlaceSources samples random positions from the eroder's spawn stream and
// keeps those above minElevation, up to count attempts. Springs only make
// sense on high ground; low terrain simply yields fewer sources.
func (e *Eroder) PlaceSources(count int, flux, minElevation float32) []*Source {
	var sources []*Source
	for i := 0; i < count; i++ {
		var pos = e.spawnPos()
		if e.heightmap.Sample(pos.X(), pos.Y()) > minElevation {
			sources = append(sources, NewSource(pos, flux))
		}
	}
	return sources
}

// SimulateSources runs the given springs for a number of ticks, releasing
// and fully simulating each due droplet in order. Like Simulate, the run is
// strictly sequential and abortable between droplets.
func (e *Eroder) SimulateSources(sources []*Source, ticks int) error {
	for t := 0; t < ticks; t++ {
		for _, source := range sources {
			for n := source.Flow(); n > 0; n-- {
				select {
				case <-e.abort:
					return ErrAborted
				default:
				}
				e.simulateFrom(source.Pos)
			}
		}
	}
	return nil
}
