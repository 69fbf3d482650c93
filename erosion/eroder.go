// Package erosion weathers a heightmap with a droplet-based hydraulic
// erosion simulation: each droplet flows downhill, picks up terrain while it
// has spare carrying capacity and sheds it when it slows, climbs or
// evaporates.
package erosion

import (
	"errors"
	"log"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"islandsim/terrain"
)

// ErrAborted is returned by Simulate when the run is abandoned between
// droplets. The grid keeps the effect of every droplet completed so far.
var ErrAborted = errors.New("erosion: simulation aborted")

// Progress log interval, in droplets.
const logEvery = 10000

// Eroder owns the heightmap for the duration of a run and mutates it in
// place, one droplet at a time. Droplets run strictly sequentially, each to
// termination before the next spawns, so the seeded spawn sequence fully
// determines the final grid.
//
// Draw order of the spawn RNG: two Float32 calls per droplet, x then y.
type Eroder struct {
	heightmap     *terrain.HeightMap
	pristine      *terrain.HeightMap
	state         *State
	seed          int64
	rng           *rand.Rand
	width, height int
	iterations    int
	abort         chan struct{}

	totalEroded    float64
	totalDeposited float64
}

func NewEroder(heightmap *terrain.HeightMap, state *State, seed int64) (*Eroder, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	var width, height = heightmap.Dimensions()
	return &Eroder{
		heightmap: heightmap,
		pristine:  heightmap.Clone(),
		state:     state,
		seed:      seed,
		rng:       rand.New(rand.NewSource(seed)),
		width:     width,
		height:    height,
		abort:     make(chan struct{}),
	}, nil
}

func (e *Eroder) Heightmap() *terrain.HeightMap {
	return e.heightmap
}

// Iterations reports how many droplets have been simulated to termination.
func (e *Eroder) Iterations() int {
	return e.iterations
}

// TotalEroded is the summed mass removed from the grid across all droplets,
// usable as a regression oracle across runs.
func (e *Eroder) TotalEroded() float64 {
	return e.totalEroded
}

// TotalDeposited is the summed mass returned to the grid across all droplets.
func (e *Eroder) TotalDeposited() float64 {
	return e.totalDeposited
}

// Reset restores the heightmap to its pre-erosion state and rewinds the
// spawn sequence, so the next Simulate reproduces the same run.
func (e *Eroder) Reset() {
	_ = e.heightmap.CopyFrom(e.pristine)
	e.rng = rand.New(rand.NewSource(e.seed))
	e.iterations = 0
	e.totalEroded = 0
	e.totalDeposited = 0
	e.abort = make(chan struct{})
}

// Abort abandons an in-progress Simulate at the next droplet boundary. Safe
// to call from another goroutine; the grid is never left mid-droplet.
func (e *Eroder) Abort() {
	select {
	case <-e.abort:
	default:
		close(e.abort)
	}
}

// Simulate runs the configured number of droplets sequentially. It returns
// ErrAborted if the run was abandoned, nil otherwise; per-droplet
// terminations are normal outcomes, never errors.
func (e *Eroder) Simulate() error {
	for i := 0; i < e.state.DropletCount; i++ {
		select {
		case <-e.abort:
			log.Printf("erosion aborted after %d droplets", e.iterations)
			return ErrAborted
		default:
		}
		e.SimulateOne()
		if e.iterations%logEvery == 0 {
			log.Printf("%d droplets simulated", e.iterations)
		}
	}
	return nil
}

// SimulateOne spawns a single droplet at a uniformly random position and
// runs it to termination, returning how it died.
func (e *Eroder) SimulateOne() Termination {
	return e.simulateFrom(e.spawnPos())
}

func (e *Eroder) spawnPos() mgl32.Vec2 {
	return mgl32.Vec2{
		e.rng.Float32() * float32(e.width-1),
		e.rng.Float32() * float32(e.height-1),
	}
}

func (e *Eroder) simulateFrom(pos mgl32.Vec2) Termination {
	var droplet = NewDroplet(pos, e.state)
	var result = MaxLifetimeReached
	for life := 0; life < e.state.MaxDropletLifetime; life++ {
		if r := e.step(&droplet); r != Flowing {
			result = r
			break
		}
	}
	e.iterations++
	return result
}
