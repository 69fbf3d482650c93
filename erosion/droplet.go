package erosion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Water volume below which a droplet counts as evaporated.
const minWaterVolume = 0.001

// Termination names the terminal state a droplet reached.
type Termination int

const (
	Flowing Termination = iota
	Evaporated
	MaxLifetimeReached
	OutOfBounds
)

func (t Termination) String() string {
	switch t {
	case Flowing:
		return "flowing"
	case Evaporated:
		return "evaporated"
	case MaxLifetimeReached:
		return "max-lifetime"
	case OutOfBounds:
		return "out-of-bounds"
	}
	return "unknown"
}

// Droplet is an ephemeral particle of water carrying sediment across the
// heightmap. Droplets never interact with each other; they compose only
// through their sequential writes to the shared grid.
type Droplet struct {
	Pos      mgl32.Vec2
	Dir      mgl32.Vec2
	Speed    float32
	Water    float32
	Sediment float32
}

// NewDroplet spawns a droplet at the given continuous position with the
// configured initial water volume and speed and no sediment.
func NewDroplet(pos mgl32.Vec2, state *State) Droplet {
	return Droplet{
		Pos:   pos,
		Speed: state.InitialSpeed,
		Water: state.InitialWaterVolume,
	}
}

// step advances the droplet by one transition of its lifecycle, mutating the
// heightmap in place. It returns Flowing while the droplet lives and a
// terminal state once it dies. Numerical edge cases (flat ground, zero
// capacity) are absorbed by clamps here, never surfaced as errors.
func (e *Eroder) step(d *Droplet) Termination {
	var state = e.state

	// Blend the downhill gradient with the previous direction; pure
	// gradient descent zig-zags cell to cell, inertia smooths the path
	// into coherent channels.
	var gradient = e.heightmap.Gradient(d.Pos.X(), d.Pos.Y())
	var dir = d.Dir.Mul(state.Inertia).Sub(gradient.Mul(1 - state.Inertia))
	if dir.Len() > 1e-6 {
		dir = dir.Normalize()
	} else {
		dir = mgl32.Vec2{}
	}
	d.Dir = dir

	var oldPos = d.Pos
	d.Pos = d.Pos.Add(dir)
	if !e.inBounds(d.Pos) {
		return OutOfBounds
	}

	var oldHeight = e.heightmap.Sample(oldPos.X(), oldPos.Y())
	var newHeight = e.heightmap.Sample(d.Pos.X(), d.Pos.Y())
	var drop = oldHeight - newHeight // positive when moving downhill

	// Carrying capacity scales with speed, water volume and the height
	// drop; MinSlope keeps it from collapsing to zero on flat ground,
	// which would trap droplets in a deposit-only loop.
	var capacity = max(drop, state.MinSlope) * d.Speed * d.Water * state.CapacityFactor

	if drop < 0 {
		// Moving uphill: drop enough sediment at the old position to fill
		// the rise, at most what the droplet carries.
		var amount = min(-drop, d.Sediment)
		d.Sediment -= amount
		e.heightmap.Deposit(oldPos.X(), oldPos.Y(), amount)
		e.totalDeposited += float64(amount)
	} else if d.Sediment > capacity {
		// Over capacity: shed a fraction of the excess.
		var amount = (d.Sediment - capacity) * state.DepositionRate
		d.Sediment -= amount
		e.heightmap.Deposit(oldPos.X(), oldPos.Y(), amount)
		e.totalDeposited += float64(amount)
	} else {
		// Under capacity and heading downhill: pick up terrain, capped at
		// the actual height difference so a single step cannot dig a pit
		// below the destination and oscillate.
		var amount = min((capacity-d.Sediment)*state.ErosionRate, drop)
		var removed = e.heightmap.Erode(oldPos.X(), oldPos.Y(), amount)
		d.Sediment += removed
		e.totalEroded += float64(removed)
	}

	var energy = max(d.Speed*d.Speed+drop*state.Gravity, 0)
	d.Speed = float32(math.Sqrt(float64(energy)))
	d.Water *= 1 - state.EvaporationRate
	if d.Water < minWaterVolume {
		return Evaporated
	}
	return Flowing
}

func (e *Eroder) inBounds(pos mgl32.Vec2) bool {
	return pos.X() >= 0 && pos.Y() >= 0 &&
		pos.X() <= float32(e.width-1) && pos.Y() <= float32(e.height-1)
}
