// Package snapshot turns the simulation state into render frames and
// records them for an external renderer.
package snapshot

import (
	"errors"
	"fmt"
	"io"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	"github.com/starshot/shooter/internal/world"
	"github.com/vmihailenco/msgpack/v5"
)

// Sprite is one drawable entity. Position is the bottom-left corner.
type Sprite struct {
	ID     uint64  `msgpack:"id"`
	Kind   string  `msgpack:"kind"`
	X      float32 `msgpack:"x"`
	Y      float32 `msgpack:"y"`
	Width  float32 `msgpack:"w"`
	Height float32 `msgpack:"h"`
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Tick     uint64   `msgpack:"tick"`
	Lives    uint8    `msgpack:"lives"`
	Entities []Sprite `msgpack:"entities"`
}

// Capture builds the frame for the current state. Life icons carry their
// rank in X; their screen placement is up to the renderer.
func Capture(ws *world.State) Frame {
	f := Frame{
		Tick:     ws.Tick(),
		Lives:    ws.Play.Lives(),
		Entities: make([]Sprite, 0, 1+ws.Asteroids.Len()+ws.Lasers.Len()+ws.LifeIcons.Len()),
	}

	if ship, pos := ws.Ship(); ship != nil && pos != nil {
		f.Entities = append(f.Entities, sprite(ws.ShipID(), component.KindShip, pos, ship.Width, ship.Height))
	}
	ws.Asteroids.Each(func(id ecs.EntityID, a *component.Asteroid) {
		if p, ok := ws.Positions.Get(id); ok {
			f.Entities = append(f.Entities, sprite(id, component.KindAsteroid, p, a.Width, a.Height))
		}
	})
	ecs.Each2(ws.Lasers.Store(), ws.Positions, func(id ecs.EntityID, l *component.Laser, p *component.Position) {
		f.Entities = append(f.Entities, sprite(id, component.KindLaser, p, l.Width, l.Height))
	})
	ws.LifeIcons.Store().Each(func(id ecs.EntityID, l *component.Life) {
		f.Entities = append(f.Entities, Sprite{ID: uint64(id), Kind: component.KindLife, X: float32(l.LifeNumber)})
	})
	return f
}

func sprite(id ecs.EntityID, kind string, p *component.Position, w, h float32) Sprite {
	return Sprite{ID: uint64(id), Kind: kind, X: p.X, Y: p.Y, Width: w, Height: h}
}

// Recorder appends msgpack-encoded frames to a stream.
type Recorder struct {
	enc    *msgpack.Encoder
	frames int
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

// Record encodes one frame.
func (r *Recorder) Record(f Frame) error {
	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Tick, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written.
func (r *Recorder) Frames() int { return r.frames }

// Replay decodes frames from rd until EOF, calling fn for each.
func Replay(rd io.Reader, fn func(Frame) error) error {
	dec := msgpack.NewDecoder(rd)
	for {
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode frame: %w", err)
		}
		if err := fn(f); err != nil {
			return err
		}
	}
}
