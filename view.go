package main

import (
	"fmt"
	"io"

	"github.com/pthm-cable/forage/camera"
	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/game"
)

// viewer periodically draws the world as text.
type viewer struct {
	cam   *camera.Camera
	every int64
	out   io.Writer
}

func (v *viewer) draw(g *game.Game) {
	if v == nil || g.Tick()%v.every != 0 {
		return
	}
	snap := g.Snapshot()
	fmt.Fprintf(v.out, "step %d generation %d age %d\n%s\n",
		g.Tick(), snap.Generation, snap.Age, v.cam.Render(sprites(snap)))
}

// sprites places foods first so animals standing on them stay visible.
func sprites(snap game.Snapshot) []camera.Sprite {
	out := make([]camera.Sprite, 0, len(snap.Foods)+len(snap.Animals))
	for _, f := range snap.Foods {
		out = append(out, camera.Sprite{X: f.X, Y: f.Y, Glyph: '*'})
	}
	for _, a := range snap.Animals {
		hx, hy := components.Rotation{Angle: a.Rotation}.Heading()
		out = append(out, camera.Sprite{X: a.X, Y: a.Y, Glyph: camera.HeadingGlyph(hx, hy)})
	}
	return out
}
