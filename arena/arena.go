// Package arena loads the playing field geometry from a Tiled TMX map:
// boundary walls, the interior the dodger may occupy, and the spawn point.
package arena

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Rect is an axis-aligned rectangle in arena coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Arena is the static geometry the scene is built from. BorderLeft and
// BorderTop are kept as the raw pixel-length strings the map declares; the
// pointer tracker parses them and owns the format validation.
type Arena struct {
	Width, Height float64
	BorderLeft    string
	BorderTop     string
	Walls         []Rect
	Interior      Rect
	SpawnX        float64
	SpawnY        float64
}

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Width:      float64(m.Width * m.TileWidth),
		Height:     float64(m.Height * m.TileHeight),
		BorderLeft: m.Properties.GetString("border-left"),
		BorderTop:  m.Properties.GetString("border-top"),
	}

	var haveInterior, haveSpawn bool
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				a.Walls = append(a.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Interior":
			for _, o := range og.Objects {
				a.Interior = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				haveInterior = true
			}
		case "Spawn":
			for _, o := range og.Objects {
				a.SpawnX, a.SpawnY = o.X, o.Y
				haveSpawn = true
			}
		}
	}

	if len(a.Walls) == 0 {
		return nil, fmt.Errorf("arena %s: no Walls object group", tmxPath)
	}
	if !haveInterior {
		return nil, fmt.Errorf("arena %s: no Interior object group", tmxPath)
	}
	if !haveSpawn {
		a.SpawnX = a.Interior.X + a.Interior.W/2
		a.SpawnY = a.Interior.Y + a.Interior.H/2
	}

	return a, nil
}
