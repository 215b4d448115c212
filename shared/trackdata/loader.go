package trackdata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupProps       = "Props"
)

// Load parses a TMX track. One tile is one world unit. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*TrackData, error) {
	trackMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if trackMap.TileWidth <= 0 || trackMap.TileHeight <= 0 {
		return nil, fmt.Errorf("track %s: tile size must be positive", tmxPath)
	}

	tileW := float64(trackMap.TileWidth)
	tileH := float64(trackMap.TileHeight)
	data := &TrackData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(trackMap.Width),
		Length: float64(trackMap.Height),
	}
	heightPx := float64(trackMap.Height) * tileH

	// Tiled Y grows down, the runner goes up the map
	toWorld := func(px, py float64) (x, z float64) {
		return px/tileW - data.Width/2, (heightPx - py) / tileH
	}

	spawnFound := false
	for _, og := range trackMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			x, z := toWorld(o.X, o.Y)
			data.Spawn = Spawn{X: x, Y: o.Properties.GetFloat("height"), Z: z}
			data.LaneDistance = o.Properties.GetFloat("laneDistance")
			spawnFound = true
		case GroupProps:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = o.Name
				}
				x, z := toWorld(o.X, o.Y+o.Height)
				data.Props = append(data.Props, Prop{
					Kind: kind,
					X:    x,
					Z:    z,
					W:    o.Width / tileW,
					L:    o.Height / tileH,
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("track %s: missing %s object", tmxPath, GroupPlayerSpawn)
	}
	if data.LaneDistance < 0 {
		return nil, fmt.Errorf("track %s: laneDistance must not be negative", tmxPath)
	}

	sort.Slice(data.Props, func(i, j int) bool {
		return data.Props[i].Z < data.Props[j].Z
	})

	return data, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*TrackData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	tracks := make(map[string]*TrackData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		tracks[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return tracks, names, nil
}
