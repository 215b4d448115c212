package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/shared/trackdata"
)

var (
	//go:embed all:tracks
	trackFS embed.FS
)

// TrackFS exposes the embedded tracks for loaders that take an fs.FS.
func TrackFS() fs.FS {
	return trackFS
}

// TrackNames lists the embedded tracks by stem name, sorted.
func TrackNames() ([]string, error) {
	_, names, err := trackdata.LoadAll(trackFS, cfg.Track.Dir)
	return names, err
}

// LoadTrack loads an embedded track by stem name.
func LoadTrack(name string) (*trackdata.TrackData, error) {
	track, err := trackdata.Load(trackFS, path.Join(cfg.Track.Dir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", name, err)
	}
	return track, nil
}

// MustLoadTrack loads name, falling back to the default track when name is
// empty.
func MustLoadTrack(name string) *trackdata.TrackData {
	if name == "" {
		name = cfg.Track.DefaultTrack
	}
	track, err := LoadTrack(name)
	if err != nil {
		panic(err)
	}
	return track
}
