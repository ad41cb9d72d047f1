package main

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openhlx/hlxgo/internal/model"
)

// Profile seeds initial source/zone/group names into a fresh simulator: a
// declarative description of the unit applied once, before anything is
// persisted.
type Profile struct {
	Sources map[model.Identifier]string `yaml:"sources"`
	Zones   map[model.Identifier]string `yaml:"zones"`
	Groups  map[model.Identifier]string `yaml:"groups"`
}

// LoadProfile reads and parses a YAML profile file. A missing path is not
// an error: it reports (nil, nil) so an unconfigured simulator just boots
// with the generated default names.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Apply renames every source, zone, and group the profile names. An
// identifier outside the live collection's range is logged and skipped
// rather than failing the whole boot over one bad entry.
func (p *Profile) Apply(state *model.State, log *slog.Logger) {
	for id, name := range p.Sources {
		s, err := state.Sources.Get(id)
		if err != nil {
			log.Warn("hlxsimd: profile names unknown source, skipping", "id", id, "err", err)
			continue
		}
		if _, serr := s.SetName(name); serr != nil {
			log.Warn("hlxsimd: profile source name rejected, skipping", "id", id, "err", serr)
		}
	}
	for id, name := range p.Zones {
		z, err := state.Zones.Get(id)
		if err != nil {
			log.Warn("hlxsimd: profile names unknown zone, skipping", "id", id, "err", err)
			continue
		}
		if _, serr := z.SetName(name); serr != nil {
			log.Warn("hlxsimd: profile zone name rejected, skipping", "id", id, "err", serr)
		}
	}
	for id, name := range p.Groups {
		g, err := state.Groups.Get(id)
		if err != nil {
			log.Warn("hlxsimd: profile names unknown group, skipping", "id", id, "err", err)
			continue
		}
		if _, serr := g.SetName(name); serr != nil {
			log.Warn("hlxsimd: profile group name rejected, skipping", "id", id, "err", serr)
		}
	}
}
