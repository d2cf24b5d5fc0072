package epdimage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bitbank2/epd-image/quant"
)

// Profile describes one e-paper panel: its native size and the output
// mode its controller expects.
type Profile struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Mode   string `toml:"mode"`
}

// ErrUnknownProfile is returned when a panel name matches neither the
// built-in catalog nor any loaded profile file.
var ErrUnknownProfile = errors.New("epdimage: unknown display profile")

// OutputMode resolves the profile's mode name.
func (p Profile) OutputMode() (quant.Mode, error) {
	return quant.ParseMode(p.Mode)
}

// Portrait reports whether the panel is taller than wide.
func (p Profile) Portrait() bool {
	return p.Width < p.Height
}

// Good Display panels supported out of the box.
var builtinProfiles = []Profile{
	{Name: "GDEW0154M10", Width: 152, Height: 152, Mode: "BW"},
	{Name: "GDEY0213B74", Width: 122, Height: 250, Mode: "BW"},
	{Name: "GDEY0266T90", Width: 152, Height: 296, Mode: "BW"},
	{Name: "GDEY027T91", Width: 176, Height: 264, Mode: "BW"},
	{Name: "GDEY037T03", Width: 240, Height: 416, Mode: "BW"},
	{Name: "GDEQ042Z21", Width: 400, Height: 300, Mode: "BWR"},
	{Name: "GDEY0579T93", Width: 792, Height: 272, Mode: "BW"},
	{Name: "GDEY075T7", Width: 800, Height: 480, Mode: "BWR"},
}

type profileFile struct {
	Profiles []Profile `toml:"profile"`
}

// LoadProfiles reads extra panel definitions from a TOML file of the
// form:
//
//	[[profile]]
//	name = "MYPANEL"
//	width = 296
//	height = 128
//	mode = "BWY"
func LoadProfiles(path string) ([]Profile, error) {
	var pf profileFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, err
	}
	for _, p := range pf.Profiles {
		if p.Name == "" || p.Width <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("epdimage: invalid profile %q", p.Name)
		}
		if _, err := p.OutputMode(); err != nil {
			return nil, err
		}
	}
	return pf.Profiles, nil
}

// FindProfile looks name up in the built-in catalog plus any extra
// profiles, case-insensitively.
func FindProfile(name string, extra []Profile) (Profile, error) {
	for _, p := range extra {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	for _, p := range builtinProfiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}
