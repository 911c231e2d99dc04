// Loadstone Core
// Copyright (c) 2026 The Loadstone Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Loadstone Core.
//
// Loadstone Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Loadstone Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Loadstone Core.  If not, see <http://www.gnu.org/licenses/>.

// Package config holds the user-editable settings file: one entry per
// game the user has configured, plus global options.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/LoadstoneProject/loadstone-core/pkg/games"
	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	AppName       = "loadstone"
	CfgFile       = "config.toml"
)

// GameSettings is the user's configuration for a single game. An empty
// Path means the game's location has not been configured and must be
// discovered.
type GameSettings struct {
	Game      games.GameType `toml:"game"`
	Name      string         `toml:"name,omitempty"`
	Master    string         `toml:"master"`
	Path      string         `toml:"path,omitempty"`
	LocalPath string         `toml:"local_path,omitempty"`
}

type Values struct {
	Games        []GameSettings `toml:"games,omitempty"`
	ConfigSchema int            `toml:"config_schema"`
	DebugLogging bool           `toml:"debug_logging"`
}

// BaseDefaults has a settings entry for every supported engine family,
// named and mastered after the family's base game, with no path.
func BaseDefaults() Values {
	vals := Values{ConfigSchema: SchemaVersion}
	for _, id := range []games.GameID{
		games.TES3, games.TES4, games.TES5, games.TES5SE, games.TES5VR,
		games.FO3, games.FONV, games.FO4, games.FO4VR,
	} {
		vals.Games = append(vals.Games, GameSettings{
			Game:   games.Type(id),
			Name:   games.Name(id),
			Master: games.MasterFilename(id),
		})
	}
	return vals
}

// Dir returns the directory the settings file lives in.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Instance is a loaded settings file.
type Instance struct {
	fsys    afero.Fs
	cfgPath string
	vals    Values
	mu      sync.RWMutex
}

// NewInstance creates an Instance backed by the given filesystem and
// settings file path. An empty cfgPath uses the default location.
func NewInstance(fsys afero.Fs, cfgPath string) *Instance {
	if cfgPath == "" {
		cfgPath = filepath.Join(Dir(), CfgFile)
	}
	return &Instance{
		fsys:    fsys,
		cfgPath: cfgPath,
		vals:    BaseDefaults(),
	}
}

// Load reads the settings file. A missing file leaves the defaults in
// place and is not an error.
func (i *Instance) Load() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	data, err := afero.ReadFile(i.fsys, i.cfgPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	vals := Values{}
	if err := toml.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if vals.ConfigSchema == 0 {
		vals.ConfigSchema = SchemaVersion
	}

	i.vals = vals
	return nil
}

// Save writes the settings file, creating its directory if needed.
func (i *Instance) Save() error {
	i.mu.RLock()
	defer i.mu.RUnlock()

	data, err := toml.Marshal(&i.vals)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := i.fsys.MkdirAll(filepath.Dir(i.cfgPath), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := afero.WriteFile(i.fsys, i.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GameSettings returns a copy of every configured game entry.
func (i *Instance) GameSettings() []GameSettings {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]GameSettings, len(i.vals.Games))
	copy(out, i.vals.Games)
	return out
}

// SetGameSettings replaces the configured game entries.
func (i *Instance) SetGameSettings(settings []GameSettings) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.vals.Games = make([]GameSettings, len(settings))
	copy(i.vals.Games, settings)
}

// DebugLogging reports whether debug logging is enabled.
func (i *Instance) DebugLogging() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.vals.DebugLogging
}
