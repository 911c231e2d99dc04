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

package config

import (
	"testing"

	"github.com/LoadstoneProject/loadstone-core/pkg/games"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing_file_keeps_defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewInstance(afero.NewMemMapFs(), "/etc/loadstone/config.toml")

		require.NoError(t, cfg.Load())
		assert.Len(t, cfg.GameSettings(), len(games.AllGameTypes()))
		assert.False(t, cfg.DebugLogging())
	})

	t.Run("reads_configured_games", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		content := `
config_schema = 1
debug_logging = true

[[games]]
game = "tes4"
name = "Oblivion"
master = "Oblivion.esm"
path = "/games/Oblivion"
local_path = "/local/Oblivion"
`
		require.NoError(t, afero.WriteFile(fsys, "/cfg/config.toml", []byte(content), 0o600))

		cfg := NewInstance(fsys, "/cfg/config.toml")
		require.NoError(t, cfg.Load())

		settings := cfg.GameSettings()
		require.Len(t, settings, 1)
		assert.Equal(t, games.TypeTES4, settings[0].Game)
		assert.Equal(t, "/games/Oblivion", settings[0].Path)
		assert.Equal(t, "/local/Oblivion", settings[0].LocalPath)
		assert.True(t, cfg.DebugLogging())
	})

	t.Run("rejects_malformed_file", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/cfg/config.toml", []byte("not toml ["), 0o600))

		cfg := NewInstance(fsys, "/cfg/config.toml")
		assert.Error(t, cfg.Load())
	})
}

func TestInstanceSave(t *testing.T) {
	t.Parallel()

	t.Run("round_trips_game_settings", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()

		cfg := NewInstance(fsys, "/cfg/config.toml")
		cfg.SetGameSettings([]GameSettings{{
			Game:   games.TypeFONV,
			Name:   "Fallout: New Vegas",
			Master: "FalloutNV.esm",
			Path:   "/games/FalloutNV",
		}})
		require.NoError(t, cfg.Save())

		reloaded := NewInstance(fsys, "/cfg/config.toml")
		require.NoError(t, reloaded.Load())

		settings := reloaded.GameSettings()
		require.Len(t, settings, 1)
		assert.Equal(t, games.TypeFONV, settings[0].Game)
		assert.Equal(t, "/games/FalloutNV", settings[0].Path)
	})
}

func TestBaseDefaults(t *testing.T) {
	t.Parallel()

	vals := BaseDefaults()

	assert.Equal(t, SchemaVersion, vals.ConfigSchema)
	require.Len(t, vals.Games, len(games.AllGameTypes()))
	for _, settings := range vals.Games {
		assert.NotEmpty(t, settings.Master, "game %s", settings.Game)
		assert.Empty(t, settings.Path, "game %s", settings.Game)
	}
}
