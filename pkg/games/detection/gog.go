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

package detection

import (
	"github.com/LoadstoneProject/loadstone-core/pkg/games"
	"github.com/rs/zerolog/log"
)

// FindGogInstalls discovers installs of a game through the registry keys
// that GOG Galaxy writes, one per catalogue ID.
func (d *Detector) FindGogInstalls(id games.GameID) []GameInstall {
	var installs []GameInstall

	for _, gogID := range games.GogIDs(id) {
		value := RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\GOG.com\Games\` + gogID,
			ValueName: "path",
		}

		path, ok := d.reg.ReadPathValue(value)
		if !ok || !d.valid(games.Type(id), games.MasterFilename(id), path) {
			continue
		}

		log.Debug().
			Str("game", string(id)).
			Str("gogID", gogID).
			Str("path", path).
			Msg("found GOG install via registry")

		installs = append(installs, GameInstall{
			ID:          id,
			Source:      SourceGog,
			InstallPath: path,
		})
	}

	return installs
}
