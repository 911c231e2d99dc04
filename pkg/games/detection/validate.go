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
	"path/filepath"

	"github.com/LoadstoneProject/loadstone-core/pkg/games"
	"github.com/spf13/afero"
)

// PluginsFolderName is the data directory name under a game's install
// path. Morrowind predates the rest of the engine line and uses a
// different one.
func PluginsFolderName(gameType games.GameType) string {
	if gameType == games.TypeTES3 {
		return "Data Files"
	}
	return "Data"
}

// DefaultPathValidator builds a PathValidator that accepts a path when
// the expected master file exists in its plugins folder. Callers with a
// plugin engine should prefer its validator, which also checks the
// master file parses.
func DefaultPathValidator(fsys afero.Fs) PathValidator {
	return func(gameType games.GameType, masterFile, path string) bool {
		return exists(fsys, filepath.Join(path, PluginsFolderName(gameType), masterFile))
	}
}
