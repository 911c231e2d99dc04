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
	"strings"

	"github.com/LoadstoneProject/loadstone-core/pkg/games"
	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
)

// FindSteamInstalls discovers installs of a game across all Steam library
// folders. steamAppsDir should point to the steamapps directory of the
// Steam install (e.g. ~/.steam/steam/steamapps). A missing or malformed
// Steam library yields no installs, not an error.
func (d *Detector) FindSteamInstalls(steamAppsDir string, id games.GameID) []GameInstall {
	var installs []GameInstall

	for _, libraryPath := range d.steamLibraryPaths(steamAppsDir) {
		for _, appID := range games.SteamAppIDs(id) {
			manifest := filepath.Join(libraryPath, "steamapps", "appmanifest_"+appID+".acf")
			installDir, ok := d.steamInstallDir(manifest)
			if !ok {
				continue
			}

			path := filepath.Join(libraryPath, "steamapps", "common", installDir)
			if !d.valid(games.Type(id), games.MasterFilename(id), path) {
				continue
			}

			log.Debug().
				Str("game", string(id)).
				Str("appID", appID).
				Str("path", path).
				Msg("found Steam library install")

			installs = append(installs, GameInstall{
				ID:          id,
				Source:      SourceSteam,
				InstallPath: path,
			})
		}
	}

	return installs
}

// steamLibraryPaths parses libraryfolders.vdf for the root paths of every
// configured Steam library.
func (d *Detector) steamLibraryPaths(steamAppsDir string) []string {
	f, err := d.fsys.Open(filepath.Join(steamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("error opening libraryfolders.vdf")
		return nil
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing libraryfolders.vdf")
		}
	}()

	p := vdf.NewParser(f)
	m, err := p.Parse()
	if err != nil {
		log.Error().Err(err).Msg("error parsing libraryfolders.vdf")
		return nil
	}
	m = normalizeVDFKeys(m)

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		log.Error().Msg("libraryfolders is not a map")
		return nil
	}

	var paths []string
	for l, v := range lfs {
		ls, ok := v.(map[string]any)
		if !ok {
			log.Error().Msgf("library %s is not a map", l)
			continue
		}

		libraryPath, ok := ls["path"].(string)
		if !ok {
			log.Error().Msgf("library %s path is not a string", l)
			continue
		}

		paths = append(paths, libraryPath)
	}

	return paths
}

// steamInstallDir reads the installdir field from an app manifest.
func (d *Detector) steamInstallDir(manifestPath string) (string, bool) {
	f, err := d.fsys.Open(manifestPath)
	if err != nil {
		return "", false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing app manifest")
		}
	}()

	p := vdf.NewParser(f)
	m, err := p.Parse()
	if err != nil {
		log.Error().Err(err).Msgf("error parsing app manifest: %s", manifestPath)
		return "", false
	}
	m = normalizeVDFKeys(m)

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		log.Error().Msgf("appstate is not a map in manifest: %s", manifestPath)
		return "", false
	}

	installDir, ok := appState["installdir"].(string)
	if !ok {
		log.Error().Msgf("installdir is not a string in manifest: %s", manifestPath)
		return "", false
	}

	return installDir, true
}

// normalizeVDFKeys lowercases all map keys recursively. VDF key casing is
// inconsistent between Steam versions.
func normalizeVDFKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}
