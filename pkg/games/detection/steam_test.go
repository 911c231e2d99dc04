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
	"testing"

	"github.com/LoadstoneProject/loadstone-core/pkg/games"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLibraryFolders(t *testing.T, fsys afero.Fs, steamAppsDir string, libraryPaths ...string) {
	t.Helper()

	content := "\"libraryfolders\"\n{\n"
	for i, path := range libraryPaths {
		content += "\t\"" + string(rune('0'+i)) + "\"\n\t{\n\t\t\"path\"\t\t\"" + path + "\"\n\t}\n"
	}
	content += "}\n"

	require.NoError(t, fsys.MkdirAll(steamAppsDir, 0o750))
	require.NoError(t, afero.WriteFile(fsys, steamAppsDir+"/libraryfolders.vdf", []byte(content), 0o600))
}

func writeAppManifest(t *testing.T, fsys afero.Fs, libraryPath, appID, installDir string) {
	t.Helper()

	content := "\"AppState\"\n{\n" +
		"\t\"appid\"\t\t\"" + appID + "\"\n" +
		"\t\"installdir\"\t\t\"" + installDir + "\"\n" +
		"}\n"

	path := libraryPath + "/steamapps/appmanifest_" + appID + ".acf"
	require.NoError(t, fsys.MkdirAll(libraryPath+"/steamapps", 0o750))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o600))
}

func TestFindSteamInstalls(t *testing.T) {
	t.Parallel()

	t.Run("returns_nothing_when_libraryfolders_missing", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		detector := NewDetector(fsys, fakeRegistry{}, DefaultPathValidator(fsys), nil)

		assert.Empty(t, detector.FindSteamInstalls("/steam/steamapps", games.TES4))
	})

	t.Run("returns_nothing_when_libraryfolders_invalid", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		require.NoError(t, fsys.MkdirAll("/steam/steamapps", 0o750))
		require.NoError(t, afero.WriteFile(fsys,
			"/steam/steamapps/libraryfolders.vdf", []byte("not valid vdf"), 0o600))

		detector := NewDetector(fsys, fakeRegistry{}, DefaultPathValidator(fsys), nil)

		assert.Empty(t, detector.FindSteamInstalls("/steam/steamapps", games.TES4))
	})

	t.Run("finds_install_through_app_manifest", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		writeLibraryFolders(t, fsys, "/steam/steamapps", "/library")
		writeAppManifest(t, fsys, "/library", "22330", "Oblivion")
		writeInstall(t, fsys, "/library/steamapps/common/Oblivion", "Data", "Oblivion.esm")

		detector := NewDetector(fsys, fakeRegistry{}, DefaultPathValidator(fsys), nil)

		installs := detector.FindSteamInstalls("/steam/steamapps", games.TES4)

		require.Len(t, installs, 1)
		assert.Equal(t, games.TES4, installs[0].ID)
		assert.Equal(t, SourceSteam, installs[0].Source)
		assert.Equal(t, "/library/steamapps/common/Oblivion", installs[0].InstallPath)
	})

	t.Run("skips_manifests_whose_install_fails_validation", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		writeLibraryFolders(t, fsys, "/steam/steamapps", "/library")
		writeAppManifest(t, fsys, "/library", "22330", "Oblivion")

		detector := NewDetector(fsys, fakeRegistry{}, DefaultPathValidator(fsys), nil)

		assert.Empty(t, detector.FindSteamInstalls("/steam/steamapps", games.TES4))
	})

	t.Run("searches_every_library_and_app_id", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		writeLibraryFolders(t, fsys, "/steam/steamapps", "/a", "/b")
		writeAppManifest(t, fsys, "/b", "22370", "Fallout 3 goty")
		writeInstall(t, fsys, "/b/steamapps/common/Fallout 3 goty", "Data", "Fallout3.esm")

		detector := NewDetector(fsys, fakeRegistry{}, DefaultPathValidator(fsys), nil)

		installs := detector.FindSteamInstalls("/steam/steamapps", games.FO3)

		require.Len(t, installs, 1)
		assert.Equal(t, games.FO3, installs[0].ID)
	})
}
