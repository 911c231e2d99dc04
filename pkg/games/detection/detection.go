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

// Package detection finds game installs on the local machine and works out
// which store they came from. Detection is purely local: marker files in
// the install directory plus a handful of registry values. No store APIs
// are ever called.
package detection

import (
	"fmt"
	"path/filepath"

	"github.com/LoadstoneProject/loadstone-core/pkg/config"
	"github.com/LoadstoneProject/loadstone-core/pkg/games"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// InstallSource is the store that produced a game install.
type InstallSource string

const (
	SourceSteam     InstallSource = "steam"
	SourceGog       InstallSource = "gog"
	SourceEpic      InstallSource = "epic"
	SourceMicrosoft InstallSource = "microsoft"
	SourceUnknown   InstallSource = "unknown"
)

// GameInstall is a single detected install of a game. LocalDataPath is
// only set when the install came from user-configured settings.
type GameInstall struct {
	ID            games.GameID
	Source        InstallSource
	InstallPath   string
	LocalDataPath string
}

// PathValidator reports whether path holds a valid install of the given
// game type with the given master file. The check is provided by the
// plugin engine, not this package.
type PathValidator func(gameType games.GameType, masterFile, path string) bool

// Detector wires together the capabilities install detection depends on.
type Detector struct {
	fsys  afero.Fs
	reg   Registry
	valid PathValidator

	// siblingPath is the directory checked by the sibling scan. It
	// defaults to the parent of the working directory, which covers the
	// common case of the tool being installed inside a game directory.
	siblingPath string
}

// DetectorOpts adjusts optional Detector behaviour.
type DetectorOpts struct {
	// SiblingPath overrides the directory used by the sibling scan.
	SiblingPath string
}

// NewDetector creates a Detector over the given filesystem, registry and
// path validator capabilities.
func NewDetector(fsys afero.Fs, reg Registry, valid PathValidator, opts *DetectorOpts) *Detector {
	d := &Detector{
		fsys:        fsys,
		reg:         reg,
		valid:       valid,
		siblingPath: "..",
	}
	if opts != nil && opts.SiblingPath != "" {
		d.siblingPath = opts.SiblingPath
	}
	return d
}

// ResolveID maps an engine family plus install path to a concrete game.
// Total conversions ship their own launcher executable, so its presence
// in the install directory distinguishes them from the base game. Panics
// on an unrecognised game type.
func ResolveID(fsys afero.Fs, gameType games.GameType, installPath string) games.GameID {
	switch gameType {
	case games.TypeTES3:
		return games.TES3
	case games.TypeTES4:
		if exists(fsys, filepath.Join(installPath, "NehrimLauncher.exe")) {
			return games.Nehrim
		}
		return games.TES4
	case games.TypeTES5:
		if exists(fsys, filepath.Join(installPath, "Enderal Launcher.exe")) {
			return games.Enderal
		}
		return games.TES5
	case games.TypeTES5SE:
		if exists(fsys, filepath.Join(installPath, "Enderal Launcher.exe")) {
			return games.EnderalSE
		}
		return games.TES5SE
	case games.TypeTES5VR:
		return games.TES5VR
	case games.TypeFO3:
		return games.FO3
	case games.TypeFONV:
		return games.FONV
	case games.TypeFO4:
		return games.FO4
	case games.TypeFO4VR:
		return games.FO4VR
	default:
		panic(fmt.Sprintf("unrecognised game type: %q", gameType))
	}
}

// IsSteamInstall reports whether the install at path came from Steam.
// Panics on an unrecognised game ID.
func IsSteamInstall(fsys afero.Fs, id games.GameID, installPath string) bool {
	switch id {
	case games.TES3:
		return exists(fsys, filepath.Join(installPath, "steam_autocloud.vdf"))
	case games.Nehrim:
		return exists(fsys, filepath.Join(installPath, "steam_api.dll"))
	case games.TES5, games.TES5VR, games.FO4VR:
		// Only released on Steam.
		return true
	case games.TES4, games.TES5SE, games.Enderal, games.EnderalSE,
		games.FO3, games.FONV, games.FO4:
		// Most games have an installscript.vdf file in their Steam install.
		return exists(fsys, filepath.Join(installPath, "installscript.vdf"))
	default:
		panic(fmt.Sprintf("unrecognised game ID: %q", id))
	}
}

// IsGogInstall reports whether the install at path came from GOG, going by
// the icon file GOG's installer drops next to the game.
func IsGogInstall(fsys afero.Fs, id games.GameID, installPath string) bool {
	for _, gogID := range games.GogIDs(id) {
		iconPath := filepath.Join(installPath, "goggame-"+gogID+".ico")
		if exists(fsys, iconPath) {
			return true
		}
	}
	return false
}

// IsEpicInstall reports whether the install at path came from the Epic
// Games Store.
func IsEpicInstall(fsys afero.Fs, installPath string) bool {
	return exists(fsys, filepath.Join(installPath, ".egstore"))
}

// IsMicrosoftInstall reports whether the install at path came from the
// Microsoft Store.
func IsMicrosoftInstall(fsys afero.Fs, installPath string) bool {
	return exists(fsys, filepath.Join(installPath, "appxmanifest.xml"))
}

// classifySource runs the full store priority list. Marker files are not
// mutually exclusive, so the order here is load-bearing: Steam wins over
// GOG, which wins over Epic, which wins over Microsoft.
func classifySource(fsys afero.Fs, id games.GameID, installPath string) InstallSource {
	if IsSteamInstall(fsys, id, installPath) {
		return SourceSteam
	}
	if IsGogInstall(fsys, id, installPath) {
		return SourceGog
	}
	if IsEpicInstall(fsys, installPath) {
		return SourceEpic
	}
	if IsMicrosoftInstall(fsys, installPath) {
		return SourceMicrosoft
	}
	return SourceUnknown
}

// FindInstalls discovers installs of the given game family from the
// sibling directory and the family's generic registry entries. Both
// candidates are independent and both may be returned, including when
// they point at the same directory: de-duplication is the caller's job.
func (d *Detector) FindInstalls(gameType games.GameType) []GameInstall {
	var installs []GameInstall

	if install, ok := d.findSiblingInstall(gameType); ok {
		installs = append(installs, install)
	}

	if install, ok := d.findRegistryInstall(gameType); ok {
		installs = append(installs, install)
	}

	return installs
}

// isValidFamilyPath checks a candidate path against every master file
// known to the family, base game first. Total conversions carry their own
// master file, so validating against the base master alone would miss
// them.
func (d *Detector) isValidFamilyPath(gameType games.GameType, path string) bool {
	for _, id := range familyCandidates(gameType) {
		if d.valid(gameType, games.MasterFilename(id), path) {
			return true
		}
	}
	return false
}

func (d *Detector) findSiblingInstall(gameType games.GameType) (GameInstall, bool) {
	path := d.siblingPath
	if !d.isValidFamilyPath(gameType, path) {
		return GameInstall{}, false
	}

	id := ResolveID(d.fsys, gameType, path)
	log.Debug().
		Str("game", string(id)).
		Str("path", path).
		Msg("found sibling game install")

	return GameInstall{
		ID:          id,
		Source:      classifySource(d.fsys, id, path),
		InstallPath: path,
	}, true
}

func (d *Detector) findRegistryInstall(gameType games.GameType) (GameInstall, bool) {
	for _, candidate := range familyCandidates(gameType) {
		path, ok := d.reg.ReadPathValue(registryValue(candidate))
		if !ok || !d.valid(gameType, games.MasterFilename(candidate), path) {
			continue
		}

		id := ResolveID(d.fsys, gameType, path)
		log.Debug().
			Str("game", string(id)).
			Str("path", path).
			Msg("found game install via registry")

		// The generic registry keys are not written by Epic or the
		// Microsoft Store, so anything other than Steam and GOG is
		// unknown here.
		source := SourceUnknown
		if IsSteamInstall(d.fsys, id, path) {
			source = SourceSteam
		} else if IsGogInstall(d.fsys, id, path) {
			source = SourceGog
		}

		return GameInstall{
			ID:          id,
			Source:      source,
			InstallPath: path,
		}, true
	}

	return GameInstall{}, false
}

// DetectInstall checks whether user-configured settings resolve to an
// installed game, and if so detects its concrete ID and install source.
// The configured local data path is carried over onto the result.
func (d *Detector) DetectInstall(settings config.GameSettings) (GameInstall, bool) {
	if !d.valid(settings.Game, settings.Master, settings.Path) {
		return GameInstall{}, false
	}

	id := ResolveID(d.fsys, settings.Game, settings.Path)

	return GameInstall{
		ID:            id,
		Source:        classifySource(d.fsys, id, settings.Path),
		InstallPath:   settings.Path,
		LocalDataPath: settings.LocalPath,
	}, true
}

// familyCandidates lists the games of an engine family, base game first.
// Panics on an unrecognised game type.
func familyCandidates(gameType games.GameType) []games.GameID {
	switch gameType {
	case games.TypeTES3:
		return []games.GameID{games.TES3}
	case games.TypeTES4:
		return []games.GameID{games.TES4, games.Nehrim}
	case games.TypeTES5:
		return []games.GameID{games.TES5, games.Enderal}
	case games.TypeTES5SE:
		return []games.GameID{games.TES5SE, games.EnderalSE}
	case games.TypeTES5VR:
		return []games.GameID{games.TES5VR}
	case games.TypeFO3:
		return []games.GameID{games.FO3}
	case games.TypeFONV:
		return []games.GameID{games.FONV}
	case games.TypeFO4:
		return []games.GameID{games.FO4}
	case games.TypeFO4VR:
		return []games.GameID{games.FO4VR}
	default:
		panic(fmt.Sprintf("unrecognised game type: %q", gameType))
	}
}

// exists reports whether a path exists, treating access errors the same
// as absence.
func exists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
