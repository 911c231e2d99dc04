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
	"fmt"

	"github.com/LoadstoneProject/loadstone-core/pkg/games"
)

const (
	HiveLocalMachine = "HKEY_LOCAL_MACHINE"
	HiveCurrentUser  = "HKEY_CURRENT_USER"
)

// RegistryValue describes where to find a single registry string value.
type RegistryValue struct {
	Hive      string
	Key       string
	ValueName string
}

// Registry reads string values from the platform registry. Access errors
// are indistinguishable from absent values: both report false.
type Registry interface {
	ReadPathValue(value RegistryValue) (string, bool)
}

// NoopRegistry is a Registry for platforms without one. Every lookup
// reports absent.
type NoopRegistry struct{}

func (NoopRegistry) ReadPathValue(RegistryValue) (string, bool) {
	return "", false
}

// registryValue returns the generic (store-agnostic) registry entry whose
// value holds a game's install path, written by the game's own installer.
// Panics on an unrecognised game ID.
func registryValue(id games.GameID) RegistryValue {
	switch id {
	case games.TES3:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\Morrowind`,
			ValueName: "Installed Path",
		}
	case games.TES4:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\Oblivion`,
			ValueName: "Installed Path",
		}
	case games.Nehrim:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Microsoft\Windows\CurrentVersion\Uninstall\Nehrim - At Fate's Edge_is1`,
			ValueName: "InstallLocation",
		}
	case games.TES5:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\Skyrim`,
			ValueName: "Installed Path",
		}
	case games.Enderal:
		return RegistryValue{
			Hive:      HiveCurrentUser,
			Key:       `SOFTWARE\SureAI\Enderal`,
			ValueName: "Install_Path",
		}
	case games.TES5SE:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\Skyrim Special Edition`,
			ValueName: "Installed Path",
		}
	case games.EnderalSE:
		return RegistryValue{
			Hive:      HiveCurrentUser,
			Key:       `SOFTWARE\SureAI\EnderalSE`,
			ValueName: "Install_Path",
		}
	case games.TES5VR:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\Skyrim VR`,
			ValueName: "Installed Path",
		}
	case games.FO3:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\Fallout3`,
			ValueName: "Installed Path",
		}
	case games.FONV:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\FalloutNV`,
			ValueName: "Installed Path",
		}
	case games.FO4:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\Fallout4`,
			ValueName: "Installed Path",
		}
	case games.FO4VR:
		return RegistryValue{
			Hive:      HiveLocalMachine,
			Key:       `Software\Bethesda Softworks\Fallout 4 VR`,
			ValueName: "Installed Path",
		}
	default:
		panic(fmt.Sprintf("unrecognised game ID: %q", id))
	}
}
