//go:build windows

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
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

// PlatformRegistry returns the registry for the current platform.
func PlatformRegistry() Registry {
	return WindowsRegistry{}
}

// WindowsRegistry reads values from the real Windows registry. The games
// supported here are 32-bit era titles, so lookups go through the 32-bit
// registry view.
type WindowsRegistry struct{}

func (WindowsRegistry) ReadPathValue(value RegistryValue) (string, bool) {
	hive, ok := rootKey(value.Hive)
	if !ok {
		log.Warn().Str("hive", value.Hive).Msg("unsupported registry hive")
		return "", false
	}

	key, err := registry.OpenKey(hive, value.Key, registry.QUERY_VALUE|registry.WOW64_32KEY)
	if err != nil {
		return "", false
	}

	path, _, err := key.GetStringValue(value.ValueName)
	if closeErr := key.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("error closing registry key")
	}
	if err != nil {
		return "", false
	}

	return path, true
}

func rootKey(hive string) (registry.Key, bool) {
	switch hive {
	case HiveLocalMachine:
		return registry.LOCAL_MACHINE, true
	case HiveCurrentUser:
		return registry.CURRENT_USER, true
	default:
		return 0, false
	}
}
