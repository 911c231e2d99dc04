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

// Package games holds the reference tables for every game Loadstone
// supports: which engine family each title belongs to, its master file,
// and the store catalogue IDs used during install detection. Total
// conversions (Nehrim, Enderal) are distinct games that share an engine
// family with their base title.
package games

import "fmt"

// GameID identifies a single supported title or total-conversion variant.
type GameID string

const (
	TES3      GameID = "tes3"
	TES4      GameID = "tes4"
	Nehrim    GameID = "nehrim"
	TES5      GameID = "tes5"
	Enderal   GameID = "enderal"
	TES5SE    GameID = "tes5se"
	EnderalSE GameID = "enderalse"
	TES5VR    GameID = "tes5vr"
	FO3       GameID = "fo3"
	FONV      GameID = "fonv"
	FO4       GameID = "fo4"
	FO4VR     GameID = "fo4vr"
)

// GameType is the engine/era grouping a GameID belongs to. It selects the
// master filename and plugin format rules, so total conversions map to the
// same type as their base game.
type GameType string

const (
	TypeTES3   GameType = "tes3"
	TypeTES4   GameType = "tes4"
	TypeTES5   GameType = "tes5"
	TypeTES5SE GameType = "tes5se"
	TypeTES5VR GameType = "tes5vr"
	TypeFO3    GameType = "fo3"
	TypeFONV   GameType = "fonv"
	TypeFO4    GameType = "fo4"
	TypeFO4VR  GameType = "fo4vr"
)

// AllGameIDs lists every supported game in a fixed order.
func AllGameIDs() []GameID {
	return []GameID{
		TES3, TES4, Nehrim, TES5, Enderal, TES5SE,
		EnderalSE, TES5VR, FO3, FONV, FO4, FO4VR,
	}
}

// AllGameTypes lists every engine family in a fixed order.
func AllGameTypes() []GameType {
	return []GameType{
		TypeTES3, TypeTES4, TypeTES5, TypeTES5SE, TypeTES5VR,
		TypeFO3, TypeFONV, TypeFO4, TypeFO4VR,
	}
}

// Type returns the engine family for a game. It panics on an unrecognised
// ID because that means a new game was added without updating this table.
func Type(id GameID) GameType {
	switch id {
	case TES3:
		return TypeTES3
	case TES4, Nehrim:
		return TypeTES4
	case TES5, Enderal:
		return TypeTES5
	case TES5SE, EnderalSE:
		return TypeTES5SE
	case TES5VR:
		return TypeTES5VR
	case FO3:
		return TypeFO3
	case FONV:
		return TypeFONV
	case FO4:
		return TypeFO4
	case FO4VR:
		return TypeFO4VR
	default:
		panic(fmt.Sprintf("unrecognised game ID: %q", id))
	}
}

// MasterFilename returns the base data file whose presence validates a
// directory as a real install of the game. Panics on an unrecognised ID.
func MasterFilename(id GameID) string {
	switch id {
	case TES3:
		return "Morrowind.esm"
	case TES4:
		return "Oblivion.esm"
	case Nehrim:
		return "Nehrim.esm"
	case TES5, Enderal, TES5SE, EnderalSE, TES5VR:
		return "Skyrim.esm"
	case FO3:
		return "Fallout3.esm"
	case FONV:
		return "FalloutNV.esm"
	case FO4, FO4VR:
		return "Fallout4.esm"
	default:
		panic(fmt.Sprintf("unrecognised game ID: %q", id))
	}
}

// Name returns the display name for a game. Panics on an unrecognised ID.
func Name(id GameID) string {
	switch id {
	case TES3:
		return "TES III: Morrowind"
	case TES4:
		return "TES IV: Oblivion"
	case Nehrim:
		return "Nehrim - At Fate's Edge"
	case TES5:
		return "TES V: Skyrim"
	case Enderal:
		return "Enderal: Forgotten Stories"
	case TES5SE:
		return "TES V: Skyrim Special Edition"
	case EnderalSE:
		return "Enderal: Forgotten Stories (Special Edition)"
	case TES5VR:
		return "TES V: Skyrim VR"
	case FO3:
		return "Fallout 3"
	case FONV:
		return "Fallout: New Vegas"
	case FO4:
		return "Fallout 4"
	case FO4VR:
		return "Fallout 4 VR"
	default:
		panic(fmt.Sprintf("unrecognised game ID: %q", id))
	}
}

// SteamAppIDs returns the Steam store app IDs a game may be installed
// under. Some titles have separate app IDs for special editions.
func SteamAppIDs(id GameID) []string {
	switch id {
	case TES3:
		return []string{"22320"}
	case TES4:
		return []string{"22330", "900883"}
	case Nehrim:
		return []string{"1014940"}
	case TES5:
		return []string{"72850"}
	case Enderal:
		return []string{"933480"}
	case TES5SE:
		return []string{"489830"}
	case EnderalSE:
		return []string{"976620"}
	case TES5VR:
		return []string{"611670"}
	case FO3:
		return []string{"22300", "22370"}
	case FONV:
		return []string{"22380", "22490"}
	case FO4:
		return []string{"377160"}
	case FO4VR:
		return []string{"611660"}
	default:
		panic(fmt.Sprintf("unrecognised game ID: %q", id))
	}
}

// GogIDs returns the GOG catalogue IDs a game may be installed under, or
// nil for games that were never released on GOG.
func GogIDs(id GameID) []string {
	switch id {
	case TES3:
		return []string{"1440163901", "1435828767"}
	case TES4:
		return []string{"1458058109"}
	case Nehrim:
		return []string{"1497007810"}
	case TES5SE:
		return []string{"1711230643"}
	case EnderalSE:
		return []string{"1708684988"}
	case FO3:
		return []string{"1454315831"}
	case FONV:
		return []string{"1454587428"}
	case FO4:
		return []string{"1998527297"}
	case TES5, Enderal, TES5VR, FO4VR:
		return nil
	default:
		panic(fmt.Sprintf("unrecognised game ID: %q", id))
	}
}
