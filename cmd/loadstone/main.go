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

// Command loadstone reports every detected game install on this machine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LoadstoneProject/loadstone-core/pkg/config"
	"github.com/LoadstoneProject/loadstone-core/pkg/games"
	"github.com/LoadstoneProject/loadstone-core/pkg/games/detection"
	"github.com/LoadstoneProject/loadstone-core/pkg/helpers"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	cfgPath := flag.String("config", "", "path to the config file")
	steamApps := flag.String("steamapps", "", "path to Steam's steamapps directory")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logDir := filepath.Join(xdg.StateHome, config.AppName)
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	if err := helpers.InitLogging(logDir, []io.Writer{consoleWriter}); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error initializing logging: %v\n", err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	fsys := afero.NewOsFs()

	cfg := config.NewInstance(fsys, *cfgPath)
	if err := cfg.Load(); err != nil {
		log.Error().Err(err).Msg("error loading config")
		os.Exit(1)
	}
	if *debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	detector := detection.NewDetector(
		fsys,
		detection.PlatformRegistry(),
		detection.DefaultPathValidator(fsys),
		nil,
	)

	var installs []detection.GameInstall

	for _, gameType := range games.AllGameTypes() {
		installs = append(installs, detector.FindInstalls(gameType)...)
	}

	for _, id := range games.AllGameIDs() {
		installs = append(installs, detector.FindGogInstalls(id)...)
		if *steamApps != "" {
			installs = append(installs, detector.FindSteamInstalls(*steamApps, id)...)
		}
	}

	for _, settings := range cfg.GameSettings() {
		if settings.Path == "" {
			continue
		}
		if install, ok := detector.DetectInstall(settings); ok {
			installs = append(installs, install)
		}
	}

	if len(installs) == 0 {
		fmt.Println("no game installs found")
		return
	}

	for _, install := range installs {
		fmt.Printf("%s\t%s\t%s\n", games.Name(install.ID), install.Source, install.InstallPath)
	}
}
