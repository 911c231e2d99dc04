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

// Package loadorder transforms a game's load order into per-plugin
// derived data. The transformation runs in parallel because mappers can
// be slow, but the numbering it threads through is strictly load-order
// dependent and is computed up front on a single goroutine.
package loadorder

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Plugin is a read-only view of a loaded plugin, borrowed from the
// game's plugin collection for the duration of a Map call.
type Plugin interface {
	Name() string
	IsLightPlugin() bool
}

// GameData answers plugin lookups against a game's current state. The
// underlying collection must not be mutated while a Map call is running.
type GameData interface {
	// Plugin returns the plugin with the given name, or nil if no such
	// plugin is loaded.
	Plugin(name string) Plugin
	// IsPluginActive reports whether the named plugin is active.
	IsPluginActive(name string) bool
}

// Mapper projects one plugin to an output value. activeIndex is the
// plugin's position among active plugins of the same kind (light and
// normal plugins are numbered independently), and is nil for inactive
// plugins.
type Mapper[T any] func(plugin Plugin, activeIndex *int, isActive bool) (T, error)

type loadOrderTuple struct {
	plugin      Plugin
	activeIndex *int
	isActive    bool
}

type mapped[T any] struct {
	value T
	err   error
}

// Map applies mapper to every known plugin in loadOrder, preserving load
// order in the output. Names with no matching plugin are skipped. Mapper
// calls run concurrently; if any of them fails, Map fails with the first
// failure found in load-order position, after all calls have finished.
func Map[T any](game GameData, loadOrder []string, mapper Mapper[T]) ([]T, error) {
	// First gather all the data the mapper needs, as this is fast. The
	// running per-kind counters make this loop inherently sequential.
	tuples := make([]loadOrderTuple, 0, len(loadOrder))

	var activeLightPlugins, activeNormalPlugins int
	for _, name := range loadOrder {
		plugin := game.Plugin(name)
		if plugin == nil {
			continue
		}

		isLight := plugin.IsLightPlugin()
		isActive := game.IsPluginActive(name)

		var activeIndex *int
		if isActive {
			index := activeNormalPlugins
			if isLight {
				index = activeLightPlugins
			}
			activeIndex = &index

			if isLight {
				activeLightPlugins++
			} else {
				activeNormalPlugins++
			}
		}

		tuples = append(tuples, loadOrderTuple{
			plugin:      plugin,
			activeIndex: activeIndex,
			isActive:    isActive,
		})
	}

	// Now run the mapper over a worker pool. Each call writes to its own
	// output slot so order is preserved without locking, and failures are
	// captured in the slot instead of stopping the other workers.
	results := make([]mapped[T], len(tuples))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, tuple := range tuples {
		i, tuple := i, tuple
		g.Go(func() error {
			value, err := mapper(tuple.plugin, tuple.activeIndex, tuple.isActive)
			if err != nil {
				log.Error().
					Err(err).
					Str("plugin", tuple.plugin.Name()).
					Msg("failed to map load order data")
				results[i] = mapped[T]{err: err}
				return nil
			}
			results[i] = mapped[T]{value: value}
			return nil
		})
	}
	// Workers never return errors; failures live in their result slot.
	_ = g.Wait()

	out := make([]T, 0, len(results))
	for _, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("mapping load order data: %w", result.err)
		}
		out = append(out, result.value)
	}

	return out, nil
}
