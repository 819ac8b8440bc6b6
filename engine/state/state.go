// Package state manages the immutable game definitions and the mutable
// runtime state of a play session.
package state

import (
	"strings"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// Defs holds the immutable game definitions loaded from Lua.
type Defs struct {
	Game     types.GameDef
	Scenes   map[string]types.SceneDef
	Items    map[string]types.ItemDef
	Puzzles  map[string]types.PuzzleConfig
	Strings  map[string]map[string]string // language → key → template
	Handlers []types.EventHandler
}

// NewState creates a fresh game state positioned at the start scene.
func NewState(defs *Defs) *types.State {
	return &types.State{
		Scene:     defs.Game.Start,
		Inventory: []string{},
		Flags:     map[string]bool{},
		Solved:    map[string]bool{},
		Revealed:  map[string]bool{},
		ClickLog:  []string{},
	}
}

// GetFlag returns the value of a flag. Unset flags return false.
func GetFlag(s *types.State, name string) bool {
	return s.Flags[name]
}

// HasItem returns true if the given item is in the inventory.
func HasItem(s *types.State, itemID string) bool {
	for _, id := range s.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// IsSolved returns true if the given puzzle has been solved this session.
func IsSolved(s *types.State, puzzleID string) bool {
	return s.Solved[puzzleID]
}

// visibilityKey addresses a hotspot's runtime visibility override.
func visibilityKey(sceneID, hotspotID string) string {
	return sceneID + "/" + hotspotID
}

// SetRevealed overrides a hotspot's visibility at runtime.
func SetRevealed(s *types.State, sceneID, hotspotID string, visible bool) {
	s.Revealed[visibilityKey(sceneID, hotspotID)] = visible
}

// HotspotVisible reports the effective visibility of a hotspot: the runtime
// override when present, otherwise the definition's Hidden flag.
func HotspotVisible(s *types.State, def types.HotspotDef, sceneID string) bool {
	if v, ok := s.Revealed[visibilityKey(sceneID, def.ID)]; ok {
		return v
	}
	return !def.Hidden
}

// VisibleHotspots returns the hotspots of a scene the player can currently
// interact with, in definition order.
func VisibleHotspots(s *types.State, defs *Defs, sceneID string) []types.HotspotDef {
	scene, ok := defs.Scenes[sceneID]
	if !ok {
		return nil
	}
	var visible []types.HotspotDef
	for _, h := range scene.Hotspots {
		if HotspotVisible(s, h, sceneID) {
			visible = append(visible, h)
		}
	}
	return visible
}

// FindHotspot resolves a hotspot in a scene by ID or case-insensitive name.
func FindHotspot(defs *Defs, sceneID, nameOrID string) (types.HotspotDef, bool) {
	scene, ok := defs.Scenes[sceneID]
	if !ok {
		return types.HotspotDef{}, false
	}
	for _, h := range scene.Hotspots {
		if h.ID == nameOrID {
			return h, true
		}
	}
	for _, h := range scene.Hotspots {
		if strings.EqualFold(h.Name, nameOrID) {
			return h, true
		}
	}
	return types.HotspotDef{}, false
}
