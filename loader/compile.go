package loader

import (
	"fmt"

	"github.com/raven2cz/escape-game-engine-sub001/engine/state"
	"github.com/raven2cz/escape-game-engine-sub001/types"
	lua "github.com/yuin/gopher-lua"
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// toGoValue converts a Lua value to a Go value recursively.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case *lua.LNilType:
		return nil
	case lua.LString:
		return string(val)
	case *lua.LTable:
		// Array (sequential integer keys starting at 1) or map.
		maxN := val.MaxN()
		if maxN > 0 {
			arr := make([]any, 0, maxN)
			for i := 1; i <= maxN; i++ {
				arr = append(arr, toGoValue(val.RawGetInt(i)))
			}
			return arr
		}
		m := map[string]any{}
		val.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = toGoValue(v)
			}
		})
		return m
	default:
		return nil
	}
}

// tableToStringMap converts a Lua table to a map[string]string.
func tableToStringMap(tbl *lua.LTable) map[string]string {
	if tbl == nil {
		return nil
	}
	m := map[string]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if vs, ok := v.(lua.LString); ok {
				m[string(ks)] = string(vs)
			}
		}
	})
	return m
}

// tableToStringSlice converts a Lua array table to a []string.
func tableToStringSlice(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{
		Scenes:  map[string]types.SceneDef{},
		Items:   map[string]types.ItemDef{},
		Puzzles: map[string]types.PuzzleConfig{},
		Strings: map[string]map[string]string{},
	}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs.Game = compileGame(coll.game)

	for _, raw := range coll.scenes {
		scene, err := compileScene(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling scene %s: %w", raw.id, err)
		}
		defs.Scenes[scene.ID] = scene
	}

	for _, raw := range coll.items {
		defs.Items[raw.id] = types.ItemDef{
			ID:          raw.id,
			Name:        getString(raw.table, "name"),
			Description: getString(raw.table, "description"),
			Icon:        getString(raw.table, "icon"),
		}
	}

	for _, raw := range coll.puzzles {
		cfg, err := compilePuzzle(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling puzzle %s: %w", raw.id, err)
		}
		defs.Puzzles[cfg.ID] = cfg
	}

	for _, raw := range coll.strings {
		tbl := defs.Strings[raw.lang]
		if tbl == nil {
			tbl = map[string]string{}
			defs.Strings[raw.lang] = tbl
		}
		for k, v := range tableToStringMap(raw.table) {
			tbl[k] = v
		}
	}

	for _, raw := range coll.handlers {
		handler := types.EventHandler{EventType: raw.eventType}
		if condTbl := getTable(raw.table, "conditions"); condTbl != nil {
			handler.Conditions = compileConditions(condTbl)
		}
		if effTbl := getTable(raw.table, "effects"); effTbl != nil {
			handler.Effects = compileEffects(effTbl)
		}
		defs.Handlers = append(defs.Handlers, handler)
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:    getString(tbl, "title"),
		Author:   getString(tbl, "author"),
		Version:  getString(tbl, "version"),
		Start:    getString(tbl, "start"),
		Intro:    getString(tbl, "intro"),
		Assets:   getString(tbl, "assets"),
		Language: getString(tbl, "language"),
	}
}

func compileScene(raw rawScene) (types.SceneDef, error) {
	tbl := raw.table
	scene := types.SceneDef{
		ID:          raw.id,
		Title:       getString(tbl, "title"),
		Description: getString(tbl, "description"),
		Background:  getString(tbl, "background"),
	}

	if hotspots := getTable(tbl, "hotspots"); hotspots != nil {
		for i := 1; i <= hotspots.MaxN(); i++ {
			hsTbl, ok := hotspots.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			hs, err := compileHotspot(hsTbl)
			if err != nil {
				return scene, err
			}
			scene.Hotspots = append(scene.Hotspots, hs)
		}
	}
	return scene, nil
}

func compileHotspot(tbl *lua.LTable) (types.HotspotDef, error) {
	hs := types.HotspotDef{
		ID:     getString(tbl, "id"),
		Name:   getString(tbl, "name"),
		Hidden: getBool(tbl, "hidden", false),
		Rect:   compileRect(getTable(tbl, "rect")),
	}
	if hs.ID == "" {
		return hs, fmt.Errorf("hotspot without id")
	}
	if reqTbl := getTable(tbl, "requires"); reqTbl != nil {
		hs.Requires = compileConditions(reqTbl)
	}
	if effTbl := getTable(tbl, "effects"); effTbl != nil {
		hs.Effects = compileEffects(effTbl)
	}
	if useTbl := getTable(tbl, "use_item"); useTbl != nil {
		hs.ItemEffects = map[string][]types.Effect{}
		useTbl.ForEach(func(k, v lua.LValue) {
			ks, ok := k.(lua.LString)
			if !ok {
				return
			}
			if effTbl, ok := v.(*lua.LTable); ok {
				hs.ItemEffects[string(ks)] = compileEffects(effTbl)
			}
		})
	}
	return hs, nil
}

func compileRect(tbl *lua.LTable) types.Rect {
	if tbl == nil {
		return types.Rect{}
	}
	return types.Rect{
		X: getInt(tbl, "x"),
		Y: getInt(tbl, "y"),
		W: getInt(tbl, "w"),
		H: getInt(tbl, "h"),
	}
}

// compilePuzzle maps the polymorphic Lua puzzle table onto the typed
// config. The solution field may be a string (phrase/code) or a table
// (match/group/cloze maps); solutions is always an array.
func compilePuzzle(raw rawPuzzle) (types.PuzzleConfig, error) {
	tbl := raw.table
	cfg := types.PuzzleConfig{
		ID:          raw.id,
		Kind:        getString(tbl, "kind"),
		Title:       getString(tbl, "title"),
		Prompt:      getString(tbl, "prompt"),
		Text:        getString(tbl, "text"),
		Layout:      getString(tbl, "layout"),
		Direction:   getString(tbl, "direction"),
		MultiSelect: getBool(tbl, "multi_select", false),
		Background:  getString(tbl, "background"),
		Seed:        int64(getInt(tbl, "seed")),
	}
	if cfg.Kind == "" {
		return cfg, fmt.Errorf("puzzle without kind")
	}

	switch sol := tbl.RawGetString("solution").(type) {
	case lua.LString:
		cfg.Solution = string(sol)
	case lua.LNumber:
		cfg.Solution = sol.String()
	case *lua.LTable:
		cfg.SolutionMap = tableToStringMap(sol)
	}

	cfg.Solutions = tableToStringSlice(getTable(tbl, "solutions"))
	cfg.Steps = tableToStringSlice(getTable(tbl, "steps"))

	if toks := getTable(tbl, "tokens"); toks != nil {
		for i := 1; i <= toks.MaxN(); i++ {
			tokTbl, ok := toks.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			cfg.Tokens = append(cfg.Tokens, types.Token{
				ID:       getString(tokTbl, "id"),
				Text:     getString(tokTbl, "text"),
				Side:     getString(tokTbl, "side"),
				Solution: getString(tokTbl, "solution"),
				Choices:  tableToStringSlice(getTable(tokTbl, "choices")),
			})
		}
	}

	if groups := getTable(tbl, "groups"); groups != nil {
		for i := 1; i <= groups.MaxN(); i++ {
			gTbl, ok := groups.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			cfg.Groups = append(cfg.Groups, types.GroupDef{
				ID:    getString(gTbl, "id"),
				Label: getString(gTbl, "label"),
			})
		}
	}

	if board := getTable(tbl, "board"); board != nil {
		rect := compileRect(board)
		cfg.Board = &rect
	}

	return cfg, nil
}

func compileConditions(tbl *lua.LTable) []types.Condition {
	var conditions []types.Condition
	tbl.ForEach(func(k, v lua.LValue) {
		// Only process integer-keyed entries (array elements).
		if _, ok := k.(lua.LNumber); !ok {
			return
		}
		if condTbl, ok := v.(*lua.LTable); ok {
			conditions = append(conditions, compileCondition(condTbl))
		}
	})
	return conditions
}

func compileCondition(tbl *lua.LTable) types.Condition {
	condType := getString(tbl, "type")

	if condType == "not" {
		if innerTbl := getTable(tbl, "inner"); innerTbl != nil {
			inner := compileCondition(innerTbl)
			return types.Condition{Type: "not", Inner: &inner}
		}
	}

	params := map[string]any{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			key := string(ks)
			if key != "type" {
				params[key] = toGoValue(v)
			}
		}
	})

	return types.Condition{Type: condType, Params: params}
}

func compileEffects(tbl *lua.LTable) []types.Effect {
	var effects []types.Effect
	tbl.ForEach(func(k, v lua.LValue) {
		if _, ok := k.(lua.LNumber); !ok {
			return
		}
		if effTbl, ok := v.(*lua.LTable); ok {
			effects = append(effects, compileEffect(effTbl))
		}
	})
	return effects
}

func compileEffect(tbl *lua.LTable) types.Effect {
	effType := getString(tbl, "type")
	params := map[string]any{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			key := string(ks)
			if key != "type" {
				params[key] = toGoValue(v)
			}
		}
	})
	return types.Effect{Type: effType, Params: params}
}
