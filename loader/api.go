package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// rawScene holds a scene table before compilation.
type rawScene struct {
	id    string
	table *lua.LTable
}

// rawItem holds an item table before compilation.
type rawItem struct {
	id    string
	table *lua.LTable
}

// rawPuzzle holds a puzzle table before compilation.
type rawPuzzle struct {
	id    string
	table *lua.LTable
}

// rawStrings holds one language's string table before compilation.
type rawStrings struct {
	lang  string
	table *lua.LTable
}

// rawHandler holds an event handler before compilation.
type rawHandler struct {
	eventType string
	table     *lua.LTable
}

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerConditionHelpers(L)
	registerEffectHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title = "...", start = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Scene "id" { ... } — curried: Scene("id") returns a function that
	// takes a table.
	L.SetGlobal("Scene", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.scenes = append(coll.scenes, rawScene{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Item "id" { ... } — curried.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.items = append(coll.items, rawItem{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Puzzle "id" { kind = "...", ... } — curried.
	L.SetGlobal("Puzzle", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.puzzles = append(coll.puzzles, rawPuzzle{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Strings "lang" { ["key"] = "template", ... } — curried.
	L.SetGlobal("Strings", L.NewFunction(func(L *lua.LState) int {
		lang := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.strings = append(coll.strings, rawStrings{lang: lang, table: tbl})
			return 0
		}))
		return 1
	}))

	// On("event_type", { conditions = {...}, effects = {...} })
	L.SetGlobal("On", L.NewFunction(func(L *lua.LState) int {
		eventType := L.CheckString(1)
		tbl := L.CheckTable(2)
		coll.handlers = append(coll.handlers, rawHandler{eventType: eventType, table: tbl})
		return 0
	}))

	// Hotspot("id", { ... }) — pass-through tagging the ID.
	L.SetGlobal("Hotspot", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		tbl := L.CheckTable(2)
		tbl.RawSetString("id", lua.LString(id))
		L.Push(tbl)
		return 1
	}))

	// Token("id", "text", { side = ..., solution = ..., choices = {...} })
	// The third argument is optional.
	L.SetGlobal("Token", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		text := L.CheckString(2)
		tbl := L.NewTable()
		if extra, ok := L.Get(3).(*lua.LTable); ok {
			extra.ForEach(func(k, v lua.LValue) {
				tbl.RawSet(k, v)
			})
		}
		tbl.RawSetString("id", lua.LString(id))
		tbl.RawSetString("text", lua.LString(text))
		L.Push(tbl)
		return 1
	}))
}

func registerConditionHelpers(L *lua.LState) {
	// HasItem("key")
	L.SetGlobal("HasItem", L.NewFunction(func(L *lua.LState) int {
		item := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("has_item"))
		tbl.RawSetString("item", lua.LString(item))
		L.Push(tbl)
		return 1
	}))

	// FlagSet("flag")
	L.SetGlobal("FlagSet", L.NewFunction(func(L *lua.LState) int {
		flag := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("flag_set"))
		tbl.RawSetString("flag", lua.LString(flag))
		L.Push(tbl)
		return 1
	}))

	// FlagNot("flag")
	L.SetGlobal("FlagNot", L.NewFunction(func(L *lua.LState) int {
		flag := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("flag_not"))
		tbl.RawSetString("flag", lua.LString(flag))
		L.Push(tbl)
		return 1
	}))

	// Solved("puzzle_id")
	L.SetGlobal("Solved", L.NewFunction(func(L *lua.LState) int {
		puzzle := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("solved"))
		tbl.RawSetString("puzzle", lua.LString(puzzle))
		L.Push(tbl)
		return 1
	}))

	// Not(condition)
	L.SetGlobal("Not", L.NewFunction(func(L *lua.LState) int {
		inner := L.CheckTable(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("not"))
		tbl.RawSetString("inner", inner)
		L.Push(tbl)
		return 1
	}))
}

func registerEffectHelpers(L *lua.LState) {
	// Say("text")
	L.SetGlobal("Say", L.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("say"))
		tbl.RawSetString("text", lua.LString(text))
		L.Push(tbl)
		return 1
	}))

	// Goto("scene_id")
	L.SetGlobal("Goto", L.NewFunction(func(L *lua.LState) int {
		scene := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("goto"))
		tbl.RawSetString("scene", lua.LString(scene))
		L.Push(tbl)
		return 1
	}))

	// GiveItem("id")
	L.SetGlobal("GiveItem", L.NewFunction(func(L *lua.LState) int {
		item := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("give_item"))
		tbl.RawSetString("item", lua.LString(item))
		L.Push(tbl)
		return 1
	}))

	// RemoveItem("id")
	L.SetGlobal("RemoveItem", L.NewFunction(func(L *lua.LState) int {
		item := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("remove_item"))
		tbl.RawSetString("item", lua.LString(item))
		L.Push(tbl)
		return 1
	}))

	// SetFlag("flag", value)
	L.SetGlobal("SetFlag", L.NewFunction(func(L *lua.LState) int {
		flag := L.CheckString(1)
		value := L.CheckBool(2)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("set_flag"))
		tbl.RawSetString("flag", lua.LString(flag))
		tbl.RawSetString("value", lua.LBool(value))
		L.Push(tbl)
		return 1
	}))

	// Reveal("scene", "hotspot")
	L.SetGlobal("Reveal", L.NewFunction(func(L *lua.LState) int {
		scene := L.CheckString(1)
		hotspot := L.CheckString(2)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("reveal_hotspot"))
		tbl.RawSetString("scene", lua.LString(scene))
		tbl.RawSetString("hotspot", lua.LString(hotspot))
		L.Push(tbl)
		return 1
	}))

	// Hide("scene", "hotspot")
	L.SetGlobal("Hide", L.NewFunction(func(L *lua.LState) int {
		scene := L.CheckString(1)
		hotspot := L.CheckString(2)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("hide_hotspot"))
		tbl.RawSetString("scene", lua.LString(scene))
		tbl.RawSetString("hotspot", lua.LString(hotspot))
		L.Push(tbl)
		return 1
	}))

	// RunPuzzle("ref", { block = true, on_solved = {...} })
	// The options table is optional.
	L.SetGlobal("RunPuzzle", L.NewFunction(func(L *lua.LState) int {
		ref := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("run_puzzle"))
		tbl.RawSetString("ref", lua.LString(ref))
		if opts, ok := L.Get(2).(*lua.LTable); ok {
			opts.ForEach(func(k, v lua.LValue) {
				tbl.RawSet(k, v)
			})
		}
		L.Push(tbl)
		return 1
	}))

	// EmitEvent("type")
	L.SetGlobal("EmitEvent", L.NewFunction(func(L *lua.LState) int {
		event := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("emit_event"))
		tbl.RawSetString("event", lua.LString(event))
		L.Push(tbl)
		return 1
	}))
}
