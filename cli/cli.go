// Package cli provides terminal I/O, command parsing, and meta-command
// dispatch for the escape game engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raven2cz/escape-game-engine-sub001/engine"
	"github.com/raven2cz/escape-game-engine-sub001/engine/state"
	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *state.Defs
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) *CLI {
	return &CLI{
		Engine: eng,
		Defs:   defs,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the intro, describes the starting
// scene, then loops: prompt → input → dispatch → output.
func (c *CLI) Run() {
	if c.Defs.Game.Intro != "" {
		c.printLine(c.Defs.Game.Intro)
		c.printLine("")
	}

	c.printResult(c.Engine.Look())

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := Dispatch(c.Engine, input)
		c.printResult(result)

		if c.Trace {
			c.printTrace(result)
		}
	}
}

// Dispatch parses one input line and routes it to the engine. Shared by
// the plain CLI and the TUI.
func Dispatch(eng *engine.Engine, input string) types.Result {
	verb, rest := splitVerb(input)

	switch strings.ToLower(verb) {
	case "look", "l":
		return eng.Look()

	case "inventory", "i", "inv":
		return eng.Inventory()

	case "examine", "x":
		if rest == "" {
			return says("Examine what?")
		}
		return eng.Examine(rest)

	case "click", "touch", "open", "press":
		if rest == "" {
			return says("Click what?")
		}
		return eng.Click(rest)

	case "use":
		item, target, ok := splitOn(rest)
		if !ok {
			return says("Use what on what? (use <item> on <thing>)")
		}
		return eng.UseItem(item, target)

	case "pick", "tap":
		if rest == "" {
			return says("Pick which element?")
		}
		return eng.PuzzlePick(rest)

	case "type", "answer", "enter":
		return eng.PuzzleType(rest)

	case "choose", "set":
		id, value, ok := splitOn(rest)
		if !ok {
			// "choose <id> <value>" also accepted.
			fields := strings.SplitN(rest, " ", 2)
			if len(fields) != 2 {
				return says("Choose what? (choose <element> on <value>)")
			}
			id, value = fields[0], strings.TrimSpace(fields[1])
		}
		return eng.PuzzleInput(id, value)

	case "check", "solve":
		return eng.PuzzleCheck()

	case "cancel", "back":
		return eng.PuzzleCancel()

	case "board", "b":
		return boardResult(eng)

	default:
		// Bare hotspot name counts as a click when no puzzle is open;
		// otherwise it is a pick inside the puzzle.
		if eng.PuzzleActive() {
			return eng.PuzzlePick(input)
		}
		return eng.Click(input)
	}
}

// boardResult renders the open puzzle's element tree as text lines.
func boardResult(eng *engine.Engine) types.Result {
	cont := eng.Container()
	if cont == nil {
		return says("No puzzle is open.")
	}
	return types.Result{Output: RenderBoard(cont)}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"  /trace        — Toggle debug trace output",
		"",
		"Scene commands:",
		"  look (l)              — Describe the scene",
		"  click <thing>         — Interact with a hotspot",
		"  use <item> on <thing> — Use an inventory item on a hotspot",
		"  examine <item> (x)    — Look closely at a carried item",
		"  inventory (i)         — Check what you're carrying",
		"  again (g)             — Repeat your last command",
		"",
		"Puzzle commands (while a puzzle is open):",
		"  board (b)             — Show the puzzle board",
		"  pick <element>        — Click a token, gap, or button",
		"  type <text>           — Type into the answer field",
		"  choose <element> on <value> — Set a dropdown",
		"  check                 — Submit your answer",
		"  cancel                — Step away from the puzzle",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	c.printSystem(fmt.Sprintf("Scene: %s", s.Scene))
	c.printSystem(fmt.Sprintf("Inventory: %v", s.Inventory))
	if len(s.Flags) > 0 {
		c.printSystem(fmt.Sprintf("Flags: %v", s.Flags))
	}
	if solved := c.Engine.SolvedPuzzles(); len(solved) > 0 {
		c.printSystem(fmt.Sprintf("Solved: %v", solved))
	}
	if c.Engine.PuzzleActive() {
		c.printSystem(fmt.Sprintf("Puzzle open: %s", c.Engine.Runner().Config().ID))
	}
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Effects) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Effects: %d", len(result.Effects)))
		for _, e := range result.Effects {
			c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Params))
		}
	}
	if len(result.Events) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			c.printSystem(fmt.Sprintf("[trace]   %s", e.Type))
		}
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

// splitVerb separates the first word from the rest of the line.
func splitVerb(input string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(input), " ", 2)
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.TrimSpace(fields[1])
}

// splitOn splits "<a> on <b>" into its halves.
func splitOn(input string) (string, string, bool) {
	idx := strings.Index(strings.ToLower(input), " on ")
	if idx < 0 {
		return "", "", false
	}
	a := strings.TrimSpace(input[:idx])
	b := strings.TrimSpace(input[idx+4:])
	if a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}

func says(text string) types.Result {
	return types.Result{Output: []string{text}}
}
