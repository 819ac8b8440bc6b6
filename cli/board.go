package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raven2cz/escape-game-engine-sub001/puzzle"
)

// RenderBoard flattens a container tree into text lines grouped by area.
// Slot children render indented under their slot element.
func RenderBoard(c *puzzle.Container) []string {
	return renderInto(c, "")
}

func renderInto(c *puzzle.Container, indent string) []string {
	var lines []string

	areas := map[string][]*puzzle.Element{}
	var order []string
	for _, el := range c.Elements() {
		if el.Kind == puzzle.ElemSlot {
			continue
		}
		area := el.Area
		if _, seen := areas[area]; !seen {
			order = append(order, area)
		}
		areas[area] = append(areas[area], el)
	}
	// Header/footer areas (empty name) first, then stable name order.
	sort.SliceStable(order, func(i, j int) bool {
		if (order[i] == "") != (order[j] == "") {
			return order[i] == ""
		}
		return false
	})

	for _, area := range order {
		if area != "" {
			lines = append(lines, indent+"["+area+"]")
		}
		for _, el := range areas[area] {
			lines = append(lines, indent+renderElement(el))
		}
	}

	for _, el := range c.Elements() {
		if el.Kind != puzzle.ElemSlot {
			continue
		}
		if child := el.Child(); child != nil {
			lines = append(lines, renderInto(child, indent+"  ")...)
		}
	}
	return lines
}

// renderElement formats one element as a single line.
func renderElement(el *puzzle.Element) string {
	var b strings.Builder

	switch el.Kind {
	case puzzle.ElemLabel:
		b.WriteString(el.Text)
	case puzzle.ElemToken:
		mark := " "
		if el.Selected {
			mark = "*"
		}
		fmt.Fprintf(&b, "(%s) %s: %s", mark, el.ID, el.Text)
		if el.Pair > 0 {
			fmt.Fprintf(&b, " #%d", el.Pair)
		}
	case puzzle.ElemGap:
		value := el.Value
		if value == "" {
			value = "____"
		}
		fmt.Fprintf(&b, "<%s: %s>", el.ID, value)
	case puzzle.ElemField:
		value := el.Value
		if el.Masked {
			value = strings.Repeat("•", len(value))
		}
		fmt.Fprintf(&b, "[%s: %s]", el.ID, value)
	case puzzle.ElemButton:
		fmt.Fprintf(&b, "[%s]", el.ID)
		if el.Text != "" && !strings.EqualFold(el.Text, el.ID) {
			fmt.Fprintf(&b, " %s", el.Text)
		}
	case puzzle.ElemSelect:
		fmt.Fprintf(&b, "{%s: %s | %s}", el.ID, orDash(el.Value), strings.Join(el.Options, "/"))
	default:
		b.WriteString(el.ID)
	}

	if el.Pos != nil {
		fmt.Fprintf(&b, " @(%d,%d)", el.Pos.Left, el.Pos.Top)
	}
	if el.Disabled {
		b.WriteString(" (disabled)")
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
