package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation.
var helpRendererCache sync.Map // map[int]*glamour.TermRenderer

func helpRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := helpRendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	helpRendererCache.Store(width, renderer)
	return renderer, nil
}

// helpView renders the key binding reference as styled markdown.
func (m Model) helpView() string {
	km := m.config.KeyMappings
	var b strings.Builder

	b.WriteString("# Villa Board\n\n")
	b.WriteString("## Navigation\n\n")
	writeBinding(&b, km.PrevPerson+" / "+km.NextPerson, "previous / next person")
	writeBinding(&b, km.PrevLane+" / "+km.NextLane, "previous / next lane")
	writeBinding(&b, km.PrevDay+" / "+km.NextDay, "previous / next day")
	writeBinding(&b, km.PrevWeek+" / "+km.NextWeek, "back / forward one week")
	writeBinding(&b, km.PrevMonth+" / "+km.NextMonth, "back / forward one month")
	writeBinding(&b, km.Today, "jump to today")
	writeBinding(&b, km.ToggleView, "cycle year / three month / month view")

	b.WriteString("\n## Editing\n\n")
	writeBinding(&b, km.ToggleEdit, "toggle edit mode")
	writeBinding(&b, km.TogglePool, "open or close the pending pool")
	writeBinding(&b, keyLabel(km.PickUp), "pick up the booking under the cursor, or the selected pool row")
	writeBinding(&b, km.Drop, "drop the picked up booking on the selected lane")
	writeBinding(&b, km.CancelDrag, "cancel a pick up")
	writeBinding(&b, km.Unassign, "send the booking under the cursor back to the pool")
	writeBinding(&b, km.ToggleOffDay, "toggle an off day for the selected person")
	writeBinding(&b, km.EditPending, "edit the selected pool row inline")

	b.WriteString("\n## Other\n\n")
	writeBinding(&b, km.ShowHelp, "show this help")
	writeBinding(&b, km.Quit, "quit")

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	renderer, err := helpRenderer(width)
	if err != nil {
		return b.String()
	}
	out, err := renderer.Render(b.String())
	if err != nil {
		return b.String()
	}
	return out
}

func writeBinding(b *strings.Builder, key, desc string) {
	fmt.Fprintf(b, "- `%s` %s\n", key, desc)
}

// keyLabel makes unprintable bindings readable.
func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
