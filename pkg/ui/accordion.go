package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AccordionItem is one collapsible section
type AccordionItem struct {
	Title string
	Body  string
}

// Accordion shows a list of sections of which at most one is expanded
type Accordion struct {
	Items    []AccordionItem
	Expanded int // -1 when everything is collapsed
	Cursor   int
}

// NewAccordion creates an accordion with the first section expanded
func NewAccordion(items []AccordionItem) Accordion {
	expanded := -1
	if len(items) > 0 {
		expanded = 0
	}
	return Accordion{Items: items, Expanded: expanded}
}

// Toggle expands section i and collapses the others, or collapses i if it was expanded
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.Items) {
		return
	}
	if a.Expanded == i {
		a.Expanded = -1
		return
	}
	a.Expanded = i
}

// Up moves the cursor to the previous section
func (a *Accordion) Up() {
	if a.Cursor > 0 {
		a.Cursor--
	}
}

// Down moves the cursor to the next section
func (a *Accordion) Down() {
	if a.Cursor < len(a.Items)-1 {
		a.Cursor++
	}
}

// View renders the accordion within the given width
func (a Accordion) View(width int) string {
	var s strings.Builder

	bodyStyle := lipgloss.NewStyle().
		Foreground(ColorDefault).
		PaddingLeft(4)
	if width > 8 {
		bodyStyle = bodyStyle.Width(width - 4)
	}

	for i, item := range a.Items {
		marker := "▸ "
		if i == a.Expanded {
			marker = "▾ "
		}

		titleStyle := StyleBold
		cursor := "  "
		if i == a.Cursor {
			cursor = StyleAccent.Render("→ ")
			titleStyle = StylePrimary
		}

		s.WriteString(cursor + titleStyle.Render(marker+item.Title))
		s.WriteString("\n")

		if i == a.Expanded {
			s.WriteString(bodyStyle.Render(item.Body))
			s.WriteString("\n\n")
		}
	}

	return s.String()
}
