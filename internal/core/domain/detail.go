package domain

import (
	"fmt"
	"strings"
)

// KeyConsiderations is the static checklist shown for every topic
var KeyConsiderations = []string{
	"Planning and design requirements",
	"Material selection and quality standards",
	"Building codes and local regulations",
	"Cost estimation and budget planning",
	"Timeline and project scheduling",
	"Safety requirements and best practices",
}

// ProTip is the closing advice shown for every topic
const ProTip = "Always consult with licensed professionals and ensure all work meets local building codes and regulations. Proper planning and preparation are key to a successful build."

// CallToAction labels the link to the full guide
const CallToAction = "View Detailed Guide"

// Section is one titled block of the detail template
type Section struct {
	Title string
	Body  string
}

// Detail is the rendered detail template of a topic
type Detail struct {
	Name     string
	Icon     string
	Link     string
	Sections []Section
}

// NewDetail fills the fixed template from a topic
func NewDetail(t Topic) Detail {
	var considerations strings.Builder
	for _, item := range KeyConsiderations {
		considerations.WriteString("- " + item + "\n")
	}

	gettingStarted := fmt.Sprintf(
		"This section provides comprehensive guidance on all aspects of %s construction and installation. "+
			"From initial planning to final finishing touches, you'll find expert advice and practical tips "+
			"to ensure your project is completed successfully.",
		strings.ToLower(t.Name),
	)

	return Detail{
		Name: t.Name,
		Icon: t.Icon,
		Link: t.Link,
		Sections: []Section{
			{Title: "Overview", Body: t.Description},
			{Title: "Key Considerations", Body: strings.TrimRight(considerations.String(), "\n")},
			{Title: "Getting Started", Body: gettingStarted},
			{Title: "Pro Tip", Body: ProTip},
		},
	}
}

// Markdown renders the detail as a markdown document
func (d Detail) Markdown() string {
	var b strings.Builder
	b.WriteString("# " + d.Name + "\n\n")
	b.WriteString(fmt.Sprintf("![%s](%s)\n\n", d.Name, d.Icon))
	for _, s := range d.Sections {
		b.WriteString("## " + s.Title + "\n\n")
		b.WriteString(s.Body + "\n\n")
	}
	b.WriteString(fmt.Sprintf("[%s →](%s)\n", CallToAction, d.Link))
	return b.String()
}

// DetailState is the state of the detail view
type DetailState int

const (
	DetailClosed DetailState = iota
	DetailOpen
)

func (s DetailState) String() string {
	if s == DetailOpen {
		return "open"
	}
	return "closed"
}
