package glossary

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	reportFont     = "Times New Roman"
	reportFontSize = 12
	headingSize    = 16
	termSize       = 13
)

// WriteReport renders the extracted terms into a styled docx document, one
// block per term, ordered as aggregated (confidence descending).
func WriteReport(terms []Term, title, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	heading(doc, title, headingSize)
	body(doc, fmt.Sprintf("%d terms", len(terms)))
	doc.AddParagraph("")

	for _, t := range terms {
		termBlock(doc, t)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func termBlock(doc *docx.RootDoc, t Term) {
	name := t.Korean
	if t.English != "" {
		name += " / " + t.English
	}
	if t.Abbreviation != "" {
		name += " (" + t.Abbreviation + ")"
	}
	heading(doc, name, termSize)

	if t.Vietnamese != "" {
		labeled(doc, "Vietnamese", t.Vietnamese)
	}
	labeled(doc, "Definition", t.Definition)
	if t.Context != "" {
		labeled(doc, "Context", t.Context)
	}
	if t.ExampleSentence != "" {
		labeled(doc, "Example", t.ExampleSentence)
	}
	if t.Note != "" {
		labeled(doc, "Note", t.Note)
	}
	labeled(doc, "Domain", fmt.Sprintf("%s (confidence %.2f)", t.Domain, t.Confidence))
	doc.AddParagraph("")
}

func heading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(strings.TrimSpace(text)).Font(reportFont).Size(size).Color("000000").Bold(true)
}

func body(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(strings.TrimSpace(text)).Font(reportFont).Size(reportFontSize).Color("000000")
}

func labeled(doc *docx.RootDoc, label, text string) {
	p := doc.AddParagraph("")
	p.AddText(label+": ").Font(reportFont).Size(reportFontSize).Color("000000").Bold(true)
	p.AddText(strings.TrimSpace(text)).Font(reportFont).Size(reportFontSize).Color("000000")
}
