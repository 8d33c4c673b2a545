package main

import (
	"fmt"
	"log"

	"github.com/coreseekdev/deltatext/pkg/diffmatch"
	"github.com/coreseekdev/deltatext/pkg/lines"
	"github.com/coreseekdev/deltatext/pkg/ot"
)

func main() {
	base := ot.New().Insert("Hello World", nil)
	edit := ot.New().Retain(6, nil).Insert("Brave New ", nil)

	composed, err := ot.Compose(base, edit, nil)
	if err != nil {
		log.Fatalf("compose: %v", err)
	}
	doc, err := composed.Document()
	if err != nil {
		log.Fatalf("document: %v", err)
	}
	fmt.Printf("composed: %q\n", doc)

	inverted, err := ot.Invert(edit, base, nil)
	if err != nil {
		log.Fatalf("invert: %v", err)
	}
	restored, err := ot.Compose(composed, inverted, nil)
	if err != nil {
		log.Fatalf("compose(restore): %v", err)
	}
	restoredDoc, err := restored.Document()
	if err != nil {
		log.Fatalf("document(restore): %v", err)
	}
	fmt.Printf("restored:  %q\n", restoredDoc)

	differ := diffmatch.New()
	other := ot.New().Insert("Hello Brave World", nil)
	delta, err := ot.Diff(base, other, differ)
	if err != nil {
		log.Fatalf("diff: %v", err)
	}
	fmt.Printf("diff op count: %d\n", len(delta.Ops))

	multiline := ot.New().Insert("first line\nsecond line\nthird line", nil)
	paragraphs, err := lines.IterLines(multiline, "\n")
	if err != nil {
		log.Fatalf("iter lines: %v", err)
	}
	for _, line := range paragraphs {
		text, err := line.Content.Document()
		if err != nil {
			log.Fatalf("line document: %v", err)
		}
		fmt.Printf("line %d: %q (%d graphemes)\n", line.Index, text, line.GraphemeCount())
	}
}
