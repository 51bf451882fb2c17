package toast

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// Document is the XML content of a single notification. It is created from a
// template, bound once and then discarded.
type Document struct {
	template Template
	doc      *etree.Document
}

// NewDocument instantiates the schema of t:
//
//	<toast><visual><binding template="ToastText02">
//	  <text id="1"/><text id="2"/>
//	</binding></visual></toast>
func NewDocument(t Template) (*Document, error) {
	n := t.Slots()
	if n == 0 {
		return nil, fmt.Errorf("unknown template %s", t)
	}

	doc := etree.NewDocument()
	binding := doc.CreateElement("toast").
		CreateElement("visual").
		CreateElement("binding")
	binding.CreateAttr("template", t.String())
	for i := 1; i <= n; i++ {
		binding.CreateElement("text").CreateAttr("id", strconv.Itoa(i))
	}

	return &Document{template: t, doc: doc}, nil
}

// Template returns the template the document was created from.
func (d *Document) Template() Template {
	return d.template
}

func (d *Document) textNodes() []*etree.Element {
	return d.doc.FindElements("//text")
}

// SlotCount returns the number of text slots in the document.
func (d *Document) SlotCount() int {
	return len(d.textNodes())
}

// Bind appends value as the content of the i-th text slot.
func (d *Document) Bind(i int, value string) error {
	nodes := d.textNodes()
	if i < 0 || i >= len(nodes) {
		return fmt.Errorf("%w: slot %d, document has %d", ErrSlotIndexOutOfRange, i, len(nodes))
	}
	nodes[i].CreateText(value)
	return nil
}

// Slot returns the text bound to the i-th slot.
func (d *Document) Slot(i int) (string, error) {
	nodes := d.textNodes()
	if i < 0 || i >= len(nodes) {
		return "", fmt.Errorf("%w: slot %d, document has %d", ErrSlotIndexOutOfRange, i, len(nodes))
	}
	return nodes[i].Text(), nil
}

// XML serializes the document.
func (d *Document) XML() (string, error) {
	return d.doc.WriteToString()
}
