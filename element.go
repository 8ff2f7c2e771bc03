package traitgen

import (
	"path"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RarityDelimiter separates a trait name from its weight in a filename,
// as in "Red Hat#5.png".
const RarityDelimiter = "#"

// Element is one selectable trait asset within a layer.
// Elements are immutable during a run.
type Element struct {
	// ID is unique within the owning layer and stable across a run.
	ID int

	// Name is the display name: the filename without extension and
	// rarity suffix.
	Name string

	// Filename is the raw asset filename.
	Filename string

	// Weight is the relative selection weight.
	Weight int

	// Source loads the element's image.
	Source ImageSource
}

// NewElement creates an element whose name and weight are derived from
// filename with ParseFilename.
func NewElement(id int, filename string, src ImageSource) *Element {
	name, weight := ParseFilename(filename)
	return &Element{
		ID:       id,
		Name:     name,
		Filename: filename,
		Weight:   weight,
		Source:   src,
	}
}

// ParseFilename derives a display name and a rarity weight from an asset
// filename.
//
// The extension is removed first. A trailing "#<integer>" sets the weight;
// when it is absent, negative or not an integer the weight is 1. The
// display name is everything before the first "#", or the whole stem if
// that would be empty. Names are NFC-normalized so that decomposed
// filenames (as produced by some file systems) compare equal to their
// composed form.
//
//	ParseFilename("Red Hat#5.png")  // "Red Hat", 5
//	ParseFilename("Blue.png")       // "Blue", 1
//	ParseFilename("Odd#x.png")      // "Odd", 1
func ParseFilename(filename string) (name string, weight int) {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	stem := strings.TrimSuffix(base, path.Ext(base))

	weight = 1
	if i := strings.LastIndex(stem, RarityDelimiter); i >= 0 {
		if w, err := strconv.Atoi(stem[i+len(RarityDelimiter):]); err == nil && w >= 0 {
			weight = w
		}
	}

	name = stem
	if i := strings.Index(stem, RarityDelimiter); i > 0 {
		name = stem[:i]
	}
	return norm.NFC.String(name), weight
}
