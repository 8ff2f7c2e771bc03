package traitgen

import (
	"strconv"
	"time"
)

// Compiler identifies this engine in every metadata record.
const Compiler = "traitgen " + Version

// ImageExtension is the extension of the encoded edition images.
const ImageExtension = "png"

// Attribute is one trait of an artwork.
type Attribute struct {
	TraitType string `json:"trait_type" yaml:"trait_type"`
	Value     string `json:"value" yaml:"value"`
}

// Metadata is the provenance record of one edition.
type Metadata struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Image       string      `json:"image" yaml:"image"`
	DNA         string      `json:"dna" yaml:"dna"`
	Edition     int         `json:"edition" yaml:"edition"`
	Date        int64       `json:"date" yaml:"date"`
	Attributes  []Attribute `json:"attributes" yaml:"attributes"`
	Compiler    string      `json:"compiler" yaml:"compiler"`
}

// Attributes lists the resolved traits in layer order.
func Attributes(resolved []Resolved) []Attribute {
	attrs := make([]Attribute, len(resolved))
	for i, r := range resolved {
		attrs[i] = Attribute{TraitType: r.Layer.traitType()}
		if r.Element != nil {
			attrs[i].Value = r.Element.Name
		}
	}
	return attrs
}

func newMetadata(cfg Config, edition int, hash string, resolved []Resolved, now time.Time) Metadata {
	return Metadata{
		Name:        cfg.NamePrefix + " #" + strconv.Itoa(edition),
		Description: cfg.Description,
		Image:       strconv.Itoa(edition) + "." + ImageExtension,
		DNA:         hash,
		Edition:     edition,
		Date:        now.UnixMilli(),
		Attributes:  Attributes(resolved),
		Compiler:    Compiler,
	}
}
