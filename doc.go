// Package traitgen generates collections of unique layered artworks.
//
// # Overview
//
// An artwork is built from ordered layers (Background, Body, Eyes, ...),
// each holding weighted trait elements. For every edition the generator
// draws one element per layer, checks that the combination has not been
// produced before, paints the selected images over each other with the
// layer's blend mode and opacity, and records which traits were used.
//
// # Quick Start
//
//	import "github.com/gogpu/traitgen"
//
//	layers, err := traitgen.LoadLayers("layers")
//	if err != nil {
//	    return err
//	}
//
//	cfg := traitgen.DefaultConfig()
//	cfg.EditionSize = 100
//
//	g, err := traitgen.New(cfg, layers)
//	if err != nil {
//	    return err
//	}
//	for art, err := range g.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    os.WriteFile(art.Metadata.Image, art.Image, 0o644)
//	}
//
// # DNA
//
// A selection is encoded as a DNA string with one "{id}:{filename}" token
// per layer, joined by "-". Tokens of layers marked BypassDNA carry a
// "?bypassDNA=true" option and are ignored when checking uniqueness, so
// such layers may repeat freely. The SHA-1 digest of the raw DNA
// identifies each artwork in its metadata.
//
// # Rarity
//
// Element weights come from filenames: "Gold#1.png" is five times rarer
// than "Silver#5.png". Files without a "#<weight>" suffix weigh 1.
//
// # Architecture
//
// The package is organized into:
//   - Catalog: Layer, Element, LoadLayers, ParseFilename
//   - Codec: DNA, EncodeDNA, DecodeDNA
//   - Selection: Selector, Ledger
//   - Rendering: Compositor, BlendMode (internal/blend holds the pixel math)
//   - Orchestration: Generator, Artwork, Metadata, Progress
package traitgen

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
