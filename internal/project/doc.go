// Package project loads traitgen project files.
//
// A project file carries the generation settings of a collection and the
// per-layer options that cannot be expressed through the layers directory
// itself: paint order, display names, blend modes, opacity and the
// uniqueness bypass. YAML, JSON (with comments) and HCL are accepted:
//
//	name: Space Cats
//	edition_size: 100
//	layers_dir: layers
//	background:
//	  generate: true
//	  brightness: 70%
//	layers:
//	  - name: Background
//	  - name: Body
//	  - name: Glow
//	    blend: screen
//	    opacity: 0.6
//	    bypass_dna: true
//
// The same file in HCL:
//
//	name         = "Space Cats"
//	edition_size = 100
//	layers_dir   = "layers"
//
//	layer "Glow" {
//	  blend      = "screen"
//	  opacity    = 0.6
//	  bypass_dna = true
//	}
package project
