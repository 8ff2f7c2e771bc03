package traitgen

import (
	"crypto/sha1" //nolint:gosec // provenance digest, not a security boundary
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"
)

// DNA format constants.
const (
	// DNADelimiter joins the per-layer tokens of a DNA string.
	DNADelimiter = "-"

	// bypassOption is the token option marking a layer excluded from
	// uniqueness comparison.
	bypassOption = "bypassDNA"
	bypassQuery  = "?" + bypassOption + "=true"
)

// DNA is the ordered, per-layer encoding of one trait selection:
//
//	"{id}:{filename}[?bypassDNA=true]-{id}:{filename}..."
//
// Filenames are query-escaped with "-" additionally escaped, so the
// delimiter and the "?" option marker never occur inside a token.
type DNA string

// Selection is one layer's chosen element.
type Selection struct {
	Layer   *Layer
	Element *Element
}

// Resolved is one layer of a decoded DNA.
type Resolved struct {
	Layer   *Layer
	Element *Element

	// Fallback is set when the token was missing or named an unknown id
	// and the layer's first element was substituted.
	Fallback bool
}

// EncodeDNA encodes an ordered selection into a DNA string.
func EncodeDNA(selections []Selection) DNA {
	tokens := make([]string, len(selections))
	for i, s := range selections {
		tokens[i] = encodeToken(s.Layer, s.Element)
	}
	return DNA(strings.Join(tokens, DNADelimiter))
}

func encodeToken(l *Layer, e *Element) string {
	tok := strconv.Itoa(e.ID) + ":" + escapeFilename(e.Filename)
	if l.BypassDNA {
		tok += bypassQuery
	}
	return tok
}

func escapeFilename(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), DNADelimiter, "%2D")
}

// Tokens splits the DNA into its per-layer tokens.
func (d DNA) Tokens() []string {
	if d == "" {
		return nil
	}
	return strings.Split(string(d), DNADelimiter)
}

// Filtered returns the DNA with every bypass-marked token removed. The
// result is only used for uniqueness comparison, never for rendering.
func (d DNA) Filtered() string {
	tokens := d.Tokens()
	kept := tokens[:0]
	for _, tok := range tokens {
		if !tokenBypassed(tok) {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, DNADelimiter)
}

// Hash returns the hex SHA-1 digest of the raw DNA string. It identifies
// the artwork in metadata and is never used for uniqueness checks.
func (d DNA) Hash() string {
	sum := sha1.Sum([]byte(d)) //nolint:gosec // see import
	return hex.EncodeToString(sum[:])
}

// HashBLAKE3 returns the hex BLAKE3-256 digest of the raw DNA string.
func (d DNA) HashBLAKE3() string {
	sum := blake3.Sum256([]byte(d))
	return hex.EncodeToString(sum[:])
}

// DecodeDNA resolves each layer's token to an element. A missing token
// or an id that the layer does not contain resolves to the layer's first
// element.
func DecodeDNA(d DNA, layers []*Layer) []Resolved {
	tokens := d.Tokens()
	out := make([]Resolved, len(layers))
	for i, l := range layers {
		out[i].Layer = l
		if i < len(tokens) {
			if e, ok := l.Element(tokenElementID(tokens[i])); ok {
				out[i].Element = e
				continue
			}
		}
		if len(l.Elements) > 0 {
			out[i].Element = l.Elements[0]
		}
		out[i].Fallback = true
		Logger().Debug("traitgen: DNA token unresolved, using first element",
			"layer", l.Name, "position", i)
	}
	return out
}

// Selections converts a decoded DNA back into the selection form accepted
// by EncodeDNA.
func Selections(resolved []Resolved) []Selection {
	out := make([]Selection, len(resolved))
	for i, r := range resolved {
		out[i] = Selection{Layer: r.Layer, Element: r.Element}
	}
	return out
}

// stripOptions removes the "?..." option suffix from a token.
func stripOptions(tok string) string {
	if i := strings.IndexByte(tok, '?'); i >= 0 {
		return tok[:i]
	}
	return tok
}

// tokenElementID extracts the element id. Parse failures yield 0.
func tokenElementID(tok string) int {
	idPart, _, _ := strings.Cut(stripOptions(tok), ":")
	id, err := strconv.Atoi(idPart)
	if err != nil {
		return 0
	}
	return id
}

// tokenOptions parses the "a=b&c=d" option suffix of a token.
func tokenOptions(tok string) map[string]string {
	i := strings.IndexByte(tok, '?')
	if i < 0 {
		return nil
	}
	opts := make(map[string]string)
	for _, kv := range strings.Split(tok[i+1:], "&") {
		k, v, _ := strings.Cut(kv, "=")
		opts[k] = v
	}
	return opts
}

func tokenBypassed(tok string) bool {
	return tokenOptions(tok)[bypassOption] == "true"
}
