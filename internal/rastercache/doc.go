// Package rastercache holds trait images that have already been decoded
// and scaled to the output size, so that an element selected by many
// editions is read from disk once per run.
//
// The cache is bounded by a byte budget (the sum of the Pix lengths of
// the cached images) and evicts least recently used entries.
//
//	c := rastercache.New[key](64 << 20)
//	img, ok := c.Get(k)
//	if !ok {
//	    img = load()
//	    c.Put(k, img)
//	}
//
// Cache is safe for concurrent use and must not be copied after creation.
package rastercache
