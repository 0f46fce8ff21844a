package middleware

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

type ETagGenerator struct{}

func NewETagGenerator() *ETagGenerator {
	return &ETagGenerator{}
}

// Generate returns the hex encoded xxhash of content, without quotes.
func (g *ETagGenerator) Generate(content []byte) string {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, xxhash.Sum64(content))

	return hex.EncodeToString(buf)
}

// Tag returns the quoted strong ETag of content.
func (g *ETagGenerator) Tag(content []byte) string {
	return formatETag(g.Generate(content))
}
