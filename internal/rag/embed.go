package rag

// #region imports
import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"strings"
)

// #endregion

// #region constants

// EmbedDim is the embedding dimensionality. Matches the 384-dim vectors the
// hosted embedding model would produce, so the store schema stays stable if
// a real model is swapped in behind the same interface.
const EmbedDim = 384

// maxEmbedTokens bounds the work per document.
const maxEmbedTokens = 2000

// #endregion

// #region embed

// Embed produces a deterministic token-hash embedding. Not semantic, but
// stable across runs, which keeps retrieval reproducible without a model:
// each token's sha256 digest is spread across the vector, then the vector
// is L2-normalized.
func Embed(text string) []float32 {
	v := make([]float32, EmbedDim)
	tokens := strings.Fields(text)
	if len(tokens) > maxEmbedTokens {
		tokens = tokens[:maxEmbedTokens]
	}

	for _, tok := range tokens {
		h := sha256.Sum256([]byte(strings.ToLower(tok)))
		for i := 0; i+1 < len(h); i += 2 {
			idx := (int(h[i])<<8 | int(h[i+1])) % EmbedDim
			v[idx]++
		}
	}

	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return v
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
	return v
}

// #endregion

// #region vector-encoding

func encodeVector(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(b []byte) []float32 {
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

// #endregion

// #region distance

// cosineDistance assumes both vectors are L2-normalized.
func cosineDistance(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return float32(1 - dot)
}

// #endregion
