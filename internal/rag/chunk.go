package rag

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region constants

const (
	// ChunkSize is the target chunk length in characters.
	ChunkSize = 900
	// ChunkOverlap is how many trailing characters repeat into the next chunk.
	ChunkOverlap = 150
)

// #endregion

// #region chunk

// Chunk is one indexable slice of a source document.
type Chunk struct {
	ChunkID string
	Source  string
	Page    int
	Text    string
}

// #endregion

// #region chunk-text

// ChunkText splits text into overlapping chunks with source#cN ids.
// Page is 0 for unpaginated sources.
func ChunkText(text, source string, page int) []Chunk {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []Chunk
	start := 0
	i := 0

	for start < len(text) {
		end := start + ChunkSize
		if end > len(text) {
			end = len(text)
		}
		piece := strings.TrimSpace(text[start:end])
		if piece != "" {
			chunks = append(chunks, Chunk{
				ChunkID: fmt.Sprintf("%s#c%d", source, i),
				Source:  source,
				Page:    page,
				Text:    piece,
			})
			i++
		}
		if end == len(text) {
			break
		}
		start = end - ChunkOverlap
		if start < 0 {
			start = 0
		}
	}

	return chunks
}

// #endregion
