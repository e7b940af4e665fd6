package rag

import "strings"

// ChunkText splits text into word-aligned chunks of roughly size characters,
// with overlap characters of trailing context carried into the next chunk.
// Short inputs come back as a single chunk.
func ChunkText(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = 500
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}
	if len(text) <= size {
		return []string{text}
	}

	words := strings.Fields(text)

	var chunks []string
	var current []string
	currentLen := 0
	fresh := false

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, strings.Join(current, " "))

		// Carry the tail of the chunk forward as overlap.
		var tail []string
		tailLen := 0
		for i := len(current) - 1; i >= 0; i-- {
			w := current[i]
			if tailLen+len(w)+1 > overlap {
				break
			}
			tail = append([]string{w}, tail...)
			tailLen += len(w) + 1
		}
		current = tail
		currentLen = tailLen
		fresh = false
	}

	for _, w := range words {
		if currentLen+len(w)+1 > size && len(current) > 0 {
			flush()
		}
		current = append(current, w)
		currentLen += len(w) + 1
		fresh = true
	}
	if fresh && len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
