package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Assistant is the single configurable assistant: a prompt template, an LLM
// backend, and an optional retrieval step. With a retriever it behaves as a
// RAG assistant; without one it is a direct prompt-fill assistant.
type Assistant struct {
	llm       ChatService
	retriever Retriever // nil disables the retrieval step
	template  Template
	topK      int
}

// NewAssistant builds an assistant. retriever may be nil for the direct path.
func NewAssistant(llm ChatService, retriever Retriever, template Template, topK int) *Assistant {
	if topK <= 0 {
		topK = 3
	}
	return &Assistant{
		llm:       llm,
		retriever: retriever,
		template:  template,
		topK:      topK,
	}
}

// Answer runs one invocation. On the retrieval path, query is searched and the
// retrieved texts become {context} with query as {question}; vars may carry
// extra placeholders either way. The raw LLM output is reduced to trimmed
// plain text.
func (a *Assistant) Answer(ctx context.Context, query string, vars map[string]string) (string, error) {
	// Fill from a copy; the caller's map stays untouched.
	filled := make(map[string]string, len(vars)+2)
	for k, v := range vars {
		filled[k] = v
	}

	if a.retriever != nil {
		results, err := a.retriever.Search(ctx, query, a.topK)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrRetrieval, err)
		}
		if len(results) == 0 {
			return NoContextReply, nil
		}

		texts := make([]string, len(results))
		for i, r := range results {
			texts[i] = r.Text
		}
		filled["context"] = strings.Join(texts, "\n\n")
		filled["question"] = query
	}

	prompt := a.template.Fill(filled)

	answer, err := a.llm.Chat(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		if errors.Is(err, ErrGeneration) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return strings.TrimSpace(answer), nil
}

// ArtifactReader is the read side of the keyed artifact store.
type ArtifactReader interface {
	Read(country string) (string, error)
}

// WeatherAssistant answers per-country weather questions from the raw artifact
// through the direct prompt-fill path. The Weather Client must have fetched
// the country first; a missing artifact surfaces as the store's ErrNoData.
type WeatherAssistant struct {
	assistant *Assistant
	artifacts ArtifactReader
}

// NewWeatherAssistant builds the weather-specific assistant on top of the
// unified one, with retrieval disabled.
func NewWeatherAssistant(llm ChatService, artifacts ArtifactReader) *WeatherAssistant {
	return &WeatherAssistant{
		assistant: NewAssistant(llm, nil, WeatherPromptTemplate, 0),
		artifacts: artifacts,
	}
}

// Advise reads the country's weather artifact and asks the LLM for an analysis.
func (w *WeatherAssistant) Advise(ctx context.Context, country string) (string, error) {
	text, err := w.artifacts.Read(country)
	if err != nil {
		return "", err
	}

	return w.assistant.Answer(ctx, "", map[string]string{
		"country":      country,
		"weather_data": text,
	})
}
