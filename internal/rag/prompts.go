package rag

import "strings"

// Template is a parameterized prompt pattern. Placeholders are written as
// {name} and filled by Fill.
type Template struct {
	text string
}

// NewTemplate wraps a prompt pattern.
func NewTemplate(text string) Template {
	return Template{text: text}
}

// Fill substitutes every {name} placeholder present in vars.
func (t Template) Fill(vars map[string]string) string {
	out := t.text
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// NoContextReply is returned by the retrieval path when the vector store has
// nothing relevant; it avoids a pointless LLM call on an empty context block.
const NoContextReply = "I don't have any relevant information to answer this question."

// RAGPromptTemplate grounds the general assistant strictly in retrieved context.
var RAGPromptTemplate = NewTemplate(`You are a helpful AI assistant. Answer the question based on the provided context.
If you cannot find the answer in the context, say "I don't have enough information to answer this question."
Do not make up or infer information that is not in the context.

Context:
{context}

Question:
{question}

Answer:`)

// WeatherPromptTemplate asks for a structured analysis of a country's raw
// weather artifact. This is a direct prompt-fill path; no retrieval is involved.
var WeatherPromptTemplate = NewTemplate(`You are a weather information assistant. Analyze the weather data provided and give recommendations.

Weather Data for {country}:
{weather_data}

Please provide a detailed analysis in the following format:

# Weather Report for {country}

## Current Weather Conditions
[Provide exact temperature, humidity, and weather conditions from the data]

## Weather-based Recommendations
[Suggest appropriate activities and precautions based on current conditions]

## Travel Advisory
[Provide specific advice for travelers based on the current weather]

Note: Base all recommendations strictly on the provided weather data.
Do not make assumptions or add information not in the data file.`)
