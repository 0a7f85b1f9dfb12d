// Package llm classifies customer queries by asking a hosted language model
// to pick one of the five query categories. It supports OpenAI- and
// Anthropic-compatible chat endpoints and is an alternative to the bundled
// model artifact when none is available.
package llm
