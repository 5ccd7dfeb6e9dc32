// Package convert holds the two top-level conversions between
// Freemind/Freeplane XML and PlantUML mindmap text. Both are pure
// functions of their input and safe to call concurrently.
package convert

import (
	"mindbridge/internal/freemind"
	"mindbridge/internal/puml"
)

// FreemindToPlantUML converts Freemind/Freeplane XML content to a
// PlantUML mindmap string
func FreemindToPlantUML(content string) (string, error) {
	m, err := freemind.Parse(content)
	if err != nil {
		return "", err
	}
	return puml.Write(m), nil
}

// PlantUMLToFreemind converts a PlantUML mindmap string to
// Freemind/Freeplane XML
func PlantUMLToFreemind(content string, opts freemind.WriteOptions) (string, error) {
	m, err := puml.Parse(content)
	if err != nil {
		return "", err
	}
	return freemind.Write(m, opts), nil
}
