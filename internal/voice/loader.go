// Package voice provides the brand voice phrases used to frame outfit
// descriptions. Phrases are stored as JSON and embedded at compile time.
package voice

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var voiceFiles embed.FS

const voiceFile = "voice.json"

var (
	phrases     map[string]string
	phrasesOnce sync.Once
	phrasesErr  error
)

// Get retrieves a brand voice entry by key.
// Returns an error if the embedded file or key is not found.
func Get(key string) (string, error) {
	loadPhrases()
	if phrasesErr != nil {
		return "", phrasesErr
	}
	phrase, exists := phrases[key]
	if !exists {
		return "", fmt.Errorf("voice key %q not found in %s", key, voiceFile)
	}
	return phrase, nil
}

// MustGet retrieves a brand voice entry by key, panicking if not found.
// Use this for phrases that are required at initialization time.
func MustGet(key string) string {
	phrase, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load voice phrase: %v", err))
	}
	return phrase
}

// Format replaces template placeholders in the form {{.Key}} with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

func loadPhrases() {
	phrasesOnce.Do(func() {
		data, err := voiceFiles.ReadFile(voiceFile)
		if err != nil {
			phrasesErr = fmt.Errorf("failed to read voice file %s: %w", voiceFile, err)
			return
		}
		if err := json.Unmarshal(data, &phrases); err != nil {
			phrasesErr = fmt.Errorf("failed to parse voice file %s: %w", voiceFile, err)
		}
	})
}
