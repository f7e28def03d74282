package model

import (
	_ "embed"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

//go:embed promptsets.yml
var promptSetsRaw []byte

// PromptMode selects how an answer is read.
type PromptMode string

const (
	// PromptModeLine reads a single line.
	PromptModeLine PromptMode = "line"
	// PromptModeList reads one item per line until an empty line.
	PromptModeList PromptMode = "list"
	// PromptModeText reads free lines until an END terminator.
	PromptModeText PromptMode = "text"
)

// Prompt is one question of a prompt set. Label identifies the answer slot,
// Question is what the user is asked.
type Prompt struct {
	Label    string     `yaml:"label"`
	Question string     `yaml:"question"`
	Mode     PromptMode `yaml:"mode"`
}

// PromptSet is the fixed, ordered question list for one entry kind.
type PromptSet struct {
	Kind    EntryKind `yaml:"kind"`
	Title   string    `yaml:"title"`
	Prompts []Prompt  `yaml:"prompts"`
}

var promptSets map[EntryKind]*PromptSet

func init() {
	var doc struct {
		PromptSets []*PromptSet `yaml:"prompt_sets"`
	}
	if err := yaml.Unmarshal(promptSetsRaw, &doc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded prompt sets: %v", err))
	}

	promptSets = make(map[EntryKind]*PromptSet, len(doc.PromptSets))
	for _, ps := range doc.PromptSets {
		promptSets[ps.Kind] = ps
	}
}

// PromptSetFor returns the fixed prompt set for the given entry kind.
func PromptSetFor(kind EntryKind) (*PromptSet, error) {
	ps, ok := promptSets[kind]
	if !ok {
		return nil, goerr.Wrap(ErrInvalidKind, "no prompt set for kind", goerr.V("kind", kind))
	}
	return ps, nil
}
