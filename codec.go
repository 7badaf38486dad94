package fa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Format selects a structured-text encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	default:
		return "json"
	}
}

// ParseFormat Resolves a format name ("json", "yaml" or "yml").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("unknown format %q", name)
}

// FormatFromPath Picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Document is the interchange form of an automaton. In Transitions the empty symbol key is an
// epsilon transition.
type Document struct {
	States        []string                       `json:"states" yaml:"states"`
	Alphabet      []string                       `json:"alphabet" yaml:"alphabet"`
	InitialStates []string                       `json:"initialStates" yaml:"initialStates"`
	FinalStates   []string                       `json:"finalStates" yaml:"finalStates"`
	Transitions   map[string]map[string][]string `json:"transitions" yaml:"transitions"`
}

// Document Returns the interchange form with every list sorted, so encoding is byte-stable.
func (a *Automaton) Document() Document {
	doc := Document{
		States:        a.states.Sorted(),
		Alphabet:      a.alphabet.Sorted(),
		InitialStates: a.initialStates.Sorted(),
		FinalStates:   a.finalStates.Sorted(),
		Transitions:   a.Transitions(),
	}
	return doc
}

// FromDocument Validates doc and builds an automaton from it. Identifiers and symbols are NFC
// normalized so that visually identical names compare equal.
func FromDocument(doc Document) (*Automaton, error) {
	for _, symbol := range doc.Alphabet {
		if symbol == Epsilon {
			return nil, fmt.Errorf("%w: alphabet contains the empty symbol", ErrMalformedInput)
		}
	}

	// Keys that differ only in normalization collapse to one key; their destinations are merged.
	transitions := make(Transitions, len(doc.Transitions))
	for from, symbols := range doc.Transitions {
		nf := normalize(from)
		m, ok := transitions[nf]
		if !ok {
			m = make(map[string][]string, len(symbols))
			transitions[nf] = m
		}
		for symbol, to := range symbols {
			ns := normalize(symbol)
			m[ns] = append(m[ns], normalizeAll(to)...)
		}
	}

	return New(
		normalizeAll(doc.States),
		normalizeAll(doc.Alphabet),
		transitions,
		normalizeAll(doc.InitialStates),
		normalizeAll(doc.FinalStates),
	), nil
}

func normalize(s string) string {
	return norm.NFC.String(s)
}

func normalizeAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = normalize(item)
	}
	return out
}

// Decode Parses a document in the given format. Any syntax or validation failure wraps
// ErrMalformedInput.
func Decode(data []byte, f Format) (*Automaton, error) {
	var doc *Document
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
	}
	return FromDocument(*doc)
}

// Encode Serializes a in the given format.
func Encode(a *Automaton, f Format) ([]byte, error) {
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(a.Document()); err != nil {
			return nil, fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("yaml encode: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(a.Document(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json encode: %w", err)
		}
		return append(data, '\n'), nil
	}
}

func (a *Automaton) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Document())
}

// UnmarshalJSON Replaces the receiver with the decoded automaton. On error the receiver is left
// untouched.
func (a *Automaton) UnmarshalJSON(data []byte) error {
	b, err := Decode(data, JSON)
	if err != nil {
		return err
	}
	*a = *b
	return nil
}

func (a *Automaton) MarshalYAML() (interface{}, error) {
	return a.Document(), nil
}

// UnmarshalYAML Replaces the receiver with the decoded automaton. On error the receiver is left
// untouched.
func (a *Automaton) UnmarshalYAML(value *yaml.Node) error {
	var doc Document
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	b, err := FromDocument(doc)
	if err != nil {
		return err
	}
	*a = *b
	return nil
}
