package textio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Mode names the scalar field a session or command runs in.
type Mode string

const (
	// ModeExact runs on scalar.Rational.
	ModeExact Mode = "exact"
	// ModeFloat runs on scalar.Float.
	ModeFloat Mode = "float"
)

var (
	// ErrInvalidMode is returned for a mode other than "exact" or "float".
	ErrInvalidMode = errors.New("textio: mode must be exact or float")

	// ErrUnknownMatrix is returned when a session has no matrix of the requested name.
	ErrUnknownMatrix = errors.New("textio: unknown matrix")
)

// ParseMode validates a mode name. The empty string selects ModeExact.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeExact:
		return ModeExact, nil
	case ModeFloat:
		return ModeFloat, nil
	default:
		return "", fmt.Errorf("mode %q: %w", s, ErrInvalidMode)
	}
}

// Session is a YAML file of named matrix literals shared by several commands.
//
//	mode: exact
//	matrices:
//	  A: "1 2; 3 4"
//	  B: |
//	    1 0
//	    0 1
//	vector: "1 2 3 4"
type Session struct {
	Mode     Mode              `yaml:"mode"`
	Matrices map[string]string `yaml:"matrices"`
	Vector   string            `yaml:"vector,omitempty"`
}

// LoadSession reads and parses a session file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or names an invalid mode.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	return ParseSession(data)
}

// ParseSession parses session YAML with strict field validation.
func ParseSession(data []byte) (*Session, error) {
	var s Session
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse session YAML: %w", err)
	}
	mode, err := ParseMode(string(s.Mode))
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	s.Mode = mode
	for name := range s.Matrices {
		if name == "" {
			return nil, fmt.Errorf("invalid session: matrix name must be non-empty")
		}
	}

	return &s, nil
}

// Literal returns the matrix literal stored under name.
// Errors: ErrUnknownMatrix.
func (s *Session) Literal(name string) (string, error) {
	if s != nil {
		if lit, ok := s.Matrices[name]; ok {
			return lit, nil
		}
	}

	return "", fmt.Errorf("%q: %w", name, ErrUnknownMatrix)
}

// Names returns the matrix names in sorted order.
func (s *Session) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Matrices))
	for name := range s.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
