// Package classifier maps raw, per-source status spellings onto canonical lifecycle steps
// and movement statuses using versioned alias tables.
package classifier

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"courier-tracker/internal/features/tracking/domain"

	"gopkg.in/yaml.v3"
)

//go:embed aliases.yaml
var embeddedAliases []byte

// ErrInvalidTable is returned when an alias table fails validation.
var ErrInvalidTable = errors.New("invalid alias table")

type tableFile struct {
	Version  int                   `yaml:"version"`
	Sources  map[string]sourceFile `yaml:"sources"`
	Movement struct {
		Fold   map[string]string `yaml:"fold"`
		Labels map[string]string `yaml:"labels"`
	} `yaml:"movement"`
}

type sourceFile struct {
	Flow     string            `yaml:"flow"`
	Statuses map[string]string `yaml:"statuses"`
}

type sourceTable struct {
	flow     domain.Flow
	statuses map[string]domain.Step
}

// Table is a loaded, validated set of alias tables. It is immutable and safe for concurrent use.
type Table struct {
	version int
	sources map[domain.SourceKind]sourceTable
	fold    map[string]string
	labels  map[string]string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded alias tables.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(embeddedAliases)
		if err != nil {
			panic(fmt.Sprintf("embedded alias table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// LoadFile reads alias tables from a YAML file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias table %s: %w", path, err)
	}
	return Load(data)
}

// Load parses and validates alias tables. Every source kind must be present, every
// flow must be known and every mapped step must exist.
func Load(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if file.Version <= 0 {
		return nil, fmt.Errorf("%w: version must be positive", ErrInvalidTable)
	}

	t := &Table{
		version: file.Version,
		sources: make(map[domain.SourceKind]sourceTable, len(domain.LookupOrder)),
		fold:    make(map[string]string, len(file.Movement.Fold)),
		labels:  make(map[string]string, len(file.Movement.Labels)),
	}

	for _, kind := range domain.LookupOrder {
		src, ok := file.Sources[string(kind)]
		if !ok {
			return nil, fmt.Errorf("%w: missing source %q", ErrInvalidTable, kind)
		}
		flow, ok := domain.FlowByName(src.Flow)
		if !ok {
			return nil, fmt.Errorf("%w: source %q has unknown flow %q", ErrInvalidTable, kind, src.Flow)
		}
		statuses := make(map[string]domain.Step, len(src.Statuses))
		for raw, key := range src.Statuses {
			step, ok := domain.ParseStep(key)
			if !ok {
				return nil, fmt.Errorf("%w: source %q maps %q to unknown step %q", ErrInvalidTable, kind, raw, key)
			}
			statuses[domain.NormalizeStatus(raw)] = step
		}
		t.sources[kind] = sourceTable{flow: flow, statuses: statuses}
	}

	for raw, canonical := range file.Movement.Fold {
		t.fold[domain.NormalizeStatus(raw)] = domain.NormalizeStatus(canonical)
	}
	for status, label := range file.Movement.Labels {
		t.labels[domain.NormalizeStatus(status)] = label
	}

	return t, nil
}

// Version returns the table version.
func (t *Table) Version() int {
	return t.version
}

// Flow returns the display flow used for a source kind. Unknown kinds get the primary flow.
func (t *Table) Flow(kind domain.SourceKind) domain.Flow {
	if src, ok := t.sources[kind]; ok {
		return src.flow
	}
	return domain.PrimaryFlow
}

// Classify maps a raw status to a canonical step. It never fails: empty or unknown
// statuses yield StepBooked. The result is folded into the source's flow.
func (t *Table) Classify(raw string, kind domain.SourceKind) domain.Step {
	src, ok := t.sources[kind]
	if !ok {
		return domain.StepBooked
	}
	status := domain.NormalizeStatus(raw)
	if status == "" {
		return domain.StepBooked
	}
	step, ok := src.statuses[status]
	if !ok {
		step, ok = src.statuses[t.Fold(status)]
	}
	if !ok {
		return domain.StepBooked
	}
	return src.flow.Fold(step)
}

// Fold maps a raw status onto its canonical movement status, e.g. "picked" → "pickup".
// Statuses without an alias are returned normalized.
func (t *Table) Fold(raw string) string {
	status := domain.NormalizeStatus(raw)
	if canonical, ok := t.fold[status]; ok {
		return canonical
	}
	return status
}

// Label returns the display label of a canonical movement status.
func (t *Table) Label(status string) string {
	status = t.Fold(status)
	if label, ok := t.labels[status]; ok {
		return label
	}
	return humanize(status)
}

func humanize(status string) string {
	words := strings.FieldsFunc(status, func(r rune) bool { return r == '_' || r == '-' })
	if len(words) == 0 {
		return "Status updated"
	}
	text := strings.Join(words, " ")
	runes := []rune(text)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
