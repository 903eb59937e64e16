// Package output renders the operator table in the formats offered by
// the queryops command.
package output

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/queryops/queryops-golang"
)

// ErrUnknownFormat is returned by Output for unregistered format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format writes a table to w.
type Format interface {
	Output(w io.Writer, q queryops.QueryOperators) error
}

// Formatter manages the available output formats.
type Formatter struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// New returns a formatter with no formats registered.
func New() *Formatter {
	return &Formatter{
		formats: map[string]Format{},
	}
}

// Default returns a formatter with the json, yaml and text formats.
func Default() *Formatter {
	f := New()
	f.Register("json", JSON())
	f.Register("yaml", YAML())
	f.Register("text", Text())
	return f
}

// Register registers a format under name. It panics if name is taken.
func (f *Formatter) Register(name string, format Format) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.formats[name]; ok {
		panic(name + " already registered")
	}
	f.formats[name] = format
}

// Names returns the registered format names, sorted.
func (f *Formatter) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return sortedKeys(f.formats)
}

// Output writes q to w using the named format.
func (f *Formatter) Output(w io.Writer, name string, q queryops.QueryOperators) error {
	f.mu.RLock()
	format, ok := f.formats[name]
	f.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w %q, expected one of %v", ErrUnknownFormat, name, f.Names())
	}
	return format.Output(w, q)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
