// Package env supplies named target values for rule evaluation
// from .env files and the process environment.
package env

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"strings"
	"sync"
)

// exportPrefix is accepted in front of a key, as written by shell
// scripts that are also sourced.
const exportPrefix = "export "

// Loader collects target values. Values set in the process
// environment take precedence over values read from files.
type Loader struct {
	mu      sync.RWMutex
	vars    map[string]string
	sources []string
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{vars: make(map[string]string)}
}

// Load reads KEY=value lines from a .env file. Blank lines and
// lines starting with "#" are skipped, surrounding quotes are
// removed, and later files override earlier ones.
func (l *Loader) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", path, err)
	}
	defer file.Close()

	parsed := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if ok {
			parsed[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	maps.Copy(l.vars, parsed)
	l.sources = append(l.sources, path)
	return nil
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, exportPrefix)

	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, unquote(strings.TrimSpace(value)), true
}

// unquote strips one matching pair of single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// Lookup returns the value for key. The process environment wins
// over loaded files.
func (l *Loader) Lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.vars[key]
	return v, ok
}

// Get returns the value for key, or "" when it is not set.
func (l *Loader) Get(key string) string {
	v, _ := l.Lookup(key)
	return v
}

// GetRequired returns the value for key or an error if it is not
// set.
func (l *Loader) GetRequired(key string) (string, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return "", fmt.Errorf("required value %s is not set", key)
	}
	return v, nil
}

// Set stores a value in the loader only; the process environment
// is left untouched.
func (l *Loader) Set(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vars[key] = value
}

// All returns a copy of the values read from files or Set.
func (l *Loader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.vars)
}

// Values resolves keys and returns the ones that are set, ready
// for Engine.EvaluateAll or Bank.CheckAll. Absent keys are left
// out so evaluation reports them as missing targets.
func (l *Loader) Values(keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := l.Lookup(k); ok {
			out[k] = v
		}
	}
	return out
}

// Sources returns the files loaded so far, in order.
func (l *Loader) Sources() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.sources...)
}
