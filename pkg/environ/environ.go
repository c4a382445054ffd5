// Package environ captures the environment exported by a ROS setup script.
package environ

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Map is a captured environment: variable name -> value.
//
// A Map is built once by Discover and never modified afterwards:
// With, WithPath and Merge return copies.
type Map map[string]string

// Parse reads KEY=VALUE lines. A line contributes only when it splits on "="
// into exactly two parts: lines without a separator, or with a value which
// itself contains "=", are dropped. Later keys overwrite earlier ones.
func Parse(r io.Reader) (Map, error) {
	m := make(Map)
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if parts := strings.Split(strings.TrimSpace(line), "="); len(parts) == 2 {
			m[parts[0]] = parts[1]
		}
		if err == io.EOF {
			return m, nil
		}
		if err != nil {
			return m, err
		}
	}
}

// Clone returns a copy of the map
func (m Map) Clone() Map {
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Merge returns a copy of m, overlaid with the values of other
func (m Map) Merge(other map[string]string) Map {
	c := m.Clone()
	for k, v := range other {
		c[k] = v
	}
	return c
}

// With returns a copy of m with key set to value
func (m Map) With(key, value string) Map {
	return m.Merge(map[string]string{key: value})
}

// WithPath returns a copy of m with dir prepended to PATH.
//
// When the map holds no PATH (e.g. discovery was skipped), the PATH of the
// current process is used as the base.
func (m Map) WithPath(dir string) Map {
	base, ok := m["PATH"]
	if !ok {
		base = os.Getenv("PATH")
	}
	if base == "" {
		return m.With("PATH", dir)
	}
	return m.With("PATH", dir+string(os.PathListSeparator)+base)
}

// Current captures the environment of this process
func Current() Map {
	m := make(Map)
	for _, kv := range os.Environ() {
		if i := strings.Index(kv, "="); i > 0 {
			m[kv[:i]] = kv[i+1:]
		}
	}
	return m
}
