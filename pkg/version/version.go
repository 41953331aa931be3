package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Field is one item of build metadata
type Field struct {
	Key   string
	Value string
}

// Metadata is the ordered build metadata for an executable
type Metadata []Field

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or short revision, in that order of preference
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "dev"
}

// Info returns the build metadata for the named executable
func Info(execName string) Metadata {
	m := Metadata{
		{"name", execName},
		{"version", Version()},
		{"compiler", runtime.Version()},
	}
	if GitTag != "" {
		m = append(m, Field{"tag", GitTag})
	}
	if GitBranch != "" {
		m = append(m, Field{"branch", GitBranch})
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return m
	}
	if info.Main.Path != "" {
		m = append(m, Field{"source", info.Main.Path})
	}
	var goos, goarch string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			m = append(m, Field{"hash", s.Value})
		case "vcs.time":
			m = append(m, Field{"build_time", s.Value})
		case "vcs.modified":
			if s.Value == "true" {
				m = append(m, Field{"modified", s.Value})
			}
		case "GOOS":
			goos = s.Value
		case "GOARCH":
			goarch = s.Value
		}
	}
	if goos != "" && goarch != "" {
		m = append(m, Field{"platform", goos + "/" + goarch})
	}
	return m
}

// JSON returns the build metadata as an indented JSON object
func JSON(execName string) []byte {
	data, err := json.MarshalIndent(Info(execName).Map(), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

// Map returns the metadata keyed by name
func (m Metadata) Map() map[string]string {
	result := make(map[string]string, len(m))
	for _, f := range m {
		result[f.Key] = f.Value
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// TABLE

func (m Metadata) Header() []string {
	return []string{"Key", "Value"}
}

func (m Metadata) Len() int {
	return len(m)
}

func (m Metadata) Row(i int) []any {
	return []any{m[i].Key, m[i].Value}
}
