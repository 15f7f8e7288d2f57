// Package flagx lets several components share one command line: each one
// filters out the flags it owns and parses only those.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the listed flags.
//
// Flags in valued take a value, either as "-f value" or "-f=value".
// Flags in boolean never consume the following argument; use "-f=false"
// to switch them off. A double leading dash is treated like a single one,
// matching the flag package.
func FilterArgs(args []string, valued []string, boolean ...string) []string {
	takesValue := make(map[string]bool, len(valued)+len(boolean))
	for _, f := range valued {
		takesValue[normalize(f)] = true
	}
	for _, f := range boolean {
		takesValue[normalize(f)] = false
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		needsValue, ok := takesValue[normalize(name)]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)

		if hasValue || !needsValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

func normalize(name string) string {
	if strings.HasPrefix(name, "--") {
		return name[1:]
	}
	return name
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// It returns "" when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
