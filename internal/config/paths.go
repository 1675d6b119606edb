package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands $VAR references and a leading ~ in p. On Windows
// %VAR% references and a leading ~\ are also expanded. Unknown %VAR%
// references are left as written.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		expanded = expandPercentVars(expanded)
	}

	rest, ok := strings.CutPrefix(expanded, "~")
	if !ok {
		return expanded
	}
	if rest != "" && rest[0] != '/' && !(runtime.GOOS == "windows" && rest[0] == '\\') {
		// ~user forms are not supported.
		return expanded
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return expanded
	}
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest[1:])
}

func expandPercentVars(p string) string {
	parts := strings.Split(p, "%")
	if len(parts) < 3 {
		return p
	}
	var b strings.Builder
	b.WriteString(parts[0])
	i := 1
	for ; i < len(parts)-1; i++ {
		key := parts[i]
		if val, ok := os.LookupEnv(key); ok && key != "" {
			b.WriteString(val)
			i++
			b.WriteString(parts[i])
			continue
		}
		b.WriteByte('%')
		b.WriteString(key)
	}
	for ; i < len(parts); i++ {
		b.WriteByte('%')
		b.WriteString(parts[i])
	}
	return b.String()
}
