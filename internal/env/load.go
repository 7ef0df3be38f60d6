package env

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a dotenv file (e.g. ".env") and sets one environment variable per
// KEY=VALUE line, optionally prefixed with "export ". Blank lines and # comments are
// skipped, and matching single or double quotes around a value are stripped.
// It returns the keys it set, in file order. A missing file is not an error; a
// line without a key or "=" is, and stops loading at that line.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("env: %w", err)
	}
	defer f.Close()

	var applied []string
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return applied, fmt.Errorf("env: %s:%d: %w", path, n, err)
		}
		if !ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return applied, fmt.Errorf("env: %s:%d: %w", path, n, err)
		}
		applied = append(applied, key)
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("env: %w", err)
	}
	return applied, nil
}

// parseLine reports ok=false for blank and comment lines.
func parseLine(raw string) (key, value string, ok bool, err error) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false, nil
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false, fmt.Errorf("missing '=' in %q", line)
	}
	key = strings.TrimSpace(k)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false, fmt.Errorf("bad key %q", k)
	}
	value = strings.TrimSpace(v)
	if len(value) >= 2 {
		if q := value[0]; (q == '"' || q == '\'') && value[len(value)-1] == q {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true, nil
}
