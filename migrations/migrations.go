// Package migrations embeds the Spanner DDL for the catalog.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed *.sql
var Files embed.FS

// Migration is one .sql file split into DDL statements.
type Migration struct {
	Name       string
	Statements []string
}

// Load reads every *.sql file in fsys in lexical order.
func Load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{
			Name:       name,
			Statements: SplitDDL(string(content)),
		})
	}
	return migrations, nil
}

// SplitDDL drops comment and blank lines and splits on semicolons.
func SplitDDL(content string) []string {
	lines := strings.Split(content, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	content = strings.Join(cleaned, "\n")

	statements := strings.Split(content, ";")
	var result []string
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			result = append(result, stmt)
		}
	}

	return result
}

var createObject = regexp.MustCompile(`(?i)^CREATE\s+(?:UNIQUE\s+)?(?:NULL_FILTERED\s+)?(TABLE|INDEX)\s+` + "`?" + `([A-Za-z0-9_]+)`)

// objectKey names the table or index a CREATE statement defines, e.g. "TABLE beverages".
// Other statements return "".
func objectKey(stmt string) string {
	m := createObject.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1]) + " " + strings.ToLower(m[2])
}

// Pending filters out CREATE statements whose table or index already appears
// in existing, the database's current DDL. Statements that create nothing
// are always kept.
func Pending(existing, statements []string) []string {
	defined := make(map[string]bool, len(existing))
	for _, stmt := range existing {
		if key := objectKey(stmt); key != "" {
			defined[key] = true
		}
	}

	var pending []string
	for _, stmt := range statements {
		if key := objectKey(stmt); key != "" && defined[key] {
			continue
		}
		pending = append(pending, stmt)
	}
	return pending
}
