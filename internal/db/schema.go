package db

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	embeddedschema "github.com/terraincognita07/mealtally/schema"
	"gorm.io/gorm"
)

var schemaFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type schemaFile struct {
	Order int
	Name  string
	SQL   string
}

// EnsureSchema runs the embedded bootstrap SQL for the connection's dialect.
// Every statement is IF NOT EXISTS, so it runs on each start without touching
// existing rows.
func EnsureSchema(database *gorm.DB) error {
	files, err := loadSchemaFiles(database.Dialector.Name())
	if err != nil {
		return err
	}

	for _, file := range files {
		statements := splitSQLStatements(file.SQL)
		if len(statements) == 0 {
			return fmt.Errorf("schema %s has no SQL statements", file.Name)
		}
		for _, statement := range statements {
			if err := database.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute schema %s statement %q: %w", file.Name, statement, err)
			}
		}
	}
	return nil
}

func loadSchemaFiles(dialect string) ([]schemaFile, error) {
	entries, err := fs.ReadDir(embeddedschema.Files, dialect)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no schema for dialect %q", dialect)
		}
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	files := make([]schemaFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileName := strings.TrimSpace(entry.Name())
		matches := schemaFilePattern.FindStringSubmatch(fileName)
		if len(matches) != 2 {
			continue
		}

		order, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse schema order from %s: %w", fileName, err)
		}

		rawSQL, err := fs.ReadFile(embeddedschema.Files, path.Join(dialect, fileName))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", fileName, err)
		}

		files = append(files, schemaFile{
			Order: order,
			Name:  fileName,
			SQL:   string(rawSQL),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Order == files[j].Order {
			return files[i].Name < files[j].Name
		}
		return files[i].Order < files[j].Order
	})

	return files, nil
}

func splitSQLStatements(sqlText string) []string {
	rawParts := strings.Split(sqlText, ";")
	statements := make([]string, 0, len(rawParts))
	for _, rawPart := range rawParts {
		statement := strings.TrimSpace(rawPart)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}
