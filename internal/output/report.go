package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/savings-projector/internal/domain"
)

// GenerateReport writes the comparison in the named format under dir and returns the
// files it created. "all" writes the console report and the detailed CSV.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "detailed-csv"} {
			f := GetFormatterByName(name)
			file, err := WriteFormatted(f, results, dir, fileExtensions[name])
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s, all (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	file, err := WriteFormatted(f, results, dir, fileExtensions[f.Name()])
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}
