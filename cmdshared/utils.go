package cmdshared

import (
	"path/filepath"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/igorsobreira/titlecase"
)

// DefaultPackName turns a directory name into a space-separated proper name, e.g. "my-cool_pack" -> "My Cool Pack"
func DefaultPackName(dir string) string {
	directoryName := filepath.Base(dir)
	if directoryName == "." || directoryName == string(filepath.Separator) || len(directoryName) == 0 {
		return ""
	}
	return titlecase.Title(strings.ReplaceAll(strings.ReplaceAll(strings.Join(camelcase.Split(directoryName), " "), " - ", " "), " _ ", " "))
}
