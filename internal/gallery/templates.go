package gallery

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templateFS embed.FS

// Templates returns the shell template filesystem.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return templateFS
	}
	return sub
}
