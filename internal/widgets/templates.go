package widgets

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templateFS embed.FS

// Templates returns the widget template filesystem, rooted at the templates
// directory so engine paths read "widgets/<name>.html".
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return templateFS
	}
	return sub
}
