package mimetypes

import (
	"mime"
	"path/filepath"
	"strings"
	"sync"

	mimedb "gitlab.com/gitlab-org/go-mimedb"
	"gitlab.com/gitlab-org/labkit/log"
)

// Fallback is returned for extensions missing from the table.
const Fallback = "text/plain"

var known = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// registered on top of the mimedb database
var extraTypes = map[string]string{
	".avif": "image/avif",
}

var loadExtended sync.Once

// ByName returns the content type for the extension of name, using the
// small built-in table.
func ByName(name string) string {
	if t, ok := known[ext(name)]; ok {
		return t
	}

	return Fallback
}

// ExtendedByName is ByName, but extensions missing from the built-in table
// are looked up in the mimedb database before falling back.
func ExtendedByName(name string) string {
	e := ext(name)
	if t, ok := known[e]; ok {
		return t
	}

	loadExtended.Do(loadTypes)

	if t := mime.TypeByExtension(e); t != "" {
		return t
	}

	return Fallback
}

func loadTypes() {
	if err := mimedb.LoadTypes(); err != nil {
		log.WithError(err).Error("failed to load mime types database")
	}

	for e, mimeType := range extraTypes {
		if err := mime.AddExtensionType(e, mimeType); err != nil {
			log.WithError(err).Errorf("failed to add extension: %q with MIME type: %q", e, mimeType)
		}
	}
}

func ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
