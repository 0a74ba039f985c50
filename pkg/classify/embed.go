package classify

import (
	"embed"
	"io/fs"
)

//go:embed dictionary/*.yaml
var embeddedDictionary embed.FS

// EmbeddedFS returns the bundled dictionary configuration. Pass it to LoadFS
// to start from the default academic/administrative vocabulary.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDictionary, "dictionary")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns the built-in Dictionary parsed from the embedded
// configuration.
func Default() Dictionary {
	dict, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return dict
}
