package catalog

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed default.yaml
var defaultYAML []byte

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseYAML(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
})

// Default returns the built-in catalog: three topics with two questions each.
func Default() *Catalog {
	return defaultCatalog()
}
