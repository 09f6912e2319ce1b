// Package docs holds the markdown shown on the welcome screen and by
// `hrms about`.
package docs

import (
	_ "embed"
)

//go:embed welcome.md
var Welcome string
