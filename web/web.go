// Package web carries the embedded browser UI: the 3x3 grid, status line,
// reset button and theme toggle.
package web

import "embed"

//go:embed index.html
var Static embed.FS
