// Package render defines the renderer contract and the registry the
// documentation generator dispatches output formats through. Concrete
// renderers live under pkg/renderers; the shared column-width helpers here
// keep their tables aligned the same way.
package render
