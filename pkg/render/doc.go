// Package render presents a prediction outcome. Renderers are registered by
// name ("text", "html", "json") and a Display picks one, resolving the theme
// tokens and the sanitized disclaimer before handing a View to the renderer.
// A nil outcome renders nothing.
package render
