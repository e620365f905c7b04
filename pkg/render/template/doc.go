// Package template wraps pongo2 behind a small rendering interface so the
// result display can load templates from an fs.FS, a directory on disk or an
// inline string.
package template
