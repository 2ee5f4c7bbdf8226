// Package render draws debug overlays of a page's kept wall-candidate
// lines and of a building model's walls, so the output of the line
// classifier and of the interpretation step can be checked by eye.
package render
