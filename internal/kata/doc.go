// Package kata contiene los ejercicios del pet kata como suites de tests.
// Cada ejercicio deriva un valor del roster con un pipeline de colecciones
// (lo + internal/platform/collections) y lo compara contra un literal.
package kata
