// Package collections reúne helpers genéricos sobre samber/lo para armar
// pipelines sobre slices: tablas de frecuencia (Bag), listas de enteros con
// agregados (IntList) y joins de strings.
package collections

import (
	"cmp"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Occurrence es una entrada de la tabla de frecuencia.
type Occurrence[T comparable] struct {
	Value T
	Count int
}

// Bag es una tabla de frecuencia que recuerda el orden de la primera inserción
// de cada valor. Ese orden es el desempate de TopOccurrences.
type Bag[T comparable] struct {
	order  []T
	counts map[T]int
}

func NewBag[T comparable](items ...T) *Bag[T] {
	b := &Bag[T]{counts: make(map[T]int, len(items))}
	for _, it := range items {
		b.Add(it)
	}
	return b
}

// CountBy agrupa items por la clave que devuelve fn y cuenta ocurrencias.
func CountBy[S any, T comparable](items []S, fn func(S) T) *Bag[T] {
	return NewBag(lo.Map(items, func(it S, _ int) T { return fn(it) })...)
}

func (b *Bag[T]) Add(v T) {
	b.AddOccurrences(v, 1)
}

// AddOccurrences suma n ocurrencias de v. n <= 0 no hace nada.
func (b *Bag[T]) AddOccurrences(v T, n int) {
	if n <= 0 {
		return
	}
	if b.counts == nil {
		b.counts = make(map[T]int)
	}
	if _, seen := b.counts[v]; !seen {
		b.order = append(b.order, v)
	}
	b.counts[v] += n
}

func (b *Bag[T]) OccurrencesOf(v T) int {
	return b.counts[v]
}

// Size es el total de ocurrencias (no de valores distintos).
func (b *Bag[T]) Size() int {
	return lo.Sum(lo.Values(b.counts))
}

func (b *Bag[T]) SizeDistinct() int {
	return len(b.order)
}

// Occurrences devuelve las entradas en orden de primera inserción.
func (b *Bag[T]) Occurrences() []Occurrence[T] {
	return lo.Map(b.order, func(v T, _ int) Occurrence[T] {
		return Occurrence[T]{Value: v, Count: b.counts[v]}
	})
}

// TopOccurrences devuelve las n entradas más frecuentes, de mayor a menor.
// Los empates se resuelven por orden de primera inserción. Devuelve como
// máximo min(n, SizeDistinct()) entradas.
func (b *Bag[T]) TopOccurrences(n int) []Occurrence[T] {
	if n <= 0 {
		return []Occurrence[T]{}
	}
	out := b.Occurrences()
	slices.SortStableFunc(out, func(x, y Occurrence[T]) int {
		return cmp.Compare(y.Count, x.Count)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (b *Bag[T]) ToMap() map[T]int {
	if b.counts == nil {
		return map[T]int{}
	}
	return maps.Clone(b.counts)
}
