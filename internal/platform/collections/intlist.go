package collections

import (
	"errors"
	"slices"

	"github.com/samber/lo"
)

var (
	ErrEmpty = errors.New("collections: empty list")
)

// IntList es una lista de enteros con los agregados típicos de una lista
// primitiva (min/max/sum/average/median con fallback para vacío).
type IntList []int

// CollectInt proyecta cada item a un entero.
func CollectInt[S any](items []S, fn func(S) int) IntList {
	return IntList(lo.Map(items, func(it S, _ int) int { return fn(it) }))
}

func (l IntList) Size() int {
	return len(l)
}

func (l IntList) MinIfEmpty(fallback int) int {
	if len(l) == 0 {
		return fallback
	}
	return lo.Min([]int(l))
}

func (l IntList) MaxIfEmpty(fallback int) int {
	if len(l) == 0 {
		return fallback
	}
	return lo.Max([]int(l))
}

func (l IntList) Sum() int {
	return lo.Sum([]int(l))
}

func (l IntList) AverageIfEmpty(fallback float64) float64 {
	if len(l) == 0 {
		return fallback
	}
	return float64(l.Sum()) / float64(len(l))
}

// Median: largo impar => elemento central; largo par => promedio de los dos centrales.
func (l IntList) Median() (float64, error) {
	if len(l) == 0 {
		return 0, ErrEmpty
	}
	sorted := l.Sorted()
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2, nil
	}
	return float64(sorted[mid]), nil
}

func (l IntList) MedianIfEmpty(fallback float64) float64 {
	m, err := l.Median()
	if err != nil {
		return fallback
	}
	return m
}

// Sorted devuelve una copia ordenada ascendente.
func (l IntList) Sorted() IntList {
	out := slices.Clone(l)
	slices.Sort(out)
	return out
}

// ToSet devuelve los valores distintos, ordenados.
func (l IntList) ToSet() []int {
	out := lo.Uniq([]int(l))
	slices.Sort(out)
	return out
}

func (l IntList) AllSatisfy(pred func(int) bool) bool {
	return lo.EveryBy([]int(l), pred)
}

func (l IntList) AnySatisfy(pred func(int) bool) bool {
	return lo.SomeBy([]int(l), pred)
}

func (l IntList) NoneSatisfy(pred func(int) bool) bool {
	return lo.NoneBy([]int(l), pred)
}
