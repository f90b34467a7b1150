package collections

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// SummaryStatistics se calcula con un loop manual; sirve de referencia para
// comparar contra los agregados de IntList. Vacío => valor cero.
type SummaryStatistics struct {
	Count int
	Sum   int
	Min   int
	Max   int
}

func Summarize(values []int) SummaryStatistics {
	var s SummaryStatistics
	for i, v := range values {
		if i == 0 || v < s.Min {
			s.Min = v
		}
		if i == 0 || v > s.Max {
			s.Max = v
		}
		s.Sum += v
		s.Count++
	}
	return s
}

func (s SummaryStatistics) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

// MakeString une la representación de cada item con sep.
// Los fmt.Stringer se formatean con su String().
func MakeString[T any](items []T, sep string) string {
	return strings.Join(lo.Map(items, func(it T, _ int) string {
		return fmt.Sprint(it)
	}), sep)
}
