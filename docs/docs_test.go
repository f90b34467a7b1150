package docs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type operation struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// annotations junta @Summary/@Description por @Router de los handlers.
func annotations(t *testing.T) map[string]operation {
	t.Helper()

	files, err := filepath.Glob("../internal/domain/*/handler.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	out := map[string]operation{}
	for _, f := range files {
		fh, err := os.Open(f)
		require.NoError(t, err)

		var cur operation
		sc := bufio.NewScanner(fh)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			switch {
			case strings.HasPrefix(line, "// @Summary "):
				cur.Summary = strings.TrimPrefix(line, "// @Summary ")
			case strings.HasPrefix(line, "// @Description "):
				cur.Description = strings.TrimPrefix(line, "// @Description ")
			case strings.HasPrefix(line, "// @Router "):
				route := strings.Fields(strings.TrimPrefix(line, "// @Router "))[0]
				out[route] = cur
				cur = operation{}
			}
		}
		require.NoError(t, sc.Err())
		_ = fh.Close()
	}
	return out
}

func TestDocMatchesHandlerAnnotations(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]operation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	want := annotations(t)
	require.Len(t, doc.Paths, len(want))
	for route, op := range want {
		got, ok := doc.Paths[route]["get"]
		if assert.True(t, ok, route) {
			assert.Equal(t, op, got, route)
		}
	}
}
