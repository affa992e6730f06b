package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

func TestNodeHeight(t *testing.T) {
	tests := []struct {
		name     string
		columns  int
		expanded bool
		expected float64
	}{
		{"collapsed ignores columns", 12, false, HeaderHeight},
		{"expanded zero columns keeps floor", 0, true, HeaderHeight + MinBodyHeight},
		{"expanded one column keeps floor", 1, true, HeaderHeight + MinBodyHeight},
		{"expanded grows linearly", 5, true, HeaderHeight + 5*RowHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &lineage.Node{ID: "t", Columns: make([]string, tt.columns)}
			assert.Equal(t, tt.expected, NodeHeight(n, tt.expanded))
		})
	}
}

func TestNodeBox(t *testing.T) {
	n := &lineage.Node{
		ID:       "orders",
		Position: &geo.Point{X: 100, Y: 50},
		Columns:  []string{"id", "amount", "created_at"},
	}

	box, ok := NodeBox(n, false)
	require.True(t, ok)
	assert.Equal(t, geo.NewBox(geo.NewPoint(100, 50), NodeWidth, HeaderHeight), box)

	box, ok = NodeBox(n, true)
	require.True(t, ok)
	assert.Equal(t, HeaderHeight+3*RowHeight, box.Height)
}

func TestNodeBoxNoPosition(t *testing.T) {
	_, ok := NodeBox(&lineage.Node{ID: "detached"}, true)
	assert.False(t, ok)
}
