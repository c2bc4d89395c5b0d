package embed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/hardware"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"0", "2"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestValidate(t *testing.T) {
	hw, err := hardware.GridOfCliques(2, 3)
	require.NoError(t, err)
	logical := triangle(t)

	valid := embed.Embedding{
		"0": {"g:0:0:0"},
		"1": {"g:0:0:1"},
		"2": {"g:0:0:2"},
	}
	require.NoError(t, embed.Validate(logical, hw.Graph, valid))

	// a longer chain across two adjacent groups
	stretched := embed.Embedding{
		"0": {"g:0:0:0", "g:1:0:0"},
		"1": {"g:0:0:1"},
		"2": {"g:1:0:2"},
	}
	require.NoError(t, embed.Validate(logical, hw.Graph, stretched))

	cases := []struct {
		name  string
		emb   embed.Embedding
		cause error
	}{
		{"missing chain", embed.Embedding{"0": {"g:0:0:0"}, "1": {"g:0:0:1"}}, embed.ErrMissingChain},
		{"empty chain", embed.Embedding{"0": {"g:0:0:0"}, "1": {"g:0:0:1"}, "2": {}}, embed.ErrMissingChain},
		{"unknown hw node", embed.Embedding{"0": {"g:0:0:0"}, "1": {"g:0:0:1"}, "2": {"g:9:9:9"}}, embed.ErrUnknownNode},
		{"unknown logical", embed.Embedding{"0": {"g:0:0:0"}, "1": {"g:0:0:1"}, "2": {"g:0:0:2"}, "7": {"g:1:1:0"}}, embed.ErrUnknownNode},
		{"overlap", embed.Embedding{"0": {"g:0:0:0"}, "1": {"g:0:0:1"}, "2": {"g:0:0:1", "g:0:0:2"}}, embed.ErrChainOverlap},
		{"disconnected", embed.Embedding{"0": {"g:0:0:0", "g:1:1:0"}, "1": {"g:0:0:1"}, "2": {"g:0:0:2"}}, embed.ErrChainDisconnected},
		{"edge not covered", embed.Embedding{"0": {"g:0:0:0"}, "1": {"g:0:0:1"}, "2": {"g:1:1:2"}}, embed.ErrEdgeNotCovered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := embed.Validate(logical, hw.Graph, tc.emb)
			assert.ErrorIs(t, err, embed.ErrInvalidEmbedding)
			assert.ErrorIs(t, err, tc.cause)
		})
	}

	assert.ErrorIs(t, embed.Validate(nil, hw.Graph, valid), embed.ErrGraphNil)
}

func TestEmbeddingHelpers(t *testing.T) {
	e := embed.Embedding{"10": {"a", "b"}, "2": {"c"}}
	assert.Equal(t, []string{"2", "10"}, e.Keys())
	assert.Equal(t, 3, e.Qubits())
	assert.Equal(t, 2, e.MaxChain())

	c := e.Clone()
	c["2"][0] = "z"
	assert.Equal(t, "c", e["2"][0])
	assert.Zero(t, embed.Embedding{}.MaxChain())
}
