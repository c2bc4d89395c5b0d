package report_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/hardware"
	"github.com/katalvlaran/qubogrid/qubo"
	"github.com/katalvlaran/qubogrid/report"
)

func sampleReport(t *testing.T) *report.Report {
	t.Helper()
	p := qubo.DefaultParams()
	p.N, p.Density, p.Couplings = 6, 0.4, qubo.CouplingsSign
	res, err := qubo.Run(p)
	require.NoError(t, err)

	r := report.New("embed")
	require.NoError(t, r.AddLogical(res, false))
	found, err := embed.NewDriver(embed.NewGreedy(embed.GreedyOptions{})).Search(res.Graph, 2)
	require.NoError(t, err)
	r.SetEmbedding(found, true)

	return r
}

func TestNew(t *testing.T) {
	a, b := report.New("generate"), report.New("generate")
	_, err := uuid.Parse(a.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, "generate", a.Command)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestSections(t *testing.T) {
	r := sampleReport(t)
	require.Len(t, r.Logical, 1)
	l := r.Logical[0]
	assert.Equal(t, 2, l.K)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2}, l.Sequence)
	assert.Equal(t, []int{0, 0, 6}, l.Histogram)
	assert.Len(t, l.Edges, 6)
	for _, e := range l.Edges {
		assert.Contains(t, []int64{-1, 1}, e.Weight)
	}

	require.NotNil(t, r.Hardware)
	assert.Equal(t, "grid", r.Hardware.Shape)
	assert.Equal(t, r.Hardware.Nodes, len(r.Hardware.Positions))
	assert.Equal(t, r.Hardware.Intra+r.Hardware.Inter, len(r.Hardware.Edges))

	require.NotNil(t, r.Embed)
	assert.True(t, r.Embed.Found)
	assert.Len(t, r.Embed.Chains, 6)
	assert.GreaterOrEqual(t, r.Embed.Qubits, 6)

	r.SetNotFound([]int{2, 3})
	assert.False(t, r.Embed.Found)
	assert.Equal(t, []int{2, 3}, r.Embed.Tried)
}

func TestEncodeDecode(t *testing.T) {
	r := sampleReport(t)
	for _, format := range []string{"json", "yaml", "msgpack"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.Encode(&buf, format, r))
			back, err := report.Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, r.RunID, back.RunID)
			assert.Equal(t, r.Logical[0].Edges, back.Logical[0].Edges)
			assert.Equal(t, r.Embed.Chains, back.Embed.Chains)
			assert.Equal(t, r.Hardware.Nodes, back.Hardware.Nodes)
			assert.True(t, r.CreatedAt.Equal(back.CreatedAt))
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, report.Encode(&buf, "xml", report.New("x")), report.ErrUnknownFormat)
	_, err := report.Decode(&buf, "toml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestHardwareOnly(t *testing.T) {
	hw, err := hardware.LineOfCliques(3, 2)
	require.NoError(t, err)
	r := report.New("hardware")
	r.SetHardware(hw, false)
	assert.Equal(t, 6, r.Hardware.Nodes)
	assert.Equal(t, 3, r.Hardware.Intra)
	assert.Equal(t, 8, r.Hardware.Inter)
	assert.Nil(t, r.Hardware.Edges)
	assert.Nil(t, r.Hardware.Positions)
}

func TestAddLogical_Matrix(t *testing.T) {
	p := qubo.DefaultParams()
	p.N, p.Density, p.Couplings = 4, 0.5, qubo.CouplingsUnit
	res, err := qubo.Run(p)
	require.NoError(t, err)

	r := report.New("generate")
	require.NoError(t, r.AddLogical(res, true))
	l := r.Logical[0]
	assert.Equal(t, []string{"0", "1", "2", "3"}, l.Variables)
	require.Len(t, l.QUBO, 4)
	var sum float64
	for i, row := range l.QUBO {
		for j, v := range row {
			if j <= i {
				assert.Zero(t, v)
			}
			sum += v
		}
	}
	assert.Equal(t, float64(len(l.Edges)), sum)

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, "yaml", r))
	back, err := report.Decode(&buf, "yaml")
	require.NoError(t, err)
	assert.Equal(t, l.QUBO, back.Logical[0].QUBO)
}
