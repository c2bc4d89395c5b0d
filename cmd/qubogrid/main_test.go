package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubogrid/config"
	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/qubo"
	"github.com/katalvlaran/qubogrid/report"
)

func runCLI(t *testing.T, args ...string) (*report.Report, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out, io.Discard, nil)
	if out.Len() == 0 {
		return nil, err
	}
	rep, derr := report.Decode(&out, "json")
	require.NoError(t, derr)

	return rep, err
}

func TestGenerate(t *testing.T) {
	rep, err := runCLI(t, "generate", "-N", "4", "-d", "0.5")
	require.NoError(t, err)
	require.Len(t, rep.Logical, 1)
	assert.Equal(t, 2, rep.Logical[0].K)
	assert.Len(t, rep.Logical[0].Edges, 4)
	assert.Equal(t, "generate", rep.Command)
	assert.Equal(t, 1, rep.Logical[0].Summary.Components)
	assert.Nil(t, rep.Logical[0].QUBO)

	rep, err = runCLI(t, "generate", "-N", "4", "-d", "0.5", "-matrix")
	require.NoError(t, err)
	assert.Len(t, rep.Logical[0].QUBO, 4)
	assert.Len(t, rep.Logical[0].Variables, 4)

	rep, err = runCLI(t, "generate", "-N", "4", "-d", "0.5", "-prefix", "x", "-couplings", "int", "-coupling_range", "1")
	require.NoError(t, err)
	for _, e := range rep.Logical[0].Edges {
		assert.Regexp(t, `^x\d$`, e.From)
		assert.LessOrEqual(t, e.Weight, int64(1))
		assert.GreaterOrEqual(t, e.Weight, int64(-1))
	}
}

func TestGenerate_InvalidConfiguration(t *testing.T) {
	rep, err := runCLI(t, "generate", "-N", "5", "-d", "0.25")
	assert.Nil(t, rep, "no partial output")
	assert.ErrorIs(t, err, qubo.ErrInvalidConfiguration)
}

func TestCompare(t *testing.T) {
	rep, err := runCLI(t, "compare", "-seed", "3")
	require.NoError(t, err)
	require.Len(t, rep.Logical, 2)
	assert.Equal(t, qubo.ModeDeterministic, rep.Logical[0].Params.Mode)
	assert.Equal(t, qubo.ModeProbabilistic, rep.Logical[1].Params.Mode)
}

func TestHardware(t *testing.T) {
	rep, err := runCLI(t, "hardware", "-n", "2", "-group_size", "3")
	require.NoError(t, err)
	require.NotNil(t, rep.Hardware)
	assert.Equal(t, 12, rep.Hardware.Nodes)
	assert.Equal(t, 12, rep.Hardware.Intra)
	assert.Equal(t, 36, rep.Hardware.Inter)
	assert.Len(t, rep.Hardware.Positions, 12)

	rep, err = runCLI(t, "hardware", "-shape", "line", "-n", "3", "-edges=false")
	require.NoError(t, err)
	assert.Equal(t, "line", rep.Hardware.Shape)
	assert.Empty(t, rep.Hardware.Positions)
}

func TestEmbed_AutoExpandWritesFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "run.msgpack")
	prom := filepath.Join(dir, "run.prom")

	var stdout bytes.Buffer
	err := run([]string{"embed", "-auto_expand", "-format", "msgpack", "-o", out, "-metrics", prom}, &stdout, io.Discard, nil)
	require.NoError(t, err)
	assert.Zero(t, stdout.Len())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rep, err := report.Decode(f, "msgpack")
	require.NoError(t, err)
	require.NotNil(t, rep.Embed)
	assert.True(t, rep.Embed.Found)
	assert.Len(t, rep.Embed.Chains, 12)
	assert.GreaterOrEqual(t, rep.Embed.Size, 6)

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "qubogrid_embedding_attempts_total")
	assert.Contains(t, string(raw), `qubogrid_generations_total{mode="probabilistic",outcome="success"} 1`)
}

func TestEmbed_FixedSizeTooSmall(t *testing.T) {
	rep, err := runCLI(t, "embed", "-N", "8", "-n", "1", "-group_size", "2")
	assert.ErrorIs(t, err, embed.ErrEmbeddingNotFound)
	require.NotNil(t, rep)
	assert.False(t, rep.Embed.Found)
	assert.Equal(t, []int{1}, rep.Embed.Tried)
}

func TestEmbed_FixedSizeAboveMaxN(t *testing.T) {
	rep, err := runCLI(t, "embed", "-n", "3", "-max_n", "2")
	if err != nil {
		require.ErrorIs(t, err, embed.ErrEmbeddingNotFound)
	}
	require.NotNil(t, rep)
	assert.Equal(t, []int{3}, rep.Embed.Tried)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	c := config.Default()
	c.Qubo.N, c.Qubo.Density = 6, 0.4
	c.Output.Format = config.FormatYAML
	raw, err := c.Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	inv, err := parse("generate", []string{"-config", path, "-N", "8"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 8, inv.cfg.Qubo.N, "flag wins over file")
	assert.Equal(t, 0.4, inv.cfg.Qubo.Density, "file wins over default")
	assert.Equal(t, config.FormatYAML, inv.cfg.Output.Format)

	inv, err = parse("embed", nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 12, inv.cfg.Qubo.N)
	assert.False(t, inv.withEdges)
}

func TestUsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"no command":        nil,
		"unknown command":   {"draw"},
		"unknown flag":      {"generate", "-zzz"},
		"stray argument":    {"hardware", "extra"},
		"hardware has no N": {"hardware", "-N", "4"},
	} {
		err := run(args, io.Discard, io.Discard, nil)
		assert.ErrorIs(t, err, errUsage, name)
	}

	err := run([]string{"generate", "-h"}, io.Discard, io.Discard, nil)
	assert.ErrorIs(t, err, flag.ErrHelp)

	err = run([]string{"generate", "-format", "xml"}, io.Discard, io.Discard, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestVerbosityReachesLogFlags(t *testing.T) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	v := fs.String("v", "0", "")
	require.NoError(t, run([]string{"hardware", "-n", "1", "-v", "2"}, io.Discard, io.Discard, fs))
	assert.Equal(t, "2", *v)
}
