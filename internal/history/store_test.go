// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vcard-convert/pkg/types"
)

func newTestStore(t *testing.T, maxResults int) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{Enabled: true, Dir: t.TempDir(), MaxResults: maxResults})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun(input string, at time.Time) types.Run {
	return types.Run{
		StartedAt: at,
		Input:     input,
		Output:    "contacts_v4.vcf",
		Status:    types.ConversionDone,
		Options:   types.ConversionOptions{RemoveFormattedName: true},
		Summary:   types.Summary{Records: 12, Organizations: 3, PhotoLines: 40},
	}
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"first.vcf", "second.vcf", "third.vcf"} {
		id, err := s.Record(ctx, sampleRun(name, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "third.vcf", runs[0].Input)
	assert.Equal(t, "first.vcf", runs[2].Input)
	assert.True(t, base.Add(2*time.Hour).Equal(runs[0].StartedAt))
	assert.Equal(t, types.ConversionDone, runs[0].Status)
	assert.Equal(t, types.ConversionOptions{RemoveFormattedName: true}, runs[0].Options)
	assert.Equal(t, types.Summary{Records: 12, Organizations: 3, PhotoLines: 40}, runs[0].Summary)
}

func TestListLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 2)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, sampleRun("contacts.vcf", base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 2, "store default applies")

	runs, err = s.List(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, runs, 4)
}

func TestRecordDefaultsStartTime(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)

	before := time.Now().Add(-time.Second)
	_, err := s.Record(ctx, types.Run{Input: "contacts.vcf", Output: "out.vcf", Status: types.ConversionFailed})
	require.NoError(t, err)

	runs, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].StartedAt.After(before))
}

func TestExportYAML(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)
	_, err := s.Record(ctx, sampleRun("contacts.vcf", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.ExportYAML(ctx, &buf))

	var runs []types.Run
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "contacts.vcf", runs[0].Input)
	assert.Equal(t, 3, runs[0].Summary.Organizations)
	assert.Contains(t, buf.String(), "remove_fn: true")
}
