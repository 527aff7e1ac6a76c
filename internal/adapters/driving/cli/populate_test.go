package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsajid-cs/redis-populate/internal/adapters/driven/storage/memory"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driving"
)

// fakePopulator implements driving.Populator and records its arguments.
type fakePopulator struct {
	report   *driving.PopulateReport
	gotPath  string
	gotChunk int
}

func (f *fakePopulator) PopulateAll(_ context.Context, path string, chunk int) (*driving.PopulateReport, error) {
	f.gotPath = path
	f.gotChunk = chunk
	return f.report, nil
}

func TestPopulateCmd_RunsAndSummarises(t *testing.T) {
	path := tempJSON(t, `{"degree": ["BSc"], "institution": ["A"], "role": ["Engineer"], "companies": ["B"]}`)

	populator := &fakePopulator{report: &driving.PopulateReport{
		Degrees:                   1,
		Institutions:              1,
		Roles:                     1,
		CompaniesFromFile:         1,
		CompaniesFromInstitutions: 1,
		CompaniesTotal:            2,
	}}
	Init(Dependencies{
		ConnectStore: memoryConnector(memory.NewStore()),
		NewPopulator: func(driven.Store) driving.Populator { return populator },
	})

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"populate", "-i", path, "--chunk", "50"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, path, populator.gotPath)
	assert.Equal(t, 50, populator.gotChunk)
	assert.Contains(t, out.String(), "Inserted 1 degrees and 1 institutions")
	assert.Contains(t, out.String(), "Inserted 1 roles and 2 unique companies (from file: 1, from institutions: 1)")
}

func TestPopulateCmd_ConfigDefaultsApplyWhenFlagsUnset(t *testing.T) {
	path := tempJSON(t, `{"degree": []}`)

	// Flag state carries over between Execute calls in the same process.
	populateCmd.Flags().Lookup("input").Changed = false
	populateCmd.Flags().Lookup("chunk").Changed = false

	populator := &fakePopulator{report: &driving.PopulateReport{}}
	Init(Dependencies{
		ConnectStore: memoryConnector(memory.NewStore()),
		NewPopulator: func(driven.Store) driving.Populator { return populator },
		DefaultInput: path,
		DefaultChunk: 250,
	})

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"populate"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, path, populator.gotPath)
	assert.Equal(t, 250, populator.gotChunk)
}

func TestPopulateCmd_MissingInputFailsBeforeConnecting(t *testing.T) {
	connected := false
	Init(Dependencies{
		ConnectStore: func(context.Context) (driven.Store, error) {
			connected = true
			return memory.NewStore(), nil
		},
		NewPopulator: func(driven.Store) driving.Populator { return &fakePopulator{} },
	})

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"populate", "-i", "does-not-exist.json"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.False(t, connected, "store must not be dialed when the input is missing")
}
