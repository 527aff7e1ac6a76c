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

// fakePusher implements driving.Pusher and records what it was asked to do.
type fakePusher struct {
	report  *driving.PushReport
	gotPath string
	gotOpts driving.PushOptions
}

func (f *fakePusher) Push(_ context.Context, path string, opts driving.PushOptions) (*driving.PushReport, error) {
	f.gotPath = path
	f.gotOpts = opts
	return f.report, nil
}

func memoryConnector(store *memory.Store) func(context.Context) (driven.Store, error) {
	return func(context.Context) (driven.Store, error) { return store, nil }
}

func TestPushCmd_RunsAndSummarises(t *testing.T) {
	path := tempJSON(t, `{"institution": ["A"], "companies": ["B"]}`)

	pusher := &fakePusher{report: &driving.PushReport{
		Institutions:              1,
		CompaniesFromFile:         1,
		CompaniesFromInstitutions: 1,
		CompaniesTotal:            2,
	}}
	var gotBuffered bool
	Init(Dependencies{
		ConnectStore: memoryConnector(memory.NewStore()),
		NewPusher: func(_ driven.Store, buffered bool) driving.Pusher {
			gotBuffered = buffered
			return pusher
		},
	})

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"push", "-i", path, "--chunk", "7", "--no-stream"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, path, pusher.gotPath)
	assert.Equal(t, 7, pusher.gotOpts.Chunk)
	assert.True(t, gotBuffered)
	assert.Contains(t, out.String(), `Inserted 1 institutions into list "institutions"`)
	assert.Contains(t, out.String(), "newly added from file: 1, from institutions: 1")
}

func TestPushCmd_MissingInputFailsBeforeConnecting(t *testing.T) {
	connected := false
	Init(Dependencies{
		ConnectStore: func(context.Context) (driven.Store, error) {
			connected = true
			return memory.NewStore(), nil
		},
		NewPusher: func(driven.Store, bool) driving.Pusher { return &fakePusher{} },
	})

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"push", "-i", "does-not-exist.json"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.False(t, connected, "store must not be dialed when the input is missing")
}
