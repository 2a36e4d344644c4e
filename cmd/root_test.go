package cmd

import (
	"context"
	"testing"

	"happy-thoughts-api/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_Root_Registers_Subcommands(t *testing.T) {
	req := require.New(t)
	names := make([]string, 0)
	for _, c := range RootCmd.Commands() {
		names = append(names, c.Name())
	}
	req.Contains(names, "serve")
	req.Contains(names, "indexes")
	req.NotNil(RootCmd.Flags().Lookup("memory"))
	req.NotNil(serveCmd.Flags().Lookup("memory"))
}

func Test_OpenStore_Memory(t *testing.T) {
	req := require.New(t)
	Log = zap.NewNop()
	useMemory = true
	t.Cleanup(func() { useMemory = false })

	store, closeStore, err := openStore(context.Background())
	req.NoError(err)
	defer closeStore()
	req.IsType(&repository.MemoryThoughtRepository{}, store)
}
