package errors_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/stretchr/testify/require"
)

type flag struct {
	failed atomic.Bool
}

func (f *flag) SetFailed() { f.failed.Store(true) }

func TestConcurrentConstruction_SeparateChannels(t *testing.T) {
	const workers = 64

	channels := make([]*flag, workers)
	results := make([]errors.Error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		channels[i] = &flag{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = errors.BadVectorOn(channels[i], i)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.True(t, channels[i].failed.Load())
		require.Equal(t, fmt.Sprintf("Bad file (expected a vector, got a matrix with %d columns).", i), results[i].Message())
	}
}

func TestPropagation_ThroughLayers(t *testing.T) {
	ch := &flag{}

	parse := func() error {
		return errors.BadStorageTypeOn(ch, "lead.bin")
	}
	load := func() error {
		if err := parse(); err != nil {
			return fmt.Errorf("loading lead field: %w", err)
		}
		return nil
	}

	err := load()

	require.True(t, ch.failed.Load())
	require.Equal(t, errors.CodeBadStorageType, errors.GetCode(err))
	require.Equal(t, 139, errors.ExitStatus(err))

	var mathErr errors.Error
	require.True(t, errors.As(err, &mathErr))
	require.Equal(t, "Bad storage type in file lead.bin.", mathErr.Message())
}
