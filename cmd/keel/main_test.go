package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/keel/internal/app"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newComponents builds an App whose configuration loading is driven by loader.
func newComponents(ctrl *gomock.Controller, loader *mocks.MockConfigLoader, log *mocks.MockLogger) ComponentProvider {
	application := app.New(
		loader,
		mocks.NewMockSuiteExplorer(ctrl),
		nil,
		mocks.NewMockTracerBackend(ctrl),
		mocks.NewMockMetrics(ctrl),
		log,
		nil,
	)
	return func(context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: log}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newComponents(ctrl, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "keel version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command failures are logged and return 1.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	loader.EXPECT().Load(".").Return(nil, domain.ErrConfigInvalid)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), new(bytes.Buffer), newComponents(ctrl, loader, log))
	assert.Equal(t, 1, exitCode)
}

// TestRun_BuildExecutionFailedIsNotLoggedTwice verifies that build failures only set the exit code.
func TestRun_BuildExecutionFailedIsNotLoggedTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	loader.EXPECT().Load(".").Return(nil, errors.Join(domain.ErrBuildExecutionFailed, errors.New("boom")))
	log.EXPECT().Error(gomock.Any()).Times(0)

	exitCode := run(context.Background(), []string{"clean"}, new(bytes.Buffer), new(bytes.Buffer), newComponents(ctrl, loader, log))
	assert.Equal(t, 1, exitCode)
}
