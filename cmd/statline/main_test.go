package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/statline/statline/internal/adapters/cache"
	"github.com/statline/statline/internal/adapters/telemetry"
	"github.com/statline/statline/internal/adapters/template"
	"github.com/statline/statline/internal/app"
	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
	"github.com/statline/statline/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T, loader ports.ConfigLoader, logger ports.Logger) *app.Components {
	t.Helper()
	store := cache.NewFileStore(filepath.Join(t.TempDir(), "statline"))
	manager := cache.NewManager(store, logger)
	refreshers := func(string) ports.Refresher {
		return ports.RefreshFunc(func(context.Context, domain.CacheDomain, string) (string, error) {
			return "", errors.New("no usage tool in tests")
		})
	}
	application := app.New(logger, telemetry.NewNoop(), manager, template.New(manager), refreshers)

	ctrl := gomock.NewController(t)
	writer := mocks.NewMockScriptWriter(ctrl)

	return &app.Components{
		App:          application,
		Logger:       logger,
		ConfigLoader: loader,
		ScriptWriter: writer,
	}
}

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	components := newComponents(t, loader, logger)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationFailure(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	loader.EXPECT().Load(gomock.Any()).Return(domain.Config{}, errors.New("config exploded"))
	logger.EXPECT().Error(gomock.Any())

	components := newComponents(t, loader, logger)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"generate"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
