package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/statline/statline/cmd/statline/commands"
	"github.com/statline/statline/internal/adapters/config"
	"github.com/statline/statline/internal/app"
	"github.com/statline/statline/internal/build"
	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
	"github.com/statline/statline/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	generateFunc func(ctx context.Context, cfg domain.Config, opts app.GenerateOptions) (domain.CompiledScript, error)
	verifyFunc   func(ctx context.Context) error
	cleanFunc    func(ctx context.Context) error
	telemetrySet bool
}

func (m *mockApp) Generate(ctx context.Context, cfg domain.Config, opts app.GenerateOptions) (domain.CompiledScript, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, cfg, opts)
	}
	return domain.CompiledScript{Raw: "#!/bin/bash\n", Size: 12}, nil
}

func (m *mockApp) Verify(ctx context.Context) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func (m *mockApp) SetTelemetry(_ ports.Telemetry) {
	m.telemetrySet = true
}

func newCLI(t *testing.T, a commands.Application) (*commands.CLI, *mocks.MockConfigLoader, *mocks.MockScriptWriter, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	writer := mocks.NewMockScriptWriter(ctrl)

	cli := commands.New(a, loader, writer)
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cli.SetOutput(out, errOut)
	return cli, loader, writer, out, errOut
}

func TestCommands_Generate(t *testing.T) {
	t.Run("prints script to stdout", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ domain.Config, _ app.GenerateOptions) (domain.CompiledScript, error) {
				return domain.CompiledScript{Raw: "#!/bin/bash\necho hi\n"}, nil
			},
		}
		cli, loader, _, out, _ := newCLI(t, mock)
		loader.EXPECT().Load(config.DefaultFilename).Return(domain.Config{}, nil)

		cli.SetArgs([]string{"generate"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "#!/bin/bash\necho hi\n", out.String())
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.GenerateOptions
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ domain.Config, opts app.GenerateOptions) (domain.CompiledScript, error) {
				capturedOpts = opts
				return domain.CompiledScript{Raw: "#!/bin/bash\n"}, nil
			},
		}
		cli, loader, _, _, _ := newCLI(t, mock)
		loader.EXPECT().Load("custom.yaml").Return(domain.Config{}, nil)

		cli.SetArgs([]string{"generate", "-c", "custom.yaml", "--no-cache", "--progress"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, capturedOpts.NoCache)
		assert.True(t, mock.telemetrySet)
	})

	t.Run("installs script with output flag", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ domain.Config, _ app.GenerateOptions) (domain.CompiledScript, error) {
				return domain.CompiledScript{Raw: "#!/bin/bash\n", Size: 12}, nil
			},
		}
		cli, loader, writer, out, errOut := newCLI(t, mock)
		loader.EXPECT().Load(config.DefaultFilename).Return(domain.Config{}, nil)
		writer.EXPECT().Write("/tmp/statusline.sh", "#!/bin/bash\n").Return(nil)

		cli.SetArgs([]string{"generate", "-o", "/tmp/statusline.sh"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "installed /tmp/statusline.sh")
	})

	t.Run("returns loader error", func(t *testing.T) {
		cli, loader, _, _, _ := newCLI(t, &mockApp{})
		loader.EXPECT().Load(config.DefaultFilename).Return(domain.Config{}, errors.New("bad config"))

		cli.SetArgs([]string{"generate"})
		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad config")
	})

	t.Run("returns generation error", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ domain.Config, _ app.GenerateOptions) (domain.CompiledScript, error) {
				return domain.CompiledScript{}, errors.New("simulated error")
			},
		}
		cli, loader, _, _, _ := newCLI(t, mock)
		loader.EXPECT().Load(config.DefaultFilename).Return(domain.Config{}, nil)

		cli.SetArgs([]string{"generate"})
		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Verify(t *testing.T) {
	t.Run("reports success", func(t *testing.T) {
		cli, _, _, out, _ := newCLI(t, &mockApp{})

		cli.SetArgs([]string{"verify"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, out.String(), "template cache verified")
	})

	t.Run("propagates mismatch", func(t *testing.T) {
		mock := &mockApp{
			verifyFunc: func(_ context.Context) error {
				return domain.ErrTemplateMismatch
			},
		}
		cli, _, _, _, _ := newCLI(t, mock)

		cli.SetArgs([]string{"verify"})
		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrTemplateMismatch.Error())
	})
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}
	cli, _, _, out, _ := newCLI(t, mock)

	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Contains(t, out.String(), "cache cleaned")
}

func TestCommands_Version(t *testing.T) {
	cli, _, _, out, _ := newCLI(t, &mockApp{})

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "statline version "+build.Version)
}
