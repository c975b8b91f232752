package output_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtwebb/tokenize-comment/output"
)

func TestConfigNewEncoder(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args    []string
		want    string
		wantErr error
	}{
		"defaults": {
			want: "[]\n",
		},
		"yaml short flag": {
			args: []string{"-f", "yaml"},
			want: "[]\n",
		},
		"unknown format": {
			args:    []string{"--format", "xml"},
			wantErr: output.ErrInvalidOption,
		},
		"negative indent": {
			args:    []string{"--indent", "-1"},
			wantErr: output.ErrInvalidOption,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := output.NewConfig()

			cmd := &cobra.Command{Use: "test"}
			cfg.RegisterFlags(cmd.Flags())
			require.NoError(t, cmd.Flags().Parse(tc.args))

			enc, err := cfg.NewEncoder()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, enc.Encode(&buf, nil))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := output.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse(nil))

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, 2, cfg.Indent)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := output.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	completionFn, ok := cmd.GetFlagCompletionFunc("format")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, output.GetAllFormatStrings(), values)
}
