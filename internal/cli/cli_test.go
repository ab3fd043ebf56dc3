package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/tagweaver/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"--in=./site/",
				"--out=./dist/",
				"--graph=deps.hcl",
				"--log-level=DEBUG",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				InputPath:  "./site/",
				OutputPath: "./dist/",
				GraphPath:  "deps.hcl",
				LogLevel:   "debug",
				LogFormat:  "json",
			},
		},
		{
			name:           "Only input",
			args:           []string{"--in=site"},
			expectedConfig: &app.Config{InputPath: "site"},
		},
		{
			name:           "Config file replaces input flag",
			args:           []string{"-config", "tagweaver.hcl"},
			expectedConfig: &app.Config{ConfigPath: "tagweaver.hcl"},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:      "Missing input",
			args:      []string{"--out=dist"},
			expectErr: "input directory not specified",
		},
		{
			name:      "Unknown flag",
			args:      []string{"--watch"},
			expectErr: "flag provided but not defined: -watch",
		},
		{
			name:      "Positional arguments are rejected",
			args:      []string{"--in=site", "extra"},
			expectErr: `unexpected argument "extra"`,
		},
		{
			name:      "Invalid log format",
			args:      []string{"--in=site", "--log-format=xml"},
			expectErr: "invalid log-format",
		},
		{
			name:      "Invalid log level",
			args:      []string{"--in=site", "--log-level=trace"},
			expectErr: "invalid log-level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			config, shouldExit, err := Parse(tc.args, &out)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
