package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/steviee/mclookup/internal/playerdb"
	"github.com/steviee/mclookup/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		commit    string
		date      string
		builtBy   string
		wantUse   string
		wantShort string
	}{
		{
			name:      "creates version command",
			version:   "1.0.0",
			commit:    "abc123",
			date:      "2025-11-05",
			builtBy:   "goreleaser",
			wantUse:   "version",
			wantShort: "Print version information",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version, tt.commit, tt.date, tt.builtBy)

			assert.Equal(t, tt.wantUse, cmd.Use)
			assert.Equal(t, tt.wantShort, cmd.Short)
			assert.NotEmpty(t, cmd.Long)
			assert.NotEmpty(t, cmd.Example)
		})
	}
}

func TestPrintVersion_TextFormat(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		builtBy string
		want    []string
	}{
		{
			name:    "prints all version info",
			version: "1.0.0",
			commit:  "abc123",
			date:    "2025-11-05",
			builtBy: "goreleaser",
			want: []string{
				"mclookup version 1.0.0",
				"Commit: abc123",
				"Built: 2025-11-05",
				"Built by: goreleaser",
			},
		},
		{
			name:    "prints dev version",
			version: "dev",
			commit:  "unknown",
			date:    "unknown",
			builtBy: "unknown",
			want: []string{
				"mclookup version dev",
				"Commit: unknown",
				"Built: unknown",
				"Built by: unknown",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := printVersion(&buf, newVersionInfo(tt.version, tt.commit, tt.date, tt.builtBy, nil))
			require.NoError(t, err)

			output := buf.String()
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestPrintVersion_JSONFormat(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		builtBy string
	}{
		{
			name:    "prints JSON output",
			version: "1.0.0",
			commit:  "abc123",
			date:    "2025-11-05",
			builtBy: "goreleaser",
		},
		{
			name:    "prints JSON with dev version",
			version: "dev",
			commit:  "unknown",
			date:    "unknown",
			builtBy: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set JSON output mode
			jsonOut = true
			defer func() { jsonOut = false }()

			var buf bytes.Buffer

			err := printVersion(&buf, newVersionInfo(tt.version, tt.commit, tt.date, tt.builtBy, nil))
			require.NoError(t, err)

			// Verify valid JSON
			var result struct {
				Status string      `json:"status"`
				Data   VersionInfo `json:"data"`
			}
			err = json.Unmarshal(buf.Bytes(), &result)
			require.NoError(t, err)

			// Verify content
			assert.Equal(t, "success", result.Status)
			assert.Equal(t, tt.version, result.Data.Version)
			assert.Equal(t, tt.commit, result.Data.Commit)
			assert.Equal(t, tt.date, result.Data.Date)
			assert.Equal(t, tt.builtBy, result.Data.BuiltBy)
		})
	}
}

func TestVersionCommand_Execute(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		version    string
		commit     string
		date       string
		builtBy    string
		jsonMode   bool
		wantOutput []string
		wantErr    bool
	}{
		{
			name:     "execute version command text output",
			args:     []string{},
			version:  "1.0.0",
			commit:   "abc123",
			date:     "2025-11-05",
			builtBy:  "goreleaser",
			jsonMode: false,
			wantOutput: []string{
				"mclookup version 1.0.0",
				"Commit: abc123",
				"Ashcon: https://api.ashcon.app",
			},
			wantErr: false,
		},
		{
			name:     "execute version command json output",
			args:     []string{},
			version:  "1.0.0",
			commit:   "abc123",
			date:     "2025-11-05",
			builtBy:  "goreleaser",
			jsonMode: true,
			wantOutput: []string{
				`"status": "success"`,
				`"version": "1.0.0"`,
				`"user_agent": "mclookup/dev (https://github.com/steviee/mclookup)"`,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			jsonOut = tt.jsonMode
			defer func() { jsonOut = false }()

			cmd := NewVersionCommand(tt.version, tt.commit, tt.date, tt.builtBy)
			cmd.SetArgs(tt.args)

			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)

			err := cmd.Execute()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				output := out.String()
				for _, want := range tt.wantOutput {
					assert.Contains(t, output, want)
				}
			}
		})
	}
}

func TestVersionInfo_JSONMarshal(t *testing.T) {
	info := VersionInfo{
		Version: "1.0.0",
		Commit:  "abc123",
		Date:    "2025-11-05",
		BuiltBy: "goreleaser",
	}

	data, err := json.Marshal(info)
	require.NoError(t, err)

	var result VersionInfo
	err = json.Unmarshal(data, &result)
	require.NoError(t, err)

	assert.Equal(t, info.Version, result.Version)
	assert.Equal(t, info.Commit, result.Commit)
	assert.Equal(t, info.Date, result.Date)
	assert.Equal(t, info.BuiltBy, result.BuiltBy)
}

func TestPrintVersionJSON_ValidJSON(t *testing.T) {
	info := VersionInfo{
		Version: "1.0.0",
		Commit:  "abc123",
		Date:    "2025-11-05",
		BuiltBy: "goreleaser",
	}

	var buf bytes.Buffer
	err := printVersionJSON(&buf, info)
	require.NoError(t, err)

	// Verify it's valid JSON
	var result map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	// Verify structure
	assert.Contains(t, result, "status")
	assert.Contains(t, result, "data")
}

func TestPrintVersionText_Format(t *testing.T) {
	info := VersionInfo{
		Version:   "1.0.0",
		Commit:    "abc123",
		Date:      "2025-11-05",
		BuiltBy:   "goreleaser",
		UserAgent: "mclookup/1.0.0",
		Services:  []ServiceInfo{{Name: "PlayerDB", URL: "https://playerdb.co"}},
	}

	var buf bytes.Buffer
	err := printVersionText(&buf, info)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 6)

	assert.Contains(t, lines[0], "mclookup version 1.0.0")
	assert.Contains(t, lines[1], "Commit: abc123")
	assert.Contains(t, lines[2], "Built: 2025-11-05")
	assert.Contains(t, lines[3], "Built by: goreleaser")
	assert.Equal(t, "User agent: mclookup/1.0.0", lines[4])
	assert.Equal(t, "PlayerDB: https://playerdb.co", lines[5])
}

func TestNewVersionInfo_Services(t *testing.T) {
	cfg := state.DefaultConfig()
	cfg.API.PlayerDBURL = "http://127.0.0.1:9000"
	cfg.API.UserAgent = "tester/1.0"

	tests := []struct {
		name          string
		cfg           *state.Config
		wantUserAgent string
		wantPlayerDB  string
	}{
		{name: "defaults", cfg: nil, wantUserAgent: playerdb.UserAgent, wantPlayerDB: "https://playerdb.co"},
		{name: "configured", cfg: cfg, wantUserAgent: "tester/1.0", wantPlayerDB: "http://127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := newVersionInfo("1.0.0", "abc123", "2025-11-05", "goreleaser", tt.cfg)

			assert.Equal(t, tt.wantUserAgent, info.UserAgent)
			require.Len(t, info.Services, 3)
			assert.Equal(t, ServiceInfo{Name: "PlayerDB", URL: tt.wantPlayerDB}, info.Services[0])
			assert.Equal(t, "Ashcon", info.Services[1].Name)
			assert.Equal(t, "https://crafatar.com/skins/%s", info.Services[2].URL)

			var buf bytes.Buffer
			require.NoError(t, printVersionText(&buf, info))
			assert.Contains(t, buf.String(), "User agent: "+tt.wantUserAgent)
			assert.Contains(t, buf.String(), "PlayerDB: "+tt.wantPlayerDB)
		})
	}
}

func TestVersionCommand_ReportsEnvironmentOverride(t *testing.T) {
	isolate(t)
	t.Setenv("MCLOOKUP_API_ASHCON_URL", "http://127.0.0.1:9001")

	stdout, _, err := executeRoot(t, "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Ashcon: http://127.0.0.1:9001")
}
