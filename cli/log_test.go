package cli

import (
	"testing"

	"github.com/ardnew/jan/log"
)

// restoreLog resets the package-level logger after a test reconfigures it.
func restoreLog(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		log.Config(
			log.WithLevel(log.DefaultLevel),
			log.WithFormat(log.DefaultFormat),
			log.WithCaller(false),
			log.WithPretty(true),
		)
	})
}

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantLevel  logLevel
		wantFormat logFormat
		wantPretty bool
		wantCaller bool
	}{
		{
			name:       "none",
			args:       []string{"run", "file.jan"},
			wantPretty: true,
		},
		{
			name:       "separate_values",
			args:       []string{"--log-level", "debug", "run", "--log-format", "text"},
			wantLevel:  "debug",
			wantFormat: "text",
			wantPretty: true,
		},
		{
			name:       "inline_values",
			args:       []string{"run", "--log-level=trace", "--log-format=json"},
			wantLevel:  "trace",
			wantFormat: "json",
			wantPretty: true,
		},
		{
			name:       "negated_booleans",
			args:       []string{"--no-log-pretty", "--log-caller"},
			wantPretty: false,
			wantCaller: true,
		},
		{
			name:       "assigned_booleans",
			args:       []string{"--log-pretty=false", "--no-log-caller=false"},
			wantPretty: false,
			wantCaller: true,
		},
		{
			name:       "value_looks_like_flag",
			args:       []string{"--log-level", "--log-caller"},
			wantPretty: true,
			wantCaller: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreLog(t)

			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if f.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", f.Level, tt.wantLevel)
			}

			if f.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", f.Format, tt.wantFormat)
			}

			if f.Pretty != tt.wantPretty {
				t.Errorf("Pretty = %v, want %v", f.Pretty, tt.wantPretty)
			}

			if f.Caller != tt.wantCaller {
				t.Errorf("Caller = %v, want %v", f.Caller, tt.wantCaller)
			}
		})
	}
}

func TestLogConfig_ScanAppliesLevel(t *testing.T) {
	restoreLog(t)

	var f logConfig
	f.scan([]string{"--log-level=error"})

	if got := log.Default().Level(); got != log.LevelError {
		t.Errorf("default logger level = %v, want %v", got, log.LevelError)
	}
}

func TestLogConfig_Vars(t *testing.T) {
	var f logConfig

	vars := f.vars()

	if got, want := vars["logLevelEnum"], "trace,debug,info,warn,error"; got != want {
		t.Errorf("logLevelEnum = %q, want %q", got, want)
	}

	if got, want := vars["logFormatEnum"], "json,text"; got != want {
		t.Errorf("logFormatEnum = %q, want %q", got, want)
	}
}
