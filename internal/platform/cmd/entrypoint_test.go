package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
	"time"
)

type testConfig struct {
	Address string `env:"UIKIT_CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"UIKIT_CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsEnvThenFlags(t *testing.T) {
	t.Setenv("UIKIT_CMD_TEST_ADDRESS", "env:9000")

	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	if cfg.Address != "env:9000" || cfg.Mode != "server" {
		t.Fatalf("cfg = %+v", cfg)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
	if err := ParseArgs(fs, []string{"-mode", "flag"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Mode != "flag" {
		t.Fatalf("mode = %q", cfg.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	t.Parallel()

	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsParsesFlags(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	addr := fs.String("addr", "default", "address")
	if err := ParseArgs(fs, []string{"-addr", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if *addr != "flag:9001" {
		t.Fatalf("addr = %q", *addr)
	}
	if err := ParseArgs(flag.NewFlagSet("empty", flag.ContinueOnError), nil); err != nil {
		t.Fatalf("parse nil args: %v", err)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	t.Parallel()

	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceGallery, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("UIKIT_OTEL_ENDPOINT", "")

	want := errors.New("stop")
	var called bool
	err := RunWithTelemetryAndOptions(context.Background(), ServiceGallery, RunOptions{ShutdownTimeout: time.Second}, func(context.Context) error {
		called = true
		return want
	})
	if !called || !errors.Is(err, want) {
		t.Fatalf("called = %v err = %v", called, err)
	}
}
