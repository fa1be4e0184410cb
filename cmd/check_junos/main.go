// Command check_junos is a monitoring plugin that polls a Juniper device over
// SNMP, evaluates the retrieved metrics against configured thresholds, and
// prints a single status line for the monitoring supervisor:
//
//	STATUS - message | perfdata
//
// The process exit code follows the plugin convention: OK=0, WARNING=1,
// CRITICAL=2, UNKNOWN=3. Configuration errors (unrecognised mode, missing
// required flag) are reported on stderr before any network activity and exit
// with code 3.
//
// Usage:
//
//	check_junos -host 10.0.0.1 -mode cpu_load_re
//	check_junos -host 10.0.0.1 -mode interface_status -interface ge-0/0/1
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/pkg/checkjunos/catalog"
	"github.com/opsforge/check_junos/pkg/checkjunos/config"
	"github.com/opsforge/check_junos/pkg/checkjunos/probe"
	"github.com/opsforge/check_junos/snmp/collector"
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "check_junos: %v\n", err)
		os.Exit(models.StatusUnknown.ExitCode())
	}
	os.Exit(code)
}

func run() (int, error) {
	// ── Flags ────────────────────────────────────────────────────────────
	var (
		host      string
		port      int
		version   string
		community string
		timeout   int
		retries   int

		v3User     string
		v3AuthProt string
		v3AuthPass string
		v3PrivProt string
		v3PrivPass string

		modeStr    string
		ifName     string
		thresholds string

		logLevel string
		logFmt   string
	)

	flag.StringVar(&host, "host", "", "Target device hostname or IP address (required)")
	flag.IntVar(&port, "port", 161, "SNMP UDP port")
	flag.StringVar(&version, "snmp.version", "2c", "SNMP version: 1, 2c, 3")
	flag.StringVar(&community, "community", "public", "Community string (v1/v2c)")
	flag.IntVar(&timeout, "timeout", 3000, "Per-request timeout in milliseconds")
	flag.IntVar(&retries, "retries", 2, "Transport retry attempts on timeout")

	flag.StringVar(&v3User, "v3.user", "", "SNMPv3 security name")
	flag.StringVar(&v3AuthProt, "v3.auth.protocol", "", "SNMPv3 auth protocol: noauth, md5, sha, sha224, sha256, sha384, sha512")
	flag.StringVar(&v3AuthPass, "v3.auth.passphrase", "", "SNMPv3 auth passphrase")
	flag.StringVar(&v3PrivProt, "v3.priv.protocol", "", "SNMPv3 privacy protocol: nopriv, des, aes, aes192, aes256, aes192c, aes256c")
	flag.StringVar(&v3PrivPass, "v3.priv.passphrase", "", "SNMPv3 privacy passphrase")

	flag.StringVar(&modeStr, "mode", "", "Check mode (required); one of: "+modeList())
	flag.StringVar(&ifName, "interface", "", "Interface name for the interface_status modes, e.g. ge-0/0/1")
	flag.StringVar(&thresholds, "thresholds", "", "YAML threshold-override file (default: $CHECK_JUNOS_THRESHOLDS_PATH)")

	flag.StringVar(&logLevel, "log.level", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&logFmt, "log.fmt", "text", "Log format: json, text")

	flag.Parse()

	// ── Logger ───────────────────────────────────────────────────────────
	logger, err := buildLogger(logLevel, logFmt)
	if err != nil {
		return 0, err
	}

	// ── Invocation validation, before any network activity ───────────────
	if host == "" {
		return 0, &probe.ConfigurationError{Reason: "missing required -host"}
	}
	if modeStr == "" {
		return 0, &probe.ConfigurationError{Reason: "missing required -mode (known modes: " + modeList() + ")"}
	}
	mode, err := probe.ParseMode(modeStr)
	if err != nil {
		return 0, err
	}

	// ── Catalog with threshold overrides ─────────────────────────────────
	if thresholds == "" {
		thresholds = config.ThresholdsPathFromEnv()
	}
	overrides, err := config.LoadOverrides(thresholds, logger)
	if err != nil {
		return 0, err
	}
	cat := catalog.Default()
	if overrides != nil {
		cat, err = cat.WithOverrides(overrides)
		if err != nil {
			return 0, err
		}
	}

	// ── Transport ────────────────────────────────────────────────────────
	cfg := config.ProbeConfig{
		Target:    host,
		Port:      port,
		Version:   version,
		Community: community,
		Timeout:   timeout,
		Retries:   retries,
	}
	if v3User != "" {
		cfg.V3 = &config.V3Credentials{
			Username:                 v3User,
			AuthenticationProtocol:   v3AuthProt,
			AuthenticationPassphrase: v3AuthPass,
			PrivacyProtocol:          v3PrivProt,
			PrivacyPassphrase:        v3PrivPass,
		}
	}
	cfg = cfg.Resolve()

	coll, err := collector.Dial(cfg, logger)
	if err != nil {
		// A failed connect is a transport failure, reported like any other:
		// UNKNOWN, never a hard fault.
		outcome := models.EvaluationOutcome{
			Status:  models.StatusUnknown,
			Message: fmt.Sprintf("cannot reach %s: %v", host, err),
		}
		fmt.Println(outcome.PluginOutput())
		return outcome.Status.ExitCode(), nil
	}
	defer coll.Close()

	// ── Run the check ────────────────────────────────────────────────────
	p := probe.New(coll, cat, logger)
	outcome, err := p.Run(context.Background(), probe.Request{Mode: mode, InterfaceName: ifName})
	if err != nil {
		return 0, err
	}

	fmt.Println(outcome.PluginOutput())
	return outcome.Status.ExitCode(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func buildLogger(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q (expected debug|info|warn|error)", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler

	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (expected json|text)", format)
	}

	return slog.New(handler), nil
}

func modeList() string {
	return strings.Join(probe.ModeStrings(), ", ")
}
