package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ucle-lang/ucle/internal/log"
)

func TestDebugPassesOnlyWantedSection(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "infer")

	logger.Debug("generating constraints", "section", "infer")
	assert.Contains(t, buf.String(), "generating constraints")

	buf.Reset()
	logger.Debug("solving", "section", "unify")
	assert.Empty(t, buf.String())
}

func TestDebugWithoutSectionIsFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "infer")

	logger.Debug("no section attr here")
	assert.Empty(t, buf.String())
}

func TestWarnAlwaysPassesRegardlessOfSection(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "infer")

	logger.Warn("solver failed", "section", "unify")
	assert.Contains(t, buf.String(), "solver failed")
	_ = slog.LevelWarn
}

func TestSectionPrefixMatches(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "infer")

	logger.Debug("sub-section", "section", "infer:generator")
	assert.Contains(t, buf.String(), "sub-section")
}
