package api_test

import (
	"io"
	"testing"

	"log/slog"

	"github.com/harborworks/fleetdeck/api"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// keep request logs out of test output
	api.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	// verify no goroutine leaks across tests in this package
	goleak.VerifyTestMain(m)
}
