package engine

import (
	"os"
	"testing"

	"github.com/dmitryshur/agar-io-back/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}
