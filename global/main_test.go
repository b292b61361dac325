package global

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/kbukum/deferred/logger"
)

func TestMain(m *testing.M) {
	logger.SetGlobalLogger(logger.New(&logger.Config{Level: "error", Format: "json", Output: "discard"}, "global-test"))
	goleak.VerifyTestMain(m)
}
