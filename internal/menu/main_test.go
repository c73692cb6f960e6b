package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/popup-launcher/internal/logging"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "menu-test")
	if err != nil {
		os.Exit(1)
	}
	logging.Configure(filepath.Join(dir, "test.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
