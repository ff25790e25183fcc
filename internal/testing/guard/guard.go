// Package guard switches the process into test mode when imported, so that
// tests exercising cmd entrypoints never bind ports or open stores.
package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("HOMECLEANUP_TEST_MODE") != "1" {
			_ = os.Setenv("HOMECLEANUP_TEST_MODE", "1")
		}
	})
}
