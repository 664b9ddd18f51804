package testutils

import (
	"github.com/itbasis/go-clock"
)

// TestController bundles what a controller needs in tests: a mock clock and
// fake ESPN and Sleeper servers.
type TestController struct {
	Clock       *clock.Mock
	fakeESPN    *FakeESPNServer
	fakeSleeper *FakeSleeperServer
}

func (c *TestController) Close() {
	c.fakeESPN.Close()
	c.fakeSleeper.Close()
}

func (c *TestController) ESPNURL() string {
	return c.fakeESPN.URL()
}

func (c *TestController) SleeperURL() string {
	return c.fakeSleeper.URL()
}

func NewTestController(db *TestDB) *TestController {
	return &TestController{
		Clock:       db.Clock,
		fakeESPN:    NewFakeESPNServer(),
		fakeSleeper: NewFakeSleeperServer(),
	}
}
