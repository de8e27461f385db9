// Package devgen fabricates Device records for the demo CLI, tests, and
// benchmarks.
package devgen

import (
	"fmt"

	"github.com/go-faker/faker/v4"

	"devidx"
)

// Device returns a record with the given ID, a fake IPv4 address, and a
// two-segment fake path.
func Device(id uint64) devidx.Device {
	return devidx.Device{
		ID:   id,
		Addr: faker.IPv4(),
		Path: fmt.Sprintf("/%s/%s", faker.Word(), faker.Word()),
	}
}

// Batch returns n devices with consecutive IDs starting at lo.
func Batch(lo uint64, n int) []devidx.Device {
	devices := make([]devidx.Device, n)
	for i := range devices {
		devices[i] = Device(lo + uint64(i))
	}
	return devices
}
