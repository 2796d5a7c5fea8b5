package relay

import (
	"github.com/denisbrodbeck/machineid"
)

// DeviceID retrieves the unique ID identifying this device.
func DeviceID() string {
	id, err := machineid.ID()
	if err != nil {
		panic(err)
	}
	return id
}
