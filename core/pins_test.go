package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePinsAllFamilies(t *testing.T) {
	for _, dev := range SupportedDevices() {
		m, err := ResolvePins(dev)
		require.NoError(t, err, "device %s", dev)

		assert.NotEqual(t, NoPin, m.Trigger, "%s trigger undefined", dev)
		assert.NotEqual(t, NoPin, m.Response, "%s response undefined", dev)
		assert.NotEqual(t, m.Trigger, m.Response, "%s trigger and response collide", dev)

		if m.HasSense() {
			assert.NotEqual(t, m.Trigger, m.Sense, "%s sense collides with trigger", dev)
			assert.NotEqual(t, m.Response, m.Sense, "%s sense collides with response", dev)
		}
	}
}

func TestResolvePinsHonorsReservedPins(t *testing.T) {
	for dev, reserved := range reservedPins {
		m, err := ResolvePins(dev)
		require.NoError(t, err)
		for _, r := range reserved {
			assert.NotEqual(t, r, m.Trigger, "%s maps trigger onto reserved pin %d", dev, r)
			assert.NotEqual(t, r, m.Response, "%s maps response onto reserved pin %d", dev, r)
			if m.HasSense() {
				assert.NotEqual(t, r, m.Sense, "%s maps sense onto reserved pin %d", dev, r)
			}
		}
	}
}

func TestResolvePinsUnsupportedDevice(t *testing.T) {
	_, err := ResolvePins(DeviceUnknown)
	assert.ErrorIs(t, err, ErrUnsupportedDevice)

	_, err = ResolvePins(Device(0xEE))
	assert.ErrorIs(t, err, ErrUnsupportedDevice)
}

func TestResolvePinsIncompleteMapping(t *testing.T) {
	const bogus = Device(0xF0)
	pinTable[bogus] = PinMapping{Trigger: 5, Response: NoPin, Sense: NoPin}
	defer delete(pinTable, bogus)

	_, err := ResolvePins(bogus)
	assert.ErrorIs(t, err, ErrIncompletePinMapping)
}

func TestResolvePinsRejectsReservedUse(t *testing.T) {
	const bogus = Device(0xF1)
	pinTable[bogus] = PinMapping{Trigger: 6, Response: 13, Sense: NoPin}
	reservedPins[bogus] = []Pin{6}
	defer func() {
		delete(pinTable, bogus)
		delete(reservedPins, bogus)
	}()

	_, err := ResolvePins(bogus)
	assert.ErrorIs(t, err, ErrReservedPin)
}

func TestSelfTriggerFamiliesHaveNoSense(t *testing.T) {
	for _, dev := range []Device{PicoRP2040, PicoRP2350, ESP32} {
		m, err := ResolvePins(dev)
		require.NoError(t, err)
		assert.False(t, m.HasSense(), "%s should self-trigger", dev)
	}

	m, err := ResolvePins(NRF52840)
	require.NoError(t, err)
	assert.True(t, m.HasSense(), "nrf52840 needs the jumpered sense input")
}
