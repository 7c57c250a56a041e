//go:build linux && !tinygo

package hal

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

// OpenOLED opens an SSD1306 on the named I2C bus ("" picks the first bus)
// and returns a HostConfig.Mirror hook that writes every frame to it.
func OpenOLED(bus string) (mirror func(buf []byte) error, closeFn func() error, err error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("oled: periph init: %w", err)
	}
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, nil, fmt.Errorf("oled: open i2c %q: %w", bus, err)
	}
	opts := ssd1306.DefaultOpts
	opts.W = OLEDWidth
	opts.H = OLEDHeight
	dev, err := ssd1306.NewI2C(b, &opts)
	if err != nil {
		b.Close()
		return nil, nil, fmt.Errorf("oled: ssd1306: %w", err)
	}

	mirror = func(buf []byte) error {
		_, err := dev.Write(buf)
		return err
	}
	closeFn = func() error {
		return errors.Join(dev.Halt(), b.Close())
	}
	return mirror, closeFn, nil
}
