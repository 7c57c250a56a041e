//go:build !linux && !tinygo

package hal

import "errors"

// OpenOLED is only available on Linux (periph.io).
func OpenOLED(string) (func(buf []byte) error, func() error, error) {
	return nil, nil, errors.New("oled: I2C OLED requires linux")
}
