//go:build tinygo && (rp2040 || rp2350)

package hal

import (
	"context"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ssd1306"
)

const oledAddress = 0x3C

type picoHAL struct {
	logger *usbLogger
	fb     Framebuffer
	lines  *LineEditor
}

// New returns the Pico HAL.
//
// OLED: SSD1306 128x64 on I2C0, GP0 (SDA) / GP1 (SCL), 400 kHz.
// Input: UART1 on its default pins, 115200 8N1, echoed back.
// Log: USB CDC.
func New() HAL {
	logger := &usbLogger{}

	machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP0,
		SCL:       machine.GP1,
	})
	oled := ssd1306.NewI2C(machine.I2C0)
	oled.Configure(ssd1306.Config{
		Width:    OLEDWidth,
		Height:   OLEDHeight,
		Address:  oledAddress,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	oled.ClearDisplay()

	fb := NewFramebuffer(OLEDWidth, OLEDHeight, func(buf []byte) error {
		if err := oled.SetBuffer(buf); err != nil {
			return err
		}
		return oled.Display()
	})

	uart := uartx.UART1
	if err := uart.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       uartx.UART1_TX_PIN,
		RX:       uartx.UART1_RX_PIN,
	}); err != nil {
		logger.WriteLineString("hal: uart1: " + err.Error())
	}
	lines := NewLineEditor(uart)
	go pumpUART(uart, lines)

	return &picoHAL{logger: logger, fb: fb, lines: lines}
}

func (h *picoHAL) Logger() Logger   { return h.logger }
func (h *picoHAL) Display() Display { return picoDisplay{fb: h.fb} }
func (h *picoHAL) Input() Input     { return picoInput{lines: h.lines} }

func (h *picoHAL) Reset() error {
	machine.CPUReset()
	return nil
}

type picoDisplay struct {
	fb Framebuffer
}

func (d picoDisplay) Framebuffer() Framebuffer { return d.fb }

type picoInput struct {
	lines LineReader
}

func (in picoInput) Lines() LineReader { return in.lines }

func pumpUART(uart *uartx.UART, ed *LineEditor) {
	buf := make([]byte, 64)
	for {
		n, err := uart.RecvSomeContext(context.Background(), buf)
		for i := 0; i < n; i++ {
			ed.Feed(rune(buf[i]))
		}
		if err != nil {
			ed.Close()
			return
		}
	}
}

type usbLogger struct{}

func (usbLogger) WriteLineString(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write([]byte("\r\n"))
}

func (usbLogger) WriteLineBytes(b []byte) {
	machine.Serial.Write(b)
	machine.Serial.Write([]byte("\r\n"))
}
