//go:build rp2040

package main

import (
	"context"
	"machine"
	"time"

	"github.com/itohio/ohmmeter/config"
	"github.com/itohio/ohmmeter/dev"
	"github.com/itohio/ohmmeter/logging"
	"github.com/itohio/ohmmeter/ui"
	"tinygo.org/x/drivers/ssd1306"
)

//go:generate tinygo flash -target=pico

func main() {
	log := logging.NewConsole(logging.LevelInfo)

	machine.InitADC()
	config.Sense.Configure(machine.ADCConfig{})

	config.I2C.Configure(machine.I2CConfig{
		Frequency: config.I2CFrequency,
		SDA:       config.I2CSDA,
		SCL:       config.I2CSCL,
	})
	// the delay is needed for display start from a cold reboot
	time.Sleep(time.Second)
	display := ssd1306.NewI2C(config.I2C)
	cfg := ssd1306.Config{
		Width:    config.DisplayWidth,
		Height:   config.DisplayHeight,
		Address:  config.DisplayAddress,
		VccState: ssd1306.SWITCHCAPVCC,
	}
	display.Configure(cfg)
	display.ClearDisplay()

	sampler, err := dev.NewSampler(config.Sense, config.ADCResolution, config.Samples, config.SampleInterval)
	if err != nil {
		halt(log, "sampler", err)
	}
	sampler.SetCalibration(dev.NewLinearCalibration(config.ADCGain, config.ADCOffset))
	divider, err := dev.NewDivider(config.KnownReference, config.ADCResolution, config.ADCVRef)
	if err != nil {
		halt(log, "divider", err)
	}
	panel := ui.NewPanel(&display, dev.Portuguese)

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	meter, err := dev.NewOhmmeter(sampler, divider, dev.SinkFunc(func(r dev.Reading) error {
		machine.Watchdog.Update()
		return panel.Show(r)
	}), config.Interval)
	if err != nil {
		halt(log, "ohmmeter", err)
	}
	meter.SetLogger(log)

	meter.Run(context.Background())
}

func halt(log logging.Logger, what string, err error) {
	for {
		log.Error(what, logging.Err(err))
		time.Sleep(time.Second)
	}
}
