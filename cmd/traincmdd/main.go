package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/golang/glog"

	fx "github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/framework"
	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/link"
	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/relay"
)

var (
	portPath   string
	baudRate   int
	stdioDebug bool
)

func init() {
	flag.StringVar(&portPath, "port", "/dev/ttyAMA0", "Serial device of the internal link.")
	flag.IntVar(&baudRate, "baud", 115200, "Serial baud rate.")
	flag.BoolVar(&stdioDebug, "stdio-debug", false, "Accept the command grammar on stdin for local testing.")
	relay.SetupFlags()
}

func main() {
	flag.Parse()

	stream, err := link.OpenSerial(portPath, baudRate)
	if err != nil {
		log.Fatalf("open %s: %v", portPath, err)
	}

	conf := relay.NewConfig()
	conf.DeviceID = relay.DeviceID()
	session := conf.NewSession(stream)
	session.Indicator = relay.IndicatorFunc(func(d time.Duration) {
		glog.V(2).Infof("indicator pulse %v", d)
	})
	if stdioDebug {
		session.Debug = link.NewStream(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout})
	}

	loop := fx.NewLoop().Add(session)
	stream.Notify = loop.TriggerNext

	runner := fx.NewRunner().HandleSignals()
	runner.Go(loop)
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
