// Package sh provides the interactive console for driving the relay
// over its serial link.
package sh

import (
	"context"
	"flag"
	"log"

	"github.com/abiosoft/ishell"

	"github.com/allenrnemetz/O-Gauge-Command-Control-Bridge-on-Pi/pkg/link"
)

// Shell provides an ishell backed interactive console speaking the
// relay line protocol. Lines from the device (ACK, ERROR, HELLO,
// HEARTBEAT, TIMEOUT, STATUS) are printed as they arrive.
type Shell struct {
	Interactive bool

	Shell  *ishell.Shell
	Stream *link.Stream
}

const shellKey = "$shell"

var (
	// flags

	evalOnly bool
	portPath string
	baudRate int
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.StringVar(&portPath, "port", "/dev/ttyUSB0", "Serial device of the relay link.")
	flag.IntVar(&baudRate, "baud", 115200, "Serial baud rate.")
}

// AddCmds is used by other command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell over the stream.
func New(stream *link.Stream) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
		Stream:      stream,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("relay > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Send writes one protocol line to the device.
func (s *Shell) Send(line string) error {
	return s.Stream.WriteLine(line)
}

// Run runs the shell until exit.
func (s *Shell) Run(args ...string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Stream.Run(ctx)
	go s.printLines(ctx)

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

func (s *Shell) printLines(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case line := <-s.Stream.Lines():
			s.Shell.Printf("< %s\n", line)
		}
	}
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	stream, err := link.OpenSerial(portPath, baudRate)
	if err != nil {
		log.Fatalf("open %s: %v", portPath, err)
	}
	New(stream).Run(flag.Args()...)
}
