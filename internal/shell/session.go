// Package shell drives the interactive text menu around the bitmap codec.
//
// A Session is a small state machine: it waits for a path, then for commands
// against the loaded grid, then for an output name, then for a quit answer.
// All I/O goes through the reader and writer it was built with.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
)

type State int

const (
	AwaitingPath State = iota
	Loaded
	AwaitingFilename
	ConfirmQuit
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingPath:
		return "awaiting-path"
	case Loaded:
		return "loaded"
	case AwaitingFilename:
		return "awaiting-filename"
	case ConfirmQuit:
		return "confirm-quit"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const menu = "show_metadata/show_preview/vertical_flip/horiz_flip/invert/grayscale/create_file"

// Options configures a Session. The zero value logs nowhere, writes next to
// the working directory and disables previews.
type Options struct {
	Logger    *slog.Logger
	OutputDir string
	Preview   bool
}

type Session struct {
	in   *bufio.Scanner
	out  io.Writer
	log  *slog.Logger
	opts Options

	state State
	image *bmp.BitmapImage
}

func New(in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Session{
		in:    bufio.NewScanner(in),
		out:   out,
		log:   opts.Logger,
		opts:  opts,
		state: AwaitingPath,
	}
}

func (s *Session) State() State {
	return s.state
}

// Run prompts and consumes input lines until the user quits or input ends.
// Running out of input is not an error.
func (s *Session) Run() error {
	s.println("This is a command-line BMP image processing application!")
	s.println("Note that this application only supports 24-bit uncompressed BMP files")

	for s.state != Done {
		s.prompt()
		if !s.in.Scan() {
			s.state = Done
			return s.in.Err()
		}
		s.Step(s.in.Text())
	}
	return nil
}

func (s *Session) prompt() {
	switch s.state {
	case AwaitingPath:
		s.print("Enter a file path:")
	case Loaded:
		s.println("Enter one of the following commands: ")
		s.println(menu)
	case AwaitingFilename:
		s.print("Name your file: ")
	case ConfirmQuit:
		s.print("Quit? (y/n)")
	}
}

// Step feeds one line of input to the current state.
func (s *Session) Step(line string) {
	line = strings.TrimSpace(line)
	from := s.state

	switch s.state {
	case AwaitingPath:
		s.openPath(line)
	case Loaded:
		s.command(line)
	case AwaitingFilename:
		s.writeFile(line)
	case ConfirmQuit:
		switch line {
		case "y":
			s.state = Done
		case "n":
			s.state = AwaitingPath
		}
	}

	if s.state != from {
		s.log.Debug("session transition", "from", from, "to", s.state)
	}
}

func (s *Session) openPath(path string) {
	s.println("")

	image, err := bmp.ReadBitmap(path)
	switch {
	case err == nil:
	case errors.Is(err, bmp.ErrInvalidSignature):
		s.println("Invalid file signature. Try again.")
	case errors.Is(err, bmp.ErrUnsupportedFormat):
		s.println("Application only supports uncompressed 24-bit pixel BMP images. Try again.")
	case errors.Is(err, bmp.ErrTruncatedData):
		s.println("File is truncated. Try again.")
	default:
		s.println("Filepath not found. Try again.")
	}
	if err != nil {
		s.log.Info("rejected input file", "path", path, "err", err)
		return
	}

	s.image = image
	s.state = Loaded
	s.log.Info("bitmap loaded", "path", path, "width", image.Grid.Width, "height", image.Grid.Height)
	s.println("Your image has been successfully loaded")
}

func (s *Session) command(name string) {
	switch name {
	case "show_metadata":
		s.println("")
		s.print(bmp.Describe(s.image.BFHeader, s.image.BIHeader))
	case "show_preview":
		if !s.opts.Preview {
			s.println("Preview is disabled.")
			break
		}
		if err := bmp.PrintBitmap(s.out, s.image.Grid, s.image.BIHeader.TopDown()); err != nil {
			s.log.Warn("preview failed", "err", err)
		}
	case "create_file":
		s.state = AwaitingFilename
	default:
		msg, err := ApplyCommand(s.image.Grid, name)
		if err != nil {
			s.print(fmt.Sprintf("'%s' is not a valid command. Try again.", name))
			break
		}
		s.log.Debug("command applied", "command", name)
		s.println(msg)
	}
	s.println("")
}

func (s *Session) writeFile(name string) {
	if name == "" {
		return
	}

	path := OutputName(s.opts.OutputDir, name)
	if err := bmp.Save(path, s.image.Grid); err != nil {
		s.log.Error("write failed", "path", path, "err", err)
		s.println(fmt.Sprintf("Could not create file: %v", err))
		return
	}

	s.log.Info("bitmap written", "path", path)
	s.image = nil
	s.state = ConfirmQuit
	s.println("File created.")
}

// OutputName appends ".bmp" unless name already has it and resolves
// relative names against dir.
func OutputName(dir, name string) string {
	if !strings.EqualFold(filepath.Ext(name), ".bmp") {
		name += ".bmp"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func (s *Session) print(text string) {
	io.WriteString(s.out, text)
}

func (s *Session) println(text string) {
	io.WriteString(s.out, text+"\n")
}
