// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelvt/main.go
// Summary: Standalone terminal viewer - runs a shell through the emulator.
// Usage: texelvt [-shell /bin/bash] [-log file]
// Notes: tcell owns the real terminal; the emulator core never touches it.

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelvt/parser"
	"github.com/framegrace/texelvt/render"
)

func main() {
	shell := flag.String("shell", defaultShell(), "shell to run inside the emulator")
	logPath := flag.String("log", "", "write parser diagnostics to this file")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("texelvt must run on a terminal")
	}

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "texelvt ", log.LstdFlags)
	}

	if err := run(*shell, logger); err != nil {
		log.Fatal(err)
	}
}

func defaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

func run(shell string, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	buffer, err := parser.NewOffscreenBuffer(cols, rows, parser.WithLogger(logger))
	if err != nil {
		return err
	}
	performer := parser.NewPerformer(buffer)
	renderer := render.NewRenderer(screen)

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return err
	}
	defer ptmx.Close()

	var mu sync.Mutex // guards buffer and performer

	done := make(chan struct{})
	go func() {
		defer func() {
			close(done)
			// Wake the event loop so it notices the session ended.
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				mu.Lock()
				events, replies := performer.ApplyBytes(buf[:n])
				mu.Unlock()
				for _, reply := range replies {
					ptmx.Write(reply)
				}
				for _, ev := range events {
					switch ev.Kind {
					case parser.OscSetTitle, parser.OscSetTitleIcon:
						screen.SetTitle(ev.Payload)
					}
				}
				// Wake the event loop so it redraws.
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
			if err != nil {
				if err != io.EOF {
					logger.Printf("pty read: %v", err)
				}
				return
			}
		}
	}()

	draw := func() {
		mu.Lock()
		renderer.Draw(buffer)
		mu.Unlock()
		screen.Show()
	}
	draw()

	for {
		select {
		case <-done:
			return cmd.Wait()
		default:
		}
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			cols, rows = ev.Size()
			mu.Lock()
			if err := buffer.Resize(cols, rows); err != nil {
				logger.Printf("resize: %v", err)
			}
			mu.Unlock()
			pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if b := encodeKey(ev); b != nil {
				ptmx.Write(b)
			}
		case nil:
			return cmd.Wait()
		}
	}
}

// encodeKey turns a tcell key event into the bytes a shell expects.
func encodeKey(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyEnter:
		return []byte("\r")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7f}
	case tcell.KeyTab:
		return []byte("\t")
	case tcell.KeyEsc:
		return []byte("\x1b")
	case tcell.KeyUp:
		return []byte("\x1b[A")
	case tcell.KeyDown:
		return []byte("\x1b[B")
	case tcell.KeyRight:
		return []byte("\x1b[C")
	case tcell.KeyLeft:
		return []byte("\x1b[D")
	case tcell.KeyHome:
		return []byte("\x1b[H")
	case tcell.KeyEnd:
		return []byte("\x1b[F")
	case tcell.KeyPgUp:
		return []byte("\x1b[5~")
	case tcell.KeyPgDn:
		return []byte("\x1b[6~")
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	case tcell.KeyCtrlC:
		return []byte{0x03}
	case tcell.KeyCtrlD:
		return []byte{0x04}
	case tcell.KeyCtrlZ:
		return []byte{0x1a}
	case tcell.KeyCtrlL:
		return []byte{0x0c}
	case tcell.KeyRune:
		return []byte(string(ev.Rune()))
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return []byte{byte(ev.Key())}
	}
	return nil
}
