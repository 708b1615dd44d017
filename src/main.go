package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/Jensert/synthrs/src/synth"
	"github.com/Jensert/synthrs/src/ui"
)

var debugLog = flag.String("debuglog", "", "append logs to this file instead of discarding them")

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)
	if *debugLog != "" {
		f, err := tea.LogToFile(*debugLog, "synthrs")
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		defer f.Close()
	} else {
		// stderr writes would tear the alternate screen apart
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine := synth.NewEngine()
	defer engine.Close()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)
	go func() {
		sig := <-signalCh
		log.Printf("Caught signal %s: shutting down...\n", sig)
		cancel()
	}()

	prog := tea.NewProgram(ui.NewModel(engine), tea.WithAltScreen())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Start(ctx)
	})
	g.Go(func() error {
		_, err := prog.Run()
		cancel()
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		prog.Quit()
		return nil
	})
	if err := g.Wait(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("error: %v\n", err)
	}
	log.Println("main() ended.")
}
