/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

// Package app runs one driver lookup pass over the host's NVIDIA cards.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"nvdriver/driver"
	"nvdriver/fault"
	"nvdriver/sysinfo/hardware"
	"nvdriver/util"
)

const exitPrompt = "Press Enter to exit..."

type HardwareInspector interface {
	GraphicsCards() ([]hardware.GraphicsCard, error)
	IsNotebook() (bool, error)
}

type DriverLocator interface {
	LatestDriverURL(ctx context.Context, graphicsCardName string) (string, error)
}

type App struct {
	inspector HardwareInspector
	locator   DriverLocator
	out       io.Writer
	in        io.Reader
	pause     bool
}

func New(inspector HardwareInspector, locator DriverLocator, out io.Writer, in io.Reader, pause bool) *App {
	return &App{
		inspector: inspector,
		locator:   locator,
		out:       out,
		in:        in,
		pause:     pause,
	}
}

// Run prints a download link for every detected card. A failure for one
// card is logged and never stops the others.
func (a *App) Run(ctx context.Context) {
	gpus, err := a.inspector.GraphicsCards()
	if err != nil {
		logFault("error detecting graphics card", err)
	}

	fmt.Fprintln(a.out, util.Separator())
	if len(gpus) == 0 {
		fmt.Fprintln(a.out, "No NVIDIA graphics cards detected.")
	}
	for _, gpu := range gpus {
		if ctx.Err() != nil {
			zap.S().Warnw("interrupted, skipping remaining cards", "gpu", gpu.Name())
			break
		}
		a.process(ctx, gpu)
	}
	fmt.Fprintln(a.out, util.Separator())

	if a.pause {
		a.waitForEnter(ctx)
	}
}

func (a *App) process(ctx context.Context, gpu hardware.GraphicsCard) {
	name := gpu.Name()
	fmt.Fprintf(a.out, "Detected NVIDIA graphics card: %s (Driver Version: %s)\n",
		name, gpu.DriverVersion())

	link, err := a.locator.LatestDriverURL(ctx, name)
	if err != nil {
		logFault("error retrieving driver link", err, "gpu", name)
		fmt.Fprintf(a.out, "Failed to retrieve the latest driver link for %s.\n", name)
		return
	}

	notebook, err := a.inspector.IsNotebook()
	if err != nil {
		logFault("error detecting system enclosure", err)
	}
	if !notebook {
		if link, err = driver.AdjustForDesktop(link); err != nil {
			logFault("no adjustment made", err, "gpu", name)
		}
	}
	fmt.Fprintf(a.out, "Latest driver download link for %s: %s\n", name, link)
}

// waitForEnter returns on a line, on EOF or once ctx is done.
func (a *App) waitForEnter(ctx context.Context) {
	fmt.Fprint(a.out, exitPrompt)
	entered := make(chan struct{})
	go func() {
		_, _ = bufio.NewReader(a.in).ReadString('\n')
		close(entered)
	}()
	select {
	case <-entered:
	case <-ctx.Done():
		fmt.Fprintln(a.out)
	}
}

func logFault(msg string, err error, keysAndValues ...interface{}) {
	kind := fault.KindOf(err)
	keysAndValues = append(keysAndValues, "kind", kind.String(), "error", err)
	switch kind {
	case fault.KindNoMatch, fault.KindURLPattern:
		zap.S().Warnw(msg, keysAndValues...)
	default:
		zap.S().Errorw(msg, keysAndValues...)
	}
}
