/*
 * micro2 - Command-line front end.
 *
 * Copyright 2026, micro2 contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/arwhite/micro2/config"
	"github.com/arwhite/micro2/emu/facade"
	"github.com/arwhite/micro2/util/dump"
	"github.com/arwhite/micro2/util/logger"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Machine configuration file (YAML)")
	optLoad := getopt.StringLong("load", 'a', "", "Assembly source file to load")
	optLoadDump := getopt.StringLong("load-dump", 0, "", "Memory dump file to load into the current bank")
	optDump := getopt.StringLong("dump", 0, "", "Write the final memory dump to this file after running")
	optMaxSteps := getopt.IntLong("max-steps", 'm', facade.DefaultMaxSteps, "Instruction budget for the run")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'g', "Print a full state dump after the run")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logOut io.Writer
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "micro2: creating log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(logOut, &slog.HandlerOptions{Level: programLevel, AddSource: false}, optDebug))
	slog.SetDefault(Logger)

	Logger.Info("micro2 started")

	var m config.Machine
	if *optConfig != "" {
		var err error
		m, err = config.LoadFile(*optConfig)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	} else {
		m = config.DefaultMachine()
	}

	e, err := facade.NewFromConfig(m)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	e.SetDebugMode(*optDebug)

	if *optLoadDump != "" {
		f, err := os.Open(*optLoadDump)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		bank, err := dump.Import(f)
		f.Close()
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		image := make(map[int]uint8, len(bank))
		for addr, word := range bank {
			image[addr] = word
		}
		e.LoadImage(image)
		Logger.Info("loaded memory dump", "file", *optLoadDump)
	}

	if *optLoad != "" {
		ok, errs := e.LoadAssemblyFile(*optLoad)
		if !ok {
			for _, er := range errs {
				Logger.Error("assemble", "line", er.Line, "message", er.Message)
			}
			os.Exit(1)
		}
		Logger.Info("assembled and loaded", "file", *optLoad)
	}

	result := e.Run(*optMaxSteps)
	Logger.Info("run finished", "outcome", result.Outcome.String(), "steps", result.Steps)

	if *optDump != "" {
		f, err := os.Create(*optDump)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		snap := e.Snapshot()
		err = dump.Export(f, snap.Memory.Bank)
		f.Close()
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		Logger.Info("wrote memory dump", "file", *optDump)
	}

	if *optDebug {
		fmt.Println(e.DebugDump())
	}
}
