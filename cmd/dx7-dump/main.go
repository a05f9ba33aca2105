package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	dx7 "github.com/softdevca/synthahol-dx7"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func main() {
	jsonOut := flag.Bool("j", false, "Output the bank as .json instead of .yml.")
	stdout := flag.Bool("s", false, "Do not write files; write to standard output instead.")
	outPath := flag.String("o", "", "Directory or filename where to write the decoded bank. By default, the output is placed in the same directory as the original bank file.")
	listPorts := flag.Bool("l", false, "List the available MIDI input ports and exit.")
	midiPort := flag.Int("p", -1, "Receive the bank from this MIDI input port instead of reading files.")
	wait := flag.Duration("w", 30*time.Second, "How long to wait for a bulk dump when receiving over MIDI.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *help || (flag.NArg() == 0 && !*listPorts && *midiPort < 0) {
		flag.Usage()
		os.Exit(0)
	}
	if *listPorts {
		ins, err := drivers.Ins()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not list MIDI input ports: %v\n", err)
			os.Exit(1)
		}
		for i, in := range ins {
			fmt.Printf("%v: %v\n", i, in.String())
		}
		os.Exit(0)
	}
	output := func(filename string, contents []byte) error {
		if *stdout {
			fmt.Print(string(contents))
			return nil
		}
		dir, name := filepath.Split(filename)
		if *outPath != "" {
			if info, err := os.Stat(*outPath); err == nil && info.IsDir() {
				dir = *outPath
			} else {
				outDir, outName := filepath.Split(*outPath)
				if outDir != "" {
					dir = outDir
				}
				if outName != "" {
					name = outName
				}
			}
		}
		extension := ".yml"
		if *jsonOut {
			extension = ".json"
		}
		name = strings.TrimSuffix(name, filepath.Ext(name)) + extension
		f := filepath.Join(dir, name)
		if err := os.WriteFile(f, contents, 0644); err != nil {
			return fmt.Errorf("could not write file %v: %v", f, err)
		}
		return nil
	}
	marshal := func(presets []dx7.Preset) ([]byte, error) {
		if *jsonOut {
			return json.Marshal(presets)
		}
		return yaml.Marshal(presets)
	}
	process := func(filename string) error {
		presets, err := dx7.ReadBankFile(filename)
		if err != nil {
			return fmt.Errorf("could not read bank %v: %v", filename, err)
		}
		contents, err := marshal(presets)
		if err != nil {
			return fmt.Errorf("could not marshal the bank: %v", err)
		}
		return output(filename, contents)
	}
	retval := 0
	if *midiPort >= 0 {
		ins, err := drivers.Ins()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not list MIDI input ports: %v\n", err)
			os.Exit(1)
		}
		if *midiPort >= len(ins) {
			fmt.Fprintf(os.Stderr, "MIDI input port %v out of range\n", *midiPort)
			os.Exit(1)
		}
		in := ins[*midiPort]
		if err := in.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "could not open MIDI input port %v: %v\n", in.String(), err)
			os.Exit(1)
		}
		presets, err := dx7.ReceiveBank(in, *wait)
		in.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not receive bank: %v\n", err)
			os.Exit(1)
		}
		contents, err := marshal(presets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not marshal the bank: %v\n", err)
			os.Exit(1)
		}
		if err := output("bank.syx", contents); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			retval = 1
		}
	}
	for _, param := range flag.Args() {
		if err := process(param); err != nil {
			fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
			retval = 1
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "DX7 bank dumper. Input 32-voice bulk dumps (.syx), output decoded banks as .yml or .json files.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
