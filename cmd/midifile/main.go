// Package main is the entry point for the midifile CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/midifile/pkg/api"
	"github.com/james-see/midifile/pkg/inspect"
	"github.com/james-see/midifile/pkg/smf"
	"github.com/james-see/midifile/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile string
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "midifile",
	Short: "Inspect, dump and normalize Standard MIDI Files",
	Long: `midifile is a tool for working with Standard MIDI Files (.mid)
built on its own SMF codec.

Examples:
  midifile inspect song.mid
  midifile dump song.mid
  midifile normalize song.mid -o song.clean.mid
  midifile tui
  midifile serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.mid>",
	Short: "Decode a MIDI file and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var dumpCmd = &cobra.Command{
	Use:   "dump <input.mid>",
	Short: "Decode a MIDI file and list every event",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <input.mid>",
	Short: "Decode and re-encode a MIDI file canonically",
	Long:  `Decodes the input and writes it back with events sorted by tick and a canonical encoding.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	normalizeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func decodeFile(path string) (*smf.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := smf.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

func getOutputPath(input, suffix string) string {
	if outputFile != "" {
		return outputFile
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + suffix
}

func runInspect(cmd *cobra.Command, args []string) error {
	file, err := decodeFile(args[0])
	if err != nil {
		return err
	}

	fmt.Print(inspect.Summarize(file).String())
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	file, err := decodeFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s, %d ticks per quarter note\n", file.Format, file.TicksPerQuarterNote)
	for i := range file.Tracks {
		track := &file.Tracks[i]
		fmt.Printf("\nTrack %d: %s (%d events)\n", i+1, track.Name, len(track.Events))
		for _, ev := range track.Events {
			fmt.Printf("  %8d  %s\n", ev.Tick, ev.Message)
		}
	}
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := getOutputPath(input, ".normalized.mid")

	file, err := decodeFile(input)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, file.Encode(), 0644); err != nil {
		return err
	}

	fmt.Printf("Normalized %s -> %s\n", input, output)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
