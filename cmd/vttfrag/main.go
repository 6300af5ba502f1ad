// Command vttfrag is a demo driver for the vtt fragmenter: it reads a
// line-oriented cue list standing in for an external WebVTT parser's
// output, runs it through vtt.Fragmenter, and prints each emitted
// output sample's (pts, duration, hex(data)) the way a muxer would
// pull them via PopSample. It does not write an MP4 container; that
// remains the muxer's job (spec.md §1's non-goals).
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vtt-fmp4/fragmenter/vtt"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vttfrag: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vttfrag <cuefile>",
		Short: "Fragment a WebVTT cue list into ISO-BMFF box-encoded samples",
		Args:  cobra.ExactArgs(1),
		RunE:  runFragment,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default for the quiet setting)")
	root.Flags().Bool("quiet", false, "suppress per-sample progress lines on stderr")
	_ = viper.BindPFlag("quiet", root.Flags().Lookup("quiet"))
	cobra.OnInitialize(initConfig)
	return root
}

// initConfig loads an optional config file via viper. Nothing in this
// demo tool requires one; it exists so the defaults (currently just
// "quiet") can be set once for repeated runs instead of repeated on
// every invocation's flags.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "vttfrag: warning: could not read config %s: %v\n", cfgFile, err)
		}
	}
}

func runFragment(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open cuefile: %w", err)
	}
	defer f.Close()

	cues, err := parseCueFile(f)
	if err != nil {
		return err
	}

	quiet := viper.GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stderr, "vttfrag: loaded %d cues from %s\n", len(cues), path)
	}

	frag := vtt.New()
	for _, c := range cues {
		frag.PushSample(c)
	}
	frag.Flush()

	n := 0
	for frag.ReadySamplesSize() > 0 {
		s := frag.PopSample()
		fmt.Printf("%d %d %s\n", s.PTS, s.Duration, hex.EncodeToString(s.Data))
		n++
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "vttfrag: emitted %d output samples\n", n)
	}
	return nil
}
