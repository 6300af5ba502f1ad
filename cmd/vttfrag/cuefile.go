package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vtt-fmp4/fragmenter/vtt"
)

// parseCueFile reads a line-oriented cue list standing in for the
// output of an external WebVTT parser (spec.md §6): one cue per line,
//
//	<start> <duration> <identifier>|<settings>|<payload>
//
// start and duration are unsigned integers in the caller's timescale;
// the trailing field is split on '|' into identifier, settings and
// payload (any of which may be empty). Blank lines and lines starting
// with '#' are skipped.
func parseCueFile(r io.Reader) ([]vtt.Cue, error) {
	var cues []vtt.Cue
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, " ", 3)
		if len(fields) < 3 {
			return nil, fmt.Errorf("cuefile: line %d: expected \"<start> <duration> <iden>|<sttg>|<payl>\"", lineNo)
		}

		start, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cuefile: line %d: bad start time: %w", lineNo, err)
		}
		dur, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cuefile: line %d: bad duration: %w", lineNo, err)
		}

		parts := strings.SplitN(fields[2], "|", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}

		cues = append(cues, vtt.Cue{
			StartTime:  start,
			Duration:   dur,
			Identifier: []byte(parts[0]),
			Settings:   []byte(parts[1]),
			Payload:    []byte(parts[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cuefile: %w", err)
	}
	return cues, nil
}
