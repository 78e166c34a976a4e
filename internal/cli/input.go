// Package cli handles cmd line input and corrections for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/charmbracelet/log"
)

// NoSuggestionText is printed when nothing within two edits was found.
const NoSuggestionText = "No similar word found"

// InputHandler reads words from stdin and prints the correction for each.
type InputHandler struct {
	corrector    suggest.ICorrector
	opts         config.CliConfig
	minWordLen   int
	maxWordLen   int
	requestCount int
	out          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(corrector suggest.ICorrector, opts config.CliConfig, minLen, maxLen int) *InputHandler {
	return &InputHandler{
		corrector:  corrector,
		opts:       opts,
		minWordLen: minLen,
		maxWordLen: maxLen,
		out:        logger.Console(os.Stdout, ""),
	}
}

// SetOutput redirects printed results to w.
func (h *InputHandler) SetOutput(w io.Writer) {
	h.out = logger.Console(w, "")
}

// Start runs the interactive loop on stdin.
func (h *InputHandler) Start() error {
	h.out.Print("wordfix CLI [BETA]")
	h.out.Print("type a word and press Enter to see the suggestion (Ctrl+C to exit):")
	return h.Run(os.Stdin)
}

// Run handles every line of r until EOF.
func (h *InputHandler) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if line, ok := h.HandleInput(word); ok {
			h.out.Print(line)
		}
	}
	return scanner.Err()
}

// HandleInput corrects a single word and returns the formatted line.
// The bool is false when the input was refused.
func (h *InputHandler) HandleInput(word string) (string, bool) {
	h.requestCount++

	if err := utils.ValidateInput(word, h.minWordLen, h.maxWordLen); err != nil {
		log.Errorf("%v", err)
		return "", false
	}

	start := time.Now()
	result := h.corrector.Suggest(word)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	return h.format(result, elapsed), true
}

func (h *InputHandler) format(r suggest.Result, elapsed time.Duration) string {
	var sb strings.Builder
	sb.WriteString("Suggestion is: ")
	if !r.Found() {
		sb.WriteString(NoSuggestionText)
	} else {
		sb.WriteString(r.Word)
		if h.opts.ShowFrequency {
			fmt.Fprintf(&sb, " (%s, freq: %s)", describe(r), utils.FormatWithCommas(r.Frequency))
		}
	}
	if h.opts.ShowTiming {
		fmt.Fprintf(&sb, " [%v]", elapsed)
	}
	return sb.String()
}

func describe(r suggest.Result) string {
	if r.Outcome == suggest.Exact {
		return "exact"
	}
	return fmt.Sprintf("distance %d", r.Distance)
}

// FormatResult renders r the way the one-shot command prints it.
func FormatResult(r suggest.Result) string {
	if !r.Found() {
		return "Suggestion is: " + NoSuggestionText
	}
	return "Suggestion is: " + r.Word
}
