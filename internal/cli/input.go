// Package cli provides an interactive input handler for manually testing
// Exists, Predictions, and Corrections against a loaded dictionary.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tinytype/bindict/internal/logger"
	"github.com/tinytype/bindict/pkg/bindict"
)

// InputHandler reads lines from stdin and routes them to one of the
// three queries based on a leading command word.
type InputHandler struct {
	dict         *bindict.Dictionary
	limit        int
	requestCount int
	log          *log.Logger
}

// NewInputHandler builds an InputHandler over dict, returning up to limit
// results per query.
func NewInputHandler(dict *bindict.Dictionary, limit int) *InputHandler {
	return &InputHandler{dict: dict, limit: limit, log: logger.New("cli")}
}

// Start begins the REPL loop. It terminates when reading from stdin
// fails, typically on EOF or Ctrl+D.
//
//	exists <word>
//	predict <word> [word...]
//	correct <word>
func (h *InputHandler) Start() error {
	h.log.Print("bindict CLI [BETA]")
	h.log.Print("commands: exists <word> | predict <word...> | correct <word> (Ctrl+C to exit)")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleLine(line)
	}
}

func (h *InputHandler) handleLine(line string) {
	h.requestCount++

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	if len(args) == 0 {
		h.log.Errorf("Missing arguments for command: %s", cmd)
		return
	}

	start := time.Now()
	switch cmd {
	case "exists":
		h.handleExists(args[0])
	case "predict":
		h.handlePredict(args)
	case "correct":
		h.handleCorrect(args[0])
	default:
		h.log.Errorf("Unknown command: %s", cmd)
		return
	}
	h.log.Debugf("Took [ %v ] for %q", time.Since(start), line)
}

func (h *InputHandler) handleExists(word string) {
	found := h.dict.Exists(word)
	h.log.Printf("%q exists: %v", word, found)
}

func (h *InputHandler) handlePredict(context []string) {
	results := h.dict.Predictions(context, h.limit)
	if len(results) == 0 {
		h.log.Warnf("No predictions after %v", context)
		return
	}
	h.log.Printf("Found %d predictions after %v:", len(results), context)
	h.printResults(results)
}

func (h *InputHandler) handleCorrect(word string) {
	results := h.dict.Corrections(word, h.limit)
	if len(results) == 0 {
		h.log.Warnf("No corrections found for %q", word)
		return
	}
	h.log.Printf("Found %d corrections for %q:", len(results), word)
	h.printResults(results)
}

func (h *InputHandler) printResults(results []bindict.WeightedWord) {
	for i, r := range results {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", r.Word)
		h.log.Printf("%2d. %-24s (weight: %3d)", i+1, clWord, r.Weight)
	}
}
