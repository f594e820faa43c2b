/*
Command bindictgen builds a binary dictionary image from plain-text
frequency tables, for use by bindictsrv or pkg/bindict directly.

# Usage

	bindictgen -u unigrams.txt -n bigrams.txt,trigrams.txt -o dict.bin

Generate the small fixture dictionary used in this module's own tests:

	bindictgen -t -o dict.bin

# Input format

Each line of a unigram file is a word and its weight (0..255), separated
by whitespace:

	hello 120
	hi 130

Each line of an n-gram file is two or more words followed by a weight:

	hello there 20
	how are you 80

Blank lines and lines starting with '#' are skipped.
*/
package main

import (
	"bufio"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tinytype/bindict/internal/logger"
	"github.com/tinytype/bindict/pkg/builder"
)

func main() {
	unigramFiles := flag.String("u", "", "Comma-separated unigram frequency files")
	ngramFiles := flag.String("n", "", "Comma-separated n-gram frequency files")
	output := flag.String("o", "", "Output path for the binary image")
	testDict := flag.Bool("t", false, "Generate the small fixture dictionary instead of reading input files")
	debugMode := flag.Bool("d", false, "Enable debug logging")
	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}
	appLog := logger.New("bindictgen")

	if *output == "" {
		appLog.Fatal("No output file specified (-o)")
	}

	unigrams := builder.NewUnigramSet()
	ngrams := builder.NewNgramSet()

	if *testDict {
		populateTestDict(unigrams, ngrams)
	} else {
		if *unigramFiles == "" && *ngramFiles == "" {
			appLog.Fatal("Must specify at least one source for either unigrams or n-grams")
		}
		for _, path := range splitNonEmpty(*unigramFiles) {
			if err := loadUnigramFile(appLog, path, unigrams); err != nil {
				appLog.Fatalf("Loading unigrams from %s: %v", path, err)
			}
		}
		for _, path := range splitNonEmpty(*ngramFiles) {
			if err := loadNgramFile(appLog, path, ngrams); err != nil {
				appLog.Fatalf("Loading n-grams from %s: %v", path, err)
			}
		}
	}

	appLog.Debug("Encoding binary image...")
	image, err := builder.Encode(unigrams, ngrams)
	if err != nil {
		appLog.Fatalf("Encoding image: %v", err)
	}

	if err := os.WriteFile(*output, image, 0644); err != nil {
		appLog.Fatalf("Writing %s: %v", *output, err)
	}
	appLog.Infof("Wrote %d bytes to %s", len(image), *output)
}

func splitNonEmpty(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func loadUnigramFile(appLog *log.Logger, path string, set *builder.UnigramSet) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			appLog.Warnf("Skipping malformed unigram line: %q", line)
			continue
		}
		weight, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			appLog.Warnf("Skipping unigram line with invalid weight: %q", line)
			continue
		}
		set.Add(fields[0], uint8(weight))
	}
	return scanner.Err()
}

func loadNgramFile(appLog *log.Logger, path string, set *builder.NgramSet) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			appLog.Warnf("Skipping malformed n-gram line: %q", line)
			continue
		}
		words, weightField := fields[:len(fields)-1], fields[len(fields)-1]
		weight, err := strconv.ParseUint(weightField, 10, 8)
		if err != nil {
			appLog.Warnf("Skipping n-gram line with invalid weight: %q", line)
			continue
		}
		set.Add(words, uint8(weight))
	}
	return scanner.Err()
}

// populateTestDict mirrors the fixture dictionary exercised by this
// module's own test suite: a handful of unigrams and the n-gram chains
// that connect them.
func populateTestDict(unigrams *builder.UnigramSet, ngrams *builder.NgramSet) {
	unigrams.Add("a", 200)
	unigrams.Add("hi", 130)
	unigrams.Add("hello", 120)
	unigrams.Add("there", 140)
	unigrams.Add("how", 150)
	unigrams.Add("are", 80)
	unigrams.Add("you", 200)
	unigrams.Add("your", 100)

	ngrams.Add([]string{"hello", "there"}, 20)
	ngrams.Add([]string{"hello", "you"}, 25)
	ngrams.Add([]string{"how", "are", "you"}, 80)
	ngrams.Add([]string{"you", "are", "there"}, 30)
	ngrams.Add([]string{"are", "you", "there"}, 30)
}
