/*
Command bindictsrv runs the bindict dictionary as either a msgpack IPC
server or an interactive CLI, over a binary image loaded from disk.

# Usage

Start the server against a dictionary image:

	bindictsrv -image dict.bin

Run in CLI mode for interactive testing:

	bindictsrv -image dict.bin -c -limit 10

# Command Line Flags

	-image string
	    Path to the binary dictionary image (if omitted, an empty dictionary is used)
	-config string
	    Path to a TOML config file (default: ~/.config/bindict/config.toml)
	-d  Enable debug logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of results to return per query (default from config)
	-version
	    Show version information
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tinytype/bindict/internal/cli"
	"github.com/tinytype/bindict/internal/logger"
	"github.com/tinytype/bindict/pkg/bindict"
	"github.com/tinytype/bindict/pkg/config"
	"github.com/tinytype/bindict/pkg/server"
)

const (
	version = "0.1.0"
	ghRepo  = "https://github.com/tinytype/bindict"
)

// sigHandler exits cleanly on SIGINT/SIGTERM.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	imagePath := flag.String("image", "", "Path to the binary dictionary image")
	configPath := flag.String("config", "", "Path to a TOML config file")
	debugMode := flag.Bool("d", false, "Enable debug logging")
	cliMode := flag.Bool("c", false, "Run CLI instead of server mode")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of results to return per query")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	appLog := logger.New("bindictsrv")

	resolvedConfigPath := *configPath
	if resolvedConfigPath == "" {
		p, err := config.GetDefaultConfigPath()
		if err != nil {
			appLog.Fatalf("Failed to determine config path: %v", err)
		}
		resolvedConfigPath = p
	}
	cfg, err := config.InitConfig(resolvedConfigPath)
	if err != nil {
		appLog.Fatalf("Failed to load config: %v", err)
	}
	appLog.Debugf("Using config file: %s", resolvedConfigPath)

	if *imagePath == "" {
		appLog.Warn("No -image given, running with an empty dictionary.")
	}
	dict, err := loadDictionary(*imagePath)
	if err != nil {
		appLog.Fatalf("Failed to load dictionary image: %v", err)
	}

	if *cliMode {
		cliLimit := cfg.CLI.DefaultLimit
		flag.Visit(func(f *flag.Flag) {
			if f.Name == "limit" {
				cliLimit = *limit
			}
		})
		inputHandler := cli.NewInputHandler(dict, cliLimit)
		if err := inputHandler.Start(); err != nil {
			appLog.Fatalf("CLI error: %v", err)
		}
		return
	}

	srv := server.NewServer(dict, cfg.Server.MaxPredictions, cfg.Server.MaxCorrections)
	showStartupInfo(appLog, *imagePath)
	if err := srv.Start(); err != nil {
		appLog.Fatalf("Server error: %v", err)
	}
}

func loadDictionary(imagePath string) (*bindict.Dictionary, error) {
	if imagePath == "" {
		return bindict.FromBytes(nil), nil
	}
	return bindict.Open(imagePath)
}

func printVersion() {
	versionLog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	versionLog.SetStyles(styles)

	versionLog.Print("")
	versionLog.Print("[ bindict ] a read-only binary dictionary engine")
	versionLog.Print("", "version", version)
	versionLog.Print("use -h or --help to see available options")
	versionLog.Print("Github Repo", "gh", ghRepo)
}

func showStartupInfo(appLog *log.Logger, imagePath string) {
	pid := os.Getpid()
	currentLevel := appLog.GetLevel()
	appLog.SetLevel(log.InfoLevel)

	println("==========")
	println(" bindict  ")
	println("==========")
	appLog.Infof("Version: %s", version)
	appLog.Infof("Process ID: [ %d ]", pid)
	appLog.Infof("image: ( %s )", imagePath)
	appLog.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	appLog.SetLevel(currentLevel)
}
