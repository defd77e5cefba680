package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/gantoho/rodomark"
	"github.com/gantoho/rodomark/ansi"
)

const defaultWidth = 80

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	var (
		themeName      string
		darkFlag       bool
		widthFlag      int
		hyperlinksFlag string
		listThemes     bool
		listFiles      bool
		listDirs       bool
		showVersion    bool
		outPath        string
	)

	flags := pflag.NewFlagSet("rodomark", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", cfg.Theme, "Highlight theme name")
	flags.BoolVarP(&darkFlag, "dark", "d", cfg.Dark, "Use the dark palette")
	flags.IntVarP(&widthFlag, "width", "w", cfg.Width, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&hyperlinksFlag, "hyperlinks", "8", cfg.Hyperlinks, "OSC 8 hyperlinks: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available highlight themes")
	flags.BoolVar(&listFiles, "list", false, "List Markdown files in the given directories")
	flags.BoolVar(&listDirs, "dirs", false, "List subdirectories of the given directories")
	flags.BoolVar(&showVersion, "version", false, "Print version")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "rodomark %s\n", version)
		fmt.Fprintln(os.Stderr, "Usage: rodomark [flags] [files or directories...]")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Println("rodomark", version)
		return
	}
	if listThemes {
		for _, name := range rodomark.AvailableHighlightThemes() {
			fmt.Println(name)
		}
		return
	}

	args := flags.Args()
	if listFiles || listDirs {
		if len(args) == 0 {
			args = []string{"."}
		}
		if err := listEntries(args, listFiles, listDirs); err != nil {
			logger.Error("list", "err", err)
			os.Exit(1)
		}
		return
	}

	ctx := rodomark.RenderContext{DarkMode: darkFlag}
	if themeName != "" {
		theme, ok := rodomark.HighlightThemeByName(themeName)
		if !ok {
			logger.Error("unknown theme", "theme", themeName)
			os.Exit(2)
		}
		ctx.HighlightTheme = theme
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		logger.Error("open output", "err", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	opts := []ansi.Option{
		ansi.WithWidth(resolveWidth(widthFlag)),
		ansi.WithHyperlinks(resolveHyperlinks(hyperlinksFlag, logger)),
	}

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "err", err)
			os.Exit(1)
		}
		renderOne(writer, string(data), ctx, opts, logger)
		return
	}
	for _, path := range args {
		content, err := rodomark.LoadMarkdownFile(path)
		if err != nil {
			logger.Error("load", "path", path, "err", err)
			os.Exit(1)
		}
		renderOne(writer, content, ctx, opts, logger)
	}
}

func renderOne(w io.Writer, content string, ctx rodomark.RenderContext, opts []ansi.Option, logger *log.Logger) {
	if err := rodomark.ValidateInput([]byte(content)); err != nil {
		logger.Error("validate input", "err", err)
		os.Exit(1)
	}
	doc := rodomark.Render(content, ctx)
	fmt.Fprint(w, ansi.Render(doc, ctx.DarkMode, opts...))
}

func listEntries(dirs []string, files, subdirs bool) error {
	for _, dir := range dirs {
		if files {
			names, err := rodomark.ListMarkdownFiles(dir)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
		}
		if subdirs {
			names, err := rodomark.ListSubdirectories(dir)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
		}
	}
	return nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func resolveHyperlinks(mode string, logger *log.Logger) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return ansi.DetectHyperlinkSupport()
	case "on", "true", "1", "yes":
		return true
	case "off", "false", "0", "no":
		return false
	default:
		logger.Warn("invalid --hyperlinks value, using auto", "value", mode)
		return ansi.DetectHyperlinkSupport()
	}
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
