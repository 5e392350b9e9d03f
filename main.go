package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrNotDirectory is returned when the target does not resolve to an existing directory.
var ErrNotDirectory = errors.New("not a valid directory")

var cfgFile string

// version is the application version, set via ldflags.
var version = "1.0"

// RunSettings is the fully resolved configuration for one run.
type RunSettings struct {
	Target           string
	Output           string
	MaxDepth         int // negative for unlimited
	IncludeHidden    bool
	Color            bool // highlight files with matches in the preview
	ColorOutput      bool // emit color escapes on stdout
	Search           string
	CaseSensitive    bool
	MaxMatches       int
	Stat             bool
	Verbose          bool
	Exclude          []string
	Gitignore        bool
	Clipboard        bool
	Interactive      bool
	BinaryExtensions []string
}

var rootCmd = &cobra.Command{
	Use:   "dirtree [FOLDER]",
	Short: "Generate an ASCII tree of a directory structure.",
	Long: `dirtree renders the directory hierarchy under FOLDER (default: current
directory) as a text tree, saves it to a report file and previews it on the
console. It can search file contents for a string and summarize counts and sizes.
FOLDER may also be a Git URL, which is cloned into a temporary directory first.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := settingsFromViper(args)
		if err != nil {
			return err
		}
		settings.ColorOutput = !color.NoColor

		err = run(settings, os.Stdout)
		if errors.Is(err, errSelectionAborted) {
			console.Infof("Interactive selection aborted.")
			return nil
		}
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dirtree/config.toml)")

	flags := rootCmd.Flags()
	flags.StringP("output", "o", "structure.txt", "Output file name")
	viper.BindPFlag("output", flags.Lookup("output"))
	flags.IntP("depth", "d", -1, "Maximum depth to traverse (negative for no limit)")
	viper.BindPFlag("depth", flags.Lookup("depth"))
	flags.BoolP("include-hidden", "a", false, "Include hidden files/folders")
	viper.BindPFlag("include_hidden", flags.Lookup("include-hidden"))
	flags.BoolP("color", "c", false, "Highlight files with search matches in the preview")
	viper.BindPFlag("color", flags.Lookup("color"))

	// Search
	flags.StringP("search", "s", "", "Search for STRING in file contents (case-insensitive)")
	viper.BindPFlag("search", flags.Lookup("search"))
	flags.Bool("case-sensitive", false, "Make search case-sensitive")
	viper.BindPFlag("case_sensitive", flags.Lookup("case-sensitive"))
	flags.Int("max-matches", 5, "Maximum number of matches to show per file")
	viper.BindPFlag("max_matches", flags.Lookup("max-matches"))

	// Filtering
	flags.StringSliceP("exclude", "e", nil, "Glob patterns to exclude (comma-separated, e.g. *.log,**/node_modules)")
	viper.BindPFlag("exclude", flags.Lookup("exclude"))
	flags.Bool("gitignore", false, "Respect the target's .gitignore")
	viper.BindPFlag("gitignore", flags.Lookup("gitignore"))

	// Reporting
	flags.Bool("stat", false, "Show file/directory counts and size statistics")
	viper.BindPFlag("stat", flags.Lookup("stat"))
	flags.Bool("verbose", false, "Show a scanning progress line")
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	flags.Bool("clipboard", false, "Also copy the report to the clipboard")
	viper.BindPFlag("clipboard", flags.Lookup("clipboard"))
	flags.Bool("interactive", false, "Pick the target directory with a fuzzy finder")
	viper.BindPFlag("interactive", flags.Lookup("interactive"))

	viper.SetDefault("output", "structure.txt")
	viper.SetDefault("depth", -1)
	viper.SetDefault("max_matches", 5)
	viper.SetDefault("binary_extensions", []string{})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dirtree"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("DIRTREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match DIRTREE_*

	if err := viper.ReadInConfig(); err == nil {
		console.Infof("Using config file: %s", viper.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			console.Warnf("error reading config file: %v", err)
		}
	}
}

// settingsFromViper folds flags, environment, config file and filetypes.yml
// into RunSettings.
func settingsFromViper(args []string) (RunSettings, error) {
	s := RunSettings{
		Output:        viper.GetString("output"),
		MaxDepth:      viper.GetInt("depth"),
		IncludeHidden: viper.GetBool("include_hidden"),
		Color:         viper.GetBool("color"),
		Search:        viper.GetString("search"),
		CaseSensitive: viper.GetBool("case_sensitive"),
		MaxMatches:    viper.GetInt("max_matches"),
		Stat:          viper.GetBool("stat"),
		Verbose:       viper.GetBool("verbose"),
		Exclude:       viper.GetStringSlice("exclude"),
		Gitignore:     viper.GetBool("gitignore"),
		Clipboard:     viper.GetBool("clipboard"),
		Interactive:   viper.GetBool("interactive"),
	}
	if len(args) > 0 {
		s.Target = args[0]
	}

	s.BinaryExtensions = viper.GetStringSlice("binary_extensions")
	ft, err := loadFiletypes(filetypesSearchPaths())
	if err != nil {
		console.Warnf("%v", err)
	} else {
		s.BinaryExtensions = append(s.BinaryExtensions, ft.Binary...)
	}

	if s.MaxMatches < 1 {
		return s, fmt.Errorf("--max-matches must be at least 1, got %d", s.MaxMatches)
	}
	if s.Output == "" {
		return s, errors.New("--output must not be empty")
	}
	return s, nil
}

// options builds the traversal configuration for the canonical root.
func (s RunSettings) options(root string) (Options, error) {
	outputName := filepath.Base(s.Output)
	names := []string{filepath.Base(os.Args[0]), outputName, outputName + lockSuffix}

	exclusion, err := NewExclusion(root, names, s.Exclude, s.Gitignore)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		ShowHidden: s.IncludeHidden,
		MaxDepth:   s.MaxDepth,
		Exclude:    exclusion,
	}
	if s.Search != "" {
		opts.Search = &Query{
			Text:          s.Search,
			CaseSensitive: s.CaseSensitive,
			MaxMatches:    s.MaxMatches,
			Binary:        binaryExtensionSet(s.BinaryExtensions),
		}
	}
	return opts, nil
}

// resolveTarget turns the requested target into a local directory. The
// returned name overrides the report header name when non-empty, and
// cleanup must always be called.
func resolveTarget(s RunSettings) (target, name string, cleanup func(), err error) {
	noop := func() {}
	switch {
	case s.Interactive:
		dir, err := runInteractiveFinder(s.IncludeHidden)
		return dir, "", noop, err
	case isGitURL(s.Target):
		var progress io.Writer
		if s.Verbose {
			progress = os.Stderr
		}
		console.Infof("Cloning Git repository '%s'...", s.Target)
		dir, err := cloneGitRepo(s.Target, progress)
		if err != nil {
			return "", "", noop, err
		}
		return dir, repoName(s.Target), func() { _ = os.RemoveAll(dir) }, nil
	case s.Target == "":
		return ".", "", noop, nil
	default:
		return s.Target, "", noop, nil
	}
}

// validateTarget returns the absolute form of path, failing unless it is an
// existing directory.
func validateTarget(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("error accessing path %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("'%s' is %w", abs, ErrNotDirectory)
	}
	return abs, nil
}

// run renders the tree for s, writes the report and prints the preview.
func run(s RunSettings, stdout io.Writer) error {
	target, name, cleanup, err := resolveTarget(s)
	if err != nil {
		return err
	}
	defer cleanup()

	absTarget, err := validateTarget(target)
	if err != nil {
		return err
	}
	if name == "" {
		name = filepath.Base(absTarget)
	}

	root, err := canonicalPath(absTarget)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", absTarget, err)
	}
	opts, err := s.options(root)
	if err != nil {
		return err
	}

	var reporter ProgressReporter
	var progress *terminalProgress
	if s.Verbose {
		progress = newTerminalProgress(os.Stderr, stderrIsTerminal())
		reporter = progress
	}
	entries := Traverse(absTarget, opts, reporter)
	if progress != nil {
		progress.Clear()
	}

	searching := opts.Search != nil
	var report bytes.Buffer
	if err := RenderReport(&report, Header{Name: name, FullPath: absTarget}, entries, searching); err != nil {
		return err
	}

	outPath, err := filepath.Abs(s.Output)
	if err != nil {
		return fmt.Errorf("error resolving output path %s: %w", s.Output, err)
	}
	writeErr := WriteReport(outPath, report.Bytes())

	if s.Clipboard {
		if err := clipboard.WriteAll(report.String()); err != nil {
			console.Warnf("could not copy report to clipboard: %v", err)
		}
	}

	palette := Palette{Enabled: s.ColorOutput, Highlight: s.Color}
	RenderPreview(stdout, entries, palette, searching)
	if s.Stat {
		RenderStats(stdout, Aggregate(entries), palette, searching)
	}

	if writeErr != nil {
		return fmt.Errorf("file write error: %w", writeErr)
	}
	fmt.Fprintf(stdout, "\n%s\n", palette.paint("Tree saved to: "+outPath, color.Bold, color.FgGreen))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		console.Errorf("%v", err)
		os.Exit(1)
	}
}
