// Package cli provides the command line interface.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/ctxbundle/internal/commands"
	"github.com/temirov/ctxbundle/internal/config"
	"github.com/temirov/ctxbundle/internal/ignore"
	"github.com/temirov/ctxbundle/internal/output"
	"github.com/temirov/ctxbundle/internal/services/clipboard"
	"github.com/temirov/ctxbundle/internal/tokenizer"
	"github.com/temirov/ctxbundle/internal/types"
	"github.com/temirov/ctxbundle/internal/utils"
)

const (
	fileFlagName          = "file"
	fileFlagShorthand     = "f"
	outputDirFlagName     = "output-dir"
	outputDirShorthand    = "o"
	exclusionFlagName     = "exclude"
	exclusionShorthand    = "e"
	noGitignoreFlagName   = "no-gitignore"
	tokensFlagName        = "tokens"
	modelFlagName         = "model"
	copyFlagName          = "copy"
	configFlagName        = "config"
	versionFlagName       = "version"
	globalFlagName        = "global"
	forceFlagName         = "force"
	versionTemplate       = "ctxbundle version: %s\n"
	commandLineFilesLabel = "command_line_files"
	outputDirectoryMode   = 0o755
	outputFileMode        = 0o644
	maxBundleNameAttempts = 1000

	rootUse              = "ctxbundle [folders...]"
	rootShortDescription = "bundle text files into one tagged document"
	rootLongDescription  = `ctxbundle walks folders (and explicit files), drops binary and excluded files,
and concatenates the remaining text into one timestamped document. Each file is wrapped
in <name> ... </name> tags named after its sanitized base name, ready to paste into a prompt.

Built-in patterns skip VCS metadata, caches, build output, lockfiles and binary formats.
Lines of a .gitignore at the top of each folder are added as plain glob exclusions.
.terraform directories are never entered.`
	rootUsageExample = `  # Bundle the current project
  ctxbundle .

  # Bundle two folders and an extra file, excluding fixtures
  ctxbundle -e 'fixtures/*' -f notes.md ./api ./web

  # Bundle explicit files only and copy the result
  ctxbundle --copy -f main.go -f go.mod`

	initUse              = "init"
	initShortDescription = "write a default config.yaml"
	initLongDescription  = `Write the default configuration to ./config.yaml, or to ~/.ctxbundle/config.yaml with --global.`

	fileFlagDescription        = "explicit file to include (repeatable)"
	outputDirFlagDescription   = "directory receiving the bundle (default ~/" + utils.DefaultOutputDirectoryName + ")"
	exclusionFlagDescription   = "additional exclusion pattern (repeatable)"
	noGitignoreFlagDescription = "do not read .gitignore at folder roots"
	tokensFlagDescription      = "report an estimated token count of the bundle"
	modelFlagDescription       = "tokenizer model used for the estimate"
	copyFlagDescription        = "copy the bundle to the clipboard"
	configFlagDescription      = "configuration file (default ./" + utils.ConfigFileName + ")"
	versionFlagDescription     = "display application version"
	globalFlagDescription      = "write the global configuration instead of the local one"
	forceFlagDescription       = "overwrite an existing configuration file"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	errorAbsolutePathFormat     = "abs failed for '%s': %w"
	errorStatFormat             = "stat failed for '%s': %w"
	errorMissingRootFormat      = "%w: '%s'"
	errorHomeDirectoryFormat    = "resolve home directory for output: %w"
	errorCreateOutputDirFormat  = "create output directory %s: %w"
	errorCreateOutputFormat     = "create bundle %s: %w"
	errorBundleNamesExhausted   = "no free bundle name in %s for %s"
	errorWriteOutputFormat      = "write bundle %s: %w"
	configurationCreatedFormat  = "Configuration written to %s\n"

	messageTokenCountFailed = "failed to count bundle tokens"
	messageClipboardFailed  = "failed to copy bundle to clipboard"
	messageBundleCopied     = "bundle copied to clipboard"
	logFieldPath            = "path"
)

var (
	// ErrNoInput is returned when neither folders nor files are supplied.
	ErrNoInput = errors.New("no folders or files specified")
	// ErrMissingRoot is returned when a folder argument does not exist.
	ErrMissingRoot = errors.New("folder does not exist")
)

// application carries the collaborators of a run so tests can replace them.
type application struct {
	logger           *zap.Logger
	stdout           io.Writer
	now              func() time.Time
	copier           clipboard.Copier
	newCounter       func(tokenizer.Config) (tokenizer.Counter, string, error)
	workingDirectory func() (string, error)
	homeDirectory    func() (string, error)
}

func newApplication(logger *zap.Logger) *application {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &application{
		logger:           logger,
		stdout:           os.Stdout,
		now:              time.Now,
		copier:           clipboard.NewService(),
		newCounter:       tokenizer.NewCounter,
		workingDirectory: os.Getwd,
		homeDirectory:    os.UserHomeDir,
	}
}

// Execute runs the ctxbundle application with the process arguments.
func Execute(logger *zap.Logger) error {
	rootCommand := newApplication(logger).createRootCommand()
	rootCommand.SetArgs(normalizeToggleArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// bundleFlags stores the values of the root command flags.
type bundleFlags struct {
	files             []string
	outputDirectory   string
	exclusionPatterns []string
	disableGitignore  bool
	tokensEnabled     bool
	model             string
	copyToClipboard   bool
	configPath        string
}

// createRootCommand builds the root Cobra command.
func (app *application) createRootCommand() *cobra.Command {
	var showVersion bool
	var flags bundleFlags

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(app.stdout, versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			if len(arguments) == 0 && len(flags.files) == 0 {
				_ = command.Usage()
				return ErrNoInput
			}
			return app.runBundle(command.Flags(), arguments, flags)
		},
	}
	rootCommand.SetFlagErrorFunc(func(command *cobra.Command, flagError error) error {
		_ = command.Usage()
		return flagError
	})

	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	addBundleFlags(rootCommand.Flags(), &flags)
	rootCommand.AddCommand(app.createInitCommand())
	return rootCommand
}

// addBundleFlags registers the bundle flags on flagSet.
func addBundleFlags(flagSet *pflag.FlagSet, flags *bundleFlags) {
	flagSet.StringArrayVarP(&flags.files, fileFlagName, fileFlagShorthand, nil, fileFlagDescription)
	flagSet.StringVarP(&flags.outputDirectory, outputDirFlagName, outputDirShorthand, "", outputDirFlagDescription)
	flagSet.StringArrayVarP(&flags.exclusionPatterns, exclusionFlagName, exclusionShorthand, nil, exclusionFlagDescription)
	flagSet.BoolVar(&flags.disableGitignore, noGitignoreFlagName, false, noGitignoreFlagDescription)
	registerToggleFlag(flagSet, &flags.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	flagSet.StringVar(&flags.model, modelFlagName, config.DefaultTokenizerModel, modelFlagDescription)
	registerToggleFlag(flagSet, &flags.copyToClipboard, copyFlagName, false, copyFlagDescription)
	flagSet.StringVar(&flags.configPath, configFlagName, "", configFlagDescription)
}

// createInitCommand returns the init subcommand.
func (app *application) createInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := app.workingDirectory()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			path, initErr := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: workingDirectory,
			})
			if initErr != nil {
				return initErr
			}
			fmt.Fprintf(app.stdout, configurationCreatedFormat, path)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&global, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runSettings is the merged result of flags and configuration for one run.
type runSettings struct {
	outputDirectory   string
	exclusionPatterns []string
	useGitignore      bool
	tokensEnabled     bool
	model             string
	copyToClipboard   bool
}

// resolveSettings overlays explicitly set flags onto configuration defaults.
func resolveSettings(flagSet *pflag.FlagSet, flags bundleFlags, configuration config.BundleConfiguration) runSettings {
	settings := runSettings{
		outputDirectory:   configuration.OutputDirectory,
		exclusionPatterns: utils.DeduplicatePatterns(append(append([]string{}, configuration.Paths.Exclude...), flags.exclusionPatterns...)),
		useGitignore:      config.BoolValue(configuration.Paths.UseGitignore, true),
		tokensEnabled:     config.BoolValue(configuration.Tokens.Enabled, false),
		model:             configuration.Tokens.Model,
		copyToClipboard:   config.BoolValue(configuration.Clipboard, false),
	}
	if flagSet.Changed(outputDirFlagName) {
		settings.outputDirectory = flags.outputDirectory
	}
	if flagSet.Changed(noGitignoreFlagName) {
		settings.useGitignore = !flags.disableGitignore
	}
	if flagSet.Changed(tokensFlagName) {
		settings.tokensEnabled = flags.tokensEnabled
	}
	if flagSet.Changed(modelFlagName) || settings.model == "" {
		settings.model = flags.model
	}
	if flagSet.Changed(copyFlagName) {
		settings.copyToClipboard = flags.copyToClipboard
	}
	return settings
}

// runBundle validates the inputs, writes the bundle and prints the summary.
func (app *application) runBundle(flagSet *pflag.FlagSet, arguments []string, flags bundleFlags) error {
	workingDirectory, workingDirectoryError := app.workingDirectory()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: flags.configPath,
	})
	if configurationError != nil {
		return configurationError
	}
	settings := resolveSettings(flagSet, flags, applicationConfiguration.Bundle)

	roots, argumentFiles, validationError := resolveAndValidateInputs(arguments)
	if validationError != nil {
		return validationError
	}
	files := append(argumentFiles, flags.files...)

	outputDirectory, outputDirectoryError := app.resolveOutputDirectory(settings.outputDirectory)
	if outputDirectoryError != nil {
		return outputDirectoryError
	}
	bundleFile, outputPath, createError := createBundleFile(outputDirectory, app.now(), bundleLabel(roots))
	if createError != nil {
		return createError
	}

	summary, bundleError := app.writeBundleFile(bundleFile, commands.BundleOptions{
		Roots:        validatedPaths(roots),
		Files:        files,
		Matcher:      ignore.DefaultMatcher(settings.exclusionPatterns),
		UseGitignore: settings.useGitignore,
		Logger:       app.logger,
		OutputPath:   outputPath,
	})
	if bundleError != nil {
		return bundleError
	}

	if settings.tokensEnabled {
		app.countTokens(&summary, settings.model)
	}
	if settings.copyToClipboard {
		if copyErr := clipboard.CopyFile(app.copier, summary.OutputPath); copyErr != nil {
			app.logger.Warn(messageClipboardFailed, zap.Error(copyErr))
		} else {
			app.logger.Info(messageBundleCopied, zap.String(logFieldPath, summary.OutputPath))
		}
	}
	return output.WriteSummary(app.stdout, summary)
}

// createBundleFile creates a new bundle in outputDirectory. When the name for this second is
// taken, "_1", "_2", ... are appended until an unused name is found.
func createBundleFile(outputDirectory string, createdAt time.Time, label string) (*os.File, string, error) {
	for sequence := 0; sequence < maxBundleNameAttempts; sequence++ {
		outputPath := filepath.Join(outputDirectory, utils.NumberedBundleFileName(createdAt, label, sequence))
		// #nosec G304
		bundleFile, createErr := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, outputFileMode)
		if createErr == nil {
			return bundleFile, outputPath, nil
		}
		if !errors.Is(createErr, fs.ErrExist) {
			return nil, "", fmt.Errorf(errorCreateOutputFormat, outputPath, createErr)
		}
	}
	return nil, "", fmt.Errorf(errorBundleNamesExhausted, outputDirectory, utils.BundleFileName(createdAt, label))
}

// writeBundleFile streams the bundle into bundleFile and closes it. A bundle that fails
// midway is removed so no partial document is left behind.
func (app *application) writeBundleFile(bundleFile *os.File, options commands.BundleOptions) (summary types.BundleSummary, err error) {
	outputPath := bundleFile.Name()
	defer func() {
		if closeErr := bundleFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf(errorWriteOutputFormat, outputPath, closeErr)
		}
		if err != nil {
			_ = os.Remove(outputPath)
		}
	}()

	bufferedWriter := bufio.NewWriter(bundleFile)
	summary, err = commands.WriteBundle(bufferedWriter, options)
	if err != nil {
		return summary, err
	}
	if flushErr := bufferedWriter.Flush(); flushErr != nil {
		return summary, fmt.Errorf(errorWriteOutputFormat, outputPath, flushErr)
	}
	summary.OutputPath = outputPath
	return summary, nil
}

// countTokens stores a token estimate of the written bundle on summary. Failures are warnings.
func (app *application) countTokens(summary *types.BundleSummary, model string) {
	counter, resolvedModel, counterErr := app.newCounter(tokenizer.Config{Model: model})
	if counterErr != nil {
		app.logger.Warn(messageTokenCountFailed, zap.Error(counterErr))
		return
	}
	tokens, countErr := tokenizer.CountFile(counter, summary.OutputPath)
	if countErr != nil {
		app.logger.Warn(messageTokenCountFailed, zap.String(logFieldPath, summary.OutputPath), zap.Error(countErr))
		return
	}
	summary.Tokens = tokens
	summary.Model = resolvedModel
}

// resolveOutputDirectory returns the configured directory, or ~/ctxbundle, creating it if needed.
func (app *application) resolveOutputDirectory(configured string) (string, error) {
	directory := configured
	if directory == "" {
		homeDirectory, homeErr := app.homeDirectory()
		if homeErr != nil {
			return "", fmt.Errorf(errorHomeDirectoryFormat, homeErr)
		}
		directory = filepath.Join(homeDirectory, utils.DefaultOutputDirectoryName)
	}
	absoluteDirectory, absoluteErr := filepath.Abs(directory)
	if absoluteErr != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, directory, absoluteErr)
	}
	if mkdirErr := os.MkdirAll(absoluteDirectory, outputDirectoryMode); mkdirErr != nil {
		return "", fmt.Errorf(errorCreateOutputDirFormat, absoluteDirectory, mkdirErr)
	}
	return absoluteDirectory, nil
}

// resolveAndValidateInputs splits positional arguments into folders and files. Every folder
// must exist; a missing positional argument is reported as a missing folder.
func resolveAndValidateInputs(inputs []string) ([]types.ValidatedPath, []string, error) {
	seen := make(map[string]struct{})
	var roots []types.ValidatedPath
	var files []string
	for _, inputPath := range inputs {
		absolutePath, absolutePathError := filepath.Abs(inputPath)
		if absolutePathError != nil {
			return nil, nil, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
		}
		cleanPath := filepath.Clean(absolutePath)
		info, fileStatusError := os.Stat(cleanPath)
		if fileStatusError != nil {
			if os.IsNotExist(fileStatusError) {
				return nil, nil, fmt.Errorf(errorMissingRootFormat, ErrMissingRoot, inputPath)
			}
			return nil, nil, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
		}
		if !info.IsDir() {
			files = append(files, inputPath)
			continue
		}
		if _, duplicate := seen[cleanPath]; duplicate {
			continue
		}
		seen[cleanPath] = struct{}{}
		roots = append(roots, types.ValidatedPath{AbsolutePath: cleanPath})
	}
	return roots, files, nil
}

// bundleLabel names the bundle after the last folder, or the literal command_line_files.
func bundleLabel(roots []types.ValidatedPath) string {
	if len(roots) == 0 {
		return commandLineFilesLabel
	}
	return filepath.Base(roots[len(roots)-1].AbsolutePath)
}

func validatedPaths(roots []types.ValidatedPath) []string {
	paths := make([]string, 0, len(roots))
	for _, root := range roots {
		paths = append(paths, root.AbsolutePath)
	}
	return paths
}
